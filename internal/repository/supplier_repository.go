package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, friendly_name, legal_name, pdf_invoice_name,
			primary_contact_name, primary_contact_email, created_at
		FROM suppliers
		ORDER BY friendly_name
	`).Scan(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, friendly_name, legal_name, pdf_invoice_name,
			primary_contact_name, primary_contact_email, created_at
		FROM suppliers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&supplier).Error
	if err != nil {
		return nil, err
	}
	if supplier.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &supplier, nil
}

func (r *SupplierRepository) Create(ctx context.Context, supplier model.Supplier) (*model.Supplier, error) {
	var saved model.Supplier
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO suppliers (
			friendly_name, legal_name, pdf_invoice_name,
			primary_contact_name, primary_contact_email
		) VALUES (?, ?, ?, ?, ?)
		RETURNING id, friendly_name, legal_name, pdf_invoice_name,
			primary_contact_name, primary_contact_email, created_at
	`,
		supplier.FriendlyName,
		supplier.LegalName,
		supplier.PDFInvoiceName,
		supplier.PrimaryContactName,
		supplier.PrimaryContactEmail,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier model.Supplier) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE suppliers
		SET friendly_name = ?,
			legal_name = ?,
			pdf_invoice_name = ?,
			primary_contact_name = ?,
			primary_contact_email = ?
		WHERE id = ?
	`,
		supplier.FriendlyName,
		supplier.LegalName,
		supplier.PDFInvoiceName,
		supplier.PrimaryContactName,
		supplier.PrimaryContactEmail,
		supplier.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM suppliers WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
