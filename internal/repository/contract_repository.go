package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// List returns all contracts in creation order. The pricing engine takes the
// first supplier/location match, so insertion order is resolution order.
func (r *ContractRepository) List(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, supplier_id, location_id, contract_ref, start_date, end_date,
			price_change_frequency, split_type, split_value, status, created_at
		FROM contracts
		ORDER BY created_at
	`).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, supplier_id, location_id, contract_ref, start_date, end_date,
			price_change_frequency, split_type, split_value, status, created_at
		FROM contracts
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, contract model.Contract) (*model.Contract, error) {
	var saved model.Contract
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (
			supplier_id, location_id, contract_ref, start_date, end_date,
			price_change_frequency, split_type, split_value, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, supplier_id, location_id, contract_ref, start_date, end_date,
			price_change_frequency, split_type, split_value, status, created_at
	`,
		contract.SupplierID,
		contract.LocationID,
		contract.ContractRef,
		contract.StartDate,
		contract.EndDate,
		contract.PriceChangeFrequency,
		contract.SplitType,
		contract.SplitValue,
		contract.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract model.Contract) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE contracts
		SET supplier_id = ?,
			location_id = ?,
			contract_ref = ?,
			start_date = ?,
			end_date = ?,
			price_change_frequency = ?,
			split_type = ?,
			split_value = ?,
			status = ?
		WHERE id = ?
	`,
		contract.SupplierID,
		contract.LocationID,
		contract.ContractRef,
		contract.StartDate,
		contract.EndDate,
		contract.PriceChangeFrequency,
		contract.SplitType,
		contract.SplitValue,
		contract.Status,
		contract.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM contracts WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
