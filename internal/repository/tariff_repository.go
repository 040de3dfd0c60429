package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

const (
	customPriceKindPerLiter      = "PER_LITER"
	customPriceKindPerUpliftment = "PER_UPLIFTMENT"
)

type TariffRepository struct {
	db *gorm.DB
}

func NewTariffRepository(db *gorm.DB) *TariffRepository {
	return &TariffRepository{db: db}
}

// Create persists a tariff with its custom price items in one transaction.
// Ids are assigned here, behind the persistence boundary.
func (r *TariffRepository) Create(ctx context.Context, tariff model.Tariff) (*model.Tariff, error) {
	var saved model.Tariff
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO tariffs (
				supplier_id, location_id, replacement_supplier_id,
				base_price, differential, markup,
				start_date, end_date, is_spot_tariff, contract_ref, status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id, supplier_id, location_id, replacement_supplier_id,
				base_price, differential, markup,
				start_date, end_date, is_spot_tariff, contract_ref, status, created_at
		`,
			tariff.SupplierID,
			tariff.LocationID,
			tariff.ReplacementSupplierID,
			tariff.BasePrice,
			tariff.Differential,
			tariff.Markup,
			tariff.StartDate,
			tariff.EndDate,
			tariff.IsSpotTariff,
			tariff.ContractRef,
			tariff.Status,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		insertItem := func(kind string, item model.CustomPrice) error {
			return tx.Exec(`
				INSERT INTO tariff_custom_prices (tariff_id, kind, description, price)
				VALUES (?, ?, ?, ?)
			`, saved.ID, kind, item.Description, item.Price).Error
		}
		for _, item := range tariff.PerLiterPrices {
			if err := insertItem(customPriceKindPerLiter, item); err != nil {
				return err
			}
		}
		for _, item := range tariff.PerUpliftmentPrices {
			if err := insertItem(customPriceKindPerUpliftment, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	saved.PerLiterPrices = tariff.PerLiterPrices
	saved.PerUpliftmentPrices = tariff.PerUpliftmentPrices
	return &saved, nil
}

func (r *TariffRepository) List(ctx context.Context) ([]model.Tariff, error) {
	var tariffs []model.Tariff
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, supplier_id, location_id, replacement_supplier_id,
			base_price, differential, markup,
			start_date, end_date, is_spot_tariff, contract_ref, status, created_at
		FROM tariffs
		ORDER BY created_at DESC
	`).Scan(&tariffs).Error
	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (r *TariffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tariff, error) {
	var tariff model.Tariff
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, supplier_id, location_id, replacement_supplier_id,
			base_price, differential, markup,
			start_date, end_date, is_spot_tariff, contract_ref, status, created_at
		FROM tariffs
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&tariff).Error
	if err != nil {
		return nil, err
	}
	if tariff.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}

	var items []struct {
		ID          uuid.UUID
		Kind        string
		Description string
		Price       decimal.Decimal
	}
	err = r.db.WithContext(ctx).Raw(`
		SELECT id, kind, description, price
		FROM tariff_custom_prices
		WHERE tariff_id = ?
		ORDER BY id
	`, id).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		price := model.CustomPrice{ID: item.ID, Description: item.Description, Price: item.Price}
		switch item.Kind {
		case customPriceKindPerLiter:
			tariff.PerLiterPrices = append(tariff.PerLiterPrices, price)
		case customPriceKindPerUpliftment:
			tariff.PerUpliftmentPrices = append(tariff.PerUpliftmentPrices, price)
		}
	}
	return &tariff, nil
}
