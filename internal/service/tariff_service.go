package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/pricing"
	"github.com/skyops/fuelrecon/internal/repository"
)

type TariffService struct {
	tariffs   *repository.TariffRepository
	contracts *repository.ContractRepository
	suppliers *repository.SupplierRepository
	locations *repository.LocationRepository
}

func NewTariffService(
	tariffs *repository.TariffRepository,
	contracts *repository.ContractRepository,
	suppliers *repository.SupplierRepository,
	locations *repository.LocationRepository,
) *TariffService {
	return &TariffService{
		tariffs:   tariffs,
		contracts: contracts,
		suppliers: suppliers,
		locations: locations,
	}
}

type CustomPriceInput struct {
	Description string
	Price       string
}

type CreateTariffInput struct {
	SupplierID            uuid.UUID
	LocationID            uuid.UUID
	ReplacementSupplierID *uuid.UUID
	BasePrice             string
	Differential          string
	Markup                string
	StartDate             *time.Time // overrides the resolved contract default
	EndDate               *time.Time
	PerLiterPrices        []CustomPriceInput
	PerUpliftmentPrices   []CustomPriceInput
	Principal             model.Principal
}

type CreateTariffResult struct {
	Tariff        model.Tariff
	TotalPerLiter decimal.Decimal
	Contract      *model.Contract
}

// CreateTariff runs one tariff form session server-side: resolve the
// contract, pre-fill the validity window, apply the caller's edits, validate
// and save. A validation failure saves nothing.
func (s *TariffService) CreateTariff(ctx context.Context, input CreateTariffInput) (*CreateTariffResult, error) {
	if !input.Principal.CanMutate() {
		return nil, ErrPermissionDenied
	}
	if input.SupplierID == uuid.Nil || input.LocationID == uuid.Nil {
		return nil, fmt.Errorf("%w: supplier_id and location_id are required", ErrInvalidInput)
	}

	if _, err := s.suppliers.GetByID(ctx, input.SupplierID); err != nil {
		return nil, notFoundOr(err, "supplier")
	}
	if _, err := s.locations.GetByID(ctx, input.LocationID); err != nil {
		return nil, notFoundOr(err, "location")
	}
	if input.ReplacementSupplierID != nil {
		if *input.ReplacementSupplierID == input.SupplierID {
			return nil, fmt.Errorf("%w: replacement supplier must differ from supplier", ErrInvalidInput)
		}
		if _, err := s.suppliers.GetByID(ctx, *input.ReplacementSupplierID); err != nil {
			return nil, notFoundOr(err, "replacement supplier")
		}
	}

	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	var saved *model.Tariff
	session := pricing.NewSession(contracts, dateOnly(time.Now()), func(tariff model.Tariff) error {
		created, err := s.tariffs.Create(ctx, tariff)
		if err != nil {
			return err
		}
		saved = created
		return nil
	})

	if err := session.SetSupplier(input.SupplierID); err != nil {
		return nil, err
	}
	if err := session.SetLocation(input.LocationID); err != nil {
		return nil, err
	}
	if input.ReplacementSupplierID != nil {
		if err := session.SetReplacementSupplier(*input.ReplacementSupplierID); err != nil {
			return nil, err
		}
	}
	if err := session.SetBasePrice(input.BasePrice); err != nil {
		return nil, err
	}
	if err := session.SetDifferential(input.Differential); err != nil {
		return nil, err
	}
	if err := session.SetMarkup(input.Markup); err != nil {
		return nil, err
	}
	if input.StartDate != nil {
		if err := session.SetStartDate(dateOnly(*input.StartDate)); err != nil {
			return nil, err
		}
	}
	if input.EndDate != nil {
		if err := session.SetEndDate(dateOnly(*input.EndDate)); err != nil {
			return nil, err
		}
	}
	for _, item := range input.PerLiterPrices {
		if _, err := session.AddPerLiterPrice(item.Description, pricing.CoercePrice(item.Price)); err != nil {
			return nil, err
		}
	}
	for _, item := range input.PerUpliftmentPrices {
		if _, err := session.AddPerUpliftmentPrice(item.Description, pricing.CoercePrice(item.Price)); err != nil {
			return nil, err
		}
	}

	if err := session.Submit(); err != nil {
		return nil, err
	}

	return &CreateTariffResult{
		Tariff:        *saved,
		TotalPerLiter: pricing.TotalPerLiter(saved),
		Contract:      session.Contract(),
	}, nil
}

func (s *TariffService) ListTariffs(ctx context.Context) ([]model.Tariff, error) {
	return s.tariffs.List(ctx)
}

func (s *TariffService) GetTariff(ctx context.Context, id uuid.UUID) (*model.Tariff, error) {
	tariff, err := s.tariffs.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "tariff")
	}
	return tariff, nil
}

func notFoundOr(err error, entity string) error {
	if err == gorm.ErrRecordNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return err
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
