package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/repository"
)

type MasterDataService struct {
	suppliers *repository.SupplierRepository
	locations *repository.LocationRepository
	contracts *repository.ContractRepository
}

func NewMasterDataService(
	suppliers *repository.SupplierRepository,
	locations *repository.LocationRepository,
	contracts *repository.ContractRepository,
) *MasterDataService {
	return &MasterDataService{
		suppliers: suppliers,
		locations: locations,
		contracts: contracts,
	}
}

func (s *MasterDataService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.suppliers.List(ctx)
}

func (s *MasterDataService) GetSupplier(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "supplier")
	}
	return supplier, nil
}

func (s *MasterDataService) CreateSupplier(ctx context.Context, supplier model.Supplier, principal model.Principal) (*model.Supplier, error) {
	if !principal.CanMutate() {
		return nil, ErrPermissionDenied
	}
	if err := validateSupplier(supplier); err != nil {
		return nil, err
	}
	return s.suppliers.Create(ctx, supplier)
}

func (s *MasterDataService) UpdateSupplier(ctx context.Context, supplier model.Supplier, principal model.Principal) error {
	if !principal.CanMutate() {
		return ErrPermissionDenied
	}
	if err := validateSupplier(supplier); err != nil {
		return err
	}
	return notFoundOrNil(s.suppliers.Update(ctx, supplier), "supplier")
}

func (s *MasterDataService) DeleteSupplier(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOrNil(s.suppliers.Delete(ctx, id), "supplier")
}

func (s *MasterDataService) ListLocations(ctx context.Context) ([]model.Location, error) {
	return s.locations.List(ctx)
}

func (s *MasterDataService) GetLocation(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "location")
	}
	return location, nil
}

func (s *MasterDataService) CreateLocation(ctx context.Context, location model.Location, principal model.Principal) (*model.Location, error) {
	if !principal.CanMutate() {
		return nil, ErrPermissionDenied
	}
	normalized, err := validateLocation(location)
	if err != nil {
		return nil, err
	}
	return s.locations.Create(ctx, *normalized)
}

func (s *MasterDataService) UpdateLocation(ctx context.Context, location model.Location, principal model.Principal) error {
	if !principal.CanMutate() {
		return ErrPermissionDenied
	}
	normalized, err := validateLocation(location)
	if err != nil {
		return err
	}
	return notFoundOrNil(s.locations.Update(ctx, *normalized), "location")
}

func (s *MasterDataService) DeleteLocation(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOrNil(s.locations.Delete(ctx, id), "location")
}

func (s *MasterDataService) ListContracts(ctx context.Context) ([]model.Contract, error) {
	return s.contracts.List(ctx)
}

func (s *MasterDataService) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "contract")
	}
	return contract, nil
}

func (s *MasterDataService) CreateContract(ctx context.Context, contract model.Contract, principal model.Principal) (*model.Contract, error) {
	if !principal.CanMutate() {
		return nil, ErrPermissionDenied
	}
	if err := s.validateContract(ctx, contract); err != nil {
		return nil, err
	}
	if contract.Status == "" {
		contract.Status = model.ContractStatusActive
	}
	return s.contracts.Create(ctx, contract)
}

func (s *MasterDataService) UpdateContract(ctx context.Context, contract model.Contract, principal model.Principal) error {
	if !principal.CanMutate() {
		return ErrPermissionDenied
	}
	if err := s.validateContract(ctx, contract); err != nil {
		return err
	}
	return notFoundOrNil(s.contracts.Update(ctx, contract), "contract")
}

func (s *MasterDataService) DeleteContract(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return notFoundOrNil(s.contracts.Delete(ctx, id), "contract")
}

func validateSupplier(supplier model.Supplier) error {
	if strings.TrimSpace(supplier.FriendlyName) == "" {
		return fmt.Errorf("%w: friendly name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(supplier.LegalName) == "" {
		return fmt.Errorf("%w: legal name is required", ErrInvalidInput)
	}
	return nil
}

func validateLocation(location model.Location) (*model.Location, error) {
	location.ICAOCode = strings.ToUpper(strings.TrimSpace(location.ICAOCode))
	location.IATACode = strings.ToUpper(strings.TrimSpace(location.IATACode))

	if strings.TrimSpace(location.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(location.ICAOCode) != 4 {
		return nil, fmt.Errorf("%w: icao code must be 4 letters", ErrInvalidInput)
	}
	if len(location.IATACode) != 3 {
		return nil, fmt.Errorf("%w: iata code must be 3 letters", ErrInvalidInput)
	}
	if location.VATRate < 0 || location.VATRate > 100 {
		return nil, fmt.Errorf("%w: vat rate must be between 0 and 100", ErrInvalidInput)
	}
	return &location, nil
}

func (s *MasterDataService) validateContract(ctx context.Context, contract model.Contract) error {
	if strings.TrimSpace(contract.ContractRef) == "" {
		return fmt.Errorf("%w: contract ref is required", ErrInvalidInput)
	}
	switch contract.PriceChangeFrequency {
	case model.FrequencyWeekly, model.FrequencyMonthly:
	default:
		return fmt.Errorf("%w: price change frequency must be WEEKLY or MONTHLY", ErrInvalidInput)
	}
	if !contract.StartDate.Before(contract.EndDate) {
		return fmt.Errorf("%w: contract start must precede end", ErrInvalidInput)
	}
	if _, err := s.suppliers.GetByID(ctx, contract.SupplierID); err != nil {
		return notFoundOr(err, "supplier")
	}
	if _, err := s.locations.GetByID(ctx, contract.LocationID); err != nil {
		return notFoundOr(err, "location")
	}
	return nil
}

func notFoundOrNil(err error, entity string) error {
	if err == nil {
		return nil
	}
	return notFoundOr(err, entity)
}
