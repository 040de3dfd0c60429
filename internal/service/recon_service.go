package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/config"
	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/repository"
)

type ReconService struct {
	records           *repository.RecordRepository
	queries           *repository.QueryRepository
	varianceTolerance float64
}

func NewReconService(records *repository.RecordRepository, queries *repository.QueryRepository, cfg *config.Config) *ReconService {
	return &ReconService{
		records:           records,
		queries:           queries,
		varianceTolerance: cfg.Recon.VarianceToleranceL,
	}
}

func (s *ReconService) ListRecords(ctx context.Context, filter repository.RecordFilter) ([]model.ReconRecord, error) {
	return s.records.List(ctx, filter)
}

func (s *ReconService) GetRecord(ctx context.Context, id uuid.UUID) (*model.ReconRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "record")
	}
	return record, nil
}

func (s *ReconService) Summary(ctx context.Context) (*model.ReconSummary, error) {
	return s.records.Summary(ctx)
}

type RegisterRecordInput struct {
	Record    model.ReconRecord
	Principal model.Principal
}

// RegisterRecord stores a record delivered by the matching pipeline. The
// variance is the movement volume minus the IFS volume; matching flags come
// in as-is. A record within tolerance with all flags set lands as MATCHED,
// anything else as PENDING.
func (s *ReconService) RegisterRecord(ctx context.Context, input RegisterRecordInput) (*model.ReconRecord, error) {
	if !input.Principal.CanMutate() {
		return nil, ErrPermissionDenied
	}

	record := input.Record
	if record.SupplierID == uuid.Nil || record.LocationID == uuid.Nil {
		return nil, fmt.Errorf("%w: supplier_id and location_id are required", ErrInvalidInput)
	}
	if strings.TrimSpace(record.FlightNumber) == "" {
		return nil, fmt.Errorf("%w: flight number is required", ErrInvalidInput)
	}

	record.VarianceL = record.MovementVolumeL - record.IFSVolumeL
	if record.Status == "" {
		if record.FlightMatch && record.DateMatch && record.AircraftMatch &&
			math.Abs(record.VarianceL) <= s.varianceTolerance {
			record.Status = model.RecordStatusMatched
		} else {
			record.Status = model.RecordStatusPending
		}
	}

	return s.records.Create(ctx, record)
}

func (s *ReconService) MarkRecordReconciled(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.CanMutate() {
		return ErrPermissionDenied
	}
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "record")
	}
	if record.Status == model.RecordStatusInvoiced {
		return fmt.Errorf("%w: invoiced records cannot change status", ErrInvalidInput)
	}
	return s.records.UpdateStatus(ctx, id, model.RecordStatusReconciled)
}

type RaiseQueryInput struct {
	RecordID    uuid.UUID
	QueryType   model.QueryType
	Description string
	Assignee    string
	Principal   model.Principal
}

// RaiseQuery opens a query on a record; the record moves to QUERIED.
func (s *ReconService) RaiseQuery(ctx context.Context, input RaiseQueryInput) (*model.Query, error) {
	if !input.Principal.CanMutate() {
		return nil, ErrPermissionDenied
	}
	switch input.QueryType {
	case model.QueryTypeVolumeDiscrepancy, model.QueryTypeMissingInvoice,
		model.QueryTypeTariffIssue, model.QueryTypePOMismatch, model.QueryTypeOther:
	default:
		return nil, fmt.Errorf("%w: unknown query type", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	record, err := s.records.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, notFoundOr(err, "record")
	}

	return s.queries.Create(ctx, model.Query{
		RecordID:    record.ID,
		RecordRef:   record.RecordRef,
		QueryType:   input.QueryType,
		Description: input.Description,
		Assignee:    input.Assignee,
		Status:      model.QueryStatusOpen,
	})
}

func (s *ReconService) ListQueries(ctx context.Context, filter repository.QueryFilter) ([]model.Query, error) {
	return s.queries.List(ctx, filter)
}

// queryTransitions holds the allowed forward moves of the query workflow.
var queryTransitions = map[model.QueryStatus][]model.QueryStatus{
	model.QueryStatusOpen:       {model.QueryStatusInProgress, model.QueryStatusResolved, model.QueryStatusClosed},
	model.QueryStatusInProgress: {model.QueryStatusResolved, model.QueryStatusClosed},
	model.QueryStatusResolved:   {model.QueryStatusClosed},
}

func (s *ReconService) UpdateQueryStatus(ctx context.Context, id uuid.UUID, status model.QueryStatus, principal model.Principal) error {
	if !principal.CanMutate() {
		return ErrPermissionDenied
	}

	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "query")
	}

	allowed := false
	for _, next := range queryTransitions[query.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: cannot move query from %s to %s", ErrInvalidInput, query.Status, status)
	}

	return s.queries.UpdateStatus(ctx, id, status)
}
