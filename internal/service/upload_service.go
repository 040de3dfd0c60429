package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/skyops/fuelrecon/internal/config"
	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/repository"
)

type UploadService struct {
	uploads     *repository.UploadRepository
	suppliers   *repository.SupplierRepository
	reportTypes []string
}

func NewUploadService(uploads *repository.UploadRepository, suppliers *repository.SupplierRepository, cfg *config.Config) *UploadService {
	return &UploadService{
		uploads:     uploads,
		suppliers:   suppliers,
		reportTypes: cfg.Recon.UploadReportTypes,
	}
}

type RegisterUploadInput struct {
	Upload    model.Upload
	Principal model.Principal
}

// RegisterUpload records the metadata of a received file. Contents are never
// parsed here; the ingest pipeline reports counts and status separately.
func (s *UploadService) RegisterUpload(ctx context.Context, input RegisterUploadInput) (*model.Upload, error) {
	if !input.Principal.CanMutate() {
		return nil, ErrPermissionDenied
	}

	upload := input.Upload
	if strings.TrimSpace(upload.Filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	if upload.PeriodStart.IsZero() || upload.PeriodEnd.IsZero() {
		return nil, fmt.Errorf("%w: period dates are required", ErrInvalidInput)
	}
	if upload.PeriodStart.After(upload.PeriodEnd) {
		return nil, fmt.Errorf("%w: period start must be before or equal to period end", ErrInvalidInput)
	}

	switch upload.Source {
	case model.UploadSourceSupplier:
		if upload.SupplierID == nil {
			return nil, fmt.Errorf("%w: supplier uploads require a supplier_id", ErrInvalidInput)
		}
		if _, err := s.suppliers.GetByID(ctx, *upload.SupplierID); err != nil {
			return nil, notFoundOr(err, "supplier")
		}
	case model.UploadSourceInternal:
		if upload.SupplierID != nil {
			return nil, fmt.Errorf("%w: internal uploads carry no supplier", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: source must be SUPPLIER or INTERNAL", ErrInvalidInput)
	}

	if !s.reportTypeAllowed(upload.ReportType) {
		return nil, fmt.Errorf("%w: unsupported report type %q", ErrInvalidInput, upload.ReportType)
	}

	if upload.Status == "" {
		upload.Status = model.UploadStatusProcessing
	}
	upload.UploadedBy = input.Principal.Name

	return s.uploads.Create(ctx, upload)
}

func (s *UploadService) ListUploads(ctx context.Context, source *model.UploadSource) ([]model.Upload, error) {
	return s.uploads.List(ctx, source)
}

func (s *UploadService) reportTypeAllowed(reportType string) bool {
	for _, allowed := range s.reportTypes {
		if strings.EqualFold(allowed, reportType) {
			return true
		}
	}
	return false
}
