package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skyops/fuelrecon/internal/model"
	"github.com/skyops/fuelrecon/internal/pricing"
	"github.com/skyops/fuelrecon/internal/repository"
)

type ExcelGenerator interface {
	Generate(export model.RecordsExport) ([]byte, error)
}

type PDFGenerator interface {
	Generate(doc model.TariffDocument) ([]byte, error)
}

type ExportService struct {
	records   *repository.RecordRepository
	tariffs   *repository.TariffRepository
	suppliers *repository.SupplierRepository
	locations *repository.LocationRepository
	excel     ExcelGenerator
	pdf       PDFGenerator
}

func NewExportService(
	records *repository.RecordRepository,
	tariffs *repository.TariffRepository,
	suppliers *repository.SupplierRepository,
	locations *repository.LocationRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *ExportService {
	return &ExportService{
		records:   records,
		tariffs:   tariffs,
		suppliers: suppliers,
		locations: locations,
		excel:     excel,
		pdf:       pdf,
	}
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportRecords dumps the filtered reconciliation records to a workbook.
func (s *ExportService) ExportRecords(ctx context.Context, filter repository.RecordFilter) (*ExportResult, error) {
	records, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	summary, err := s.records.Summary(ctx)
	if err != nil {
		return nil, err
	}

	content, err := s.excel.Generate(model.RecordsExport{
		Records: records,
		Summary: *summary,
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("recon-records-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}

// ExportTariffPDF renders the confirmation document for a saved tariff.
func (s *ExportService) ExportTariffPDF(ctx context.Context, tariffID uuid.UUID) (*ExportResult, error) {
	tariff, err := s.tariffs.GetByID(ctx, tariffID)
	if err != nil {
		return nil, notFoundOr(err, "tariff")
	}
	supplier, err := s.suppliers.GetByID(ctx, tariff.SupplierID)
	if err != nil {
		return nil, notFoundOr(err, "supplier")
	}
	location, err := s.locations.GetByID(ctx, tariff.LocationID)
	if err != nil {
		return nil, notFoundOr(err, "location")
	}

	doc := model.TariffDocument{
		Tariff:        *tariff,
		Supplier:      *supplier,
		Location:      *location,
		TotalPerLiter: pricing.TotalPerLiter(tariff),
	}
	if tariff.ReplacementSupplierID != nil {
		replacement, err := s.suppliers.GetByID(ctx, *tariff.ReplacementSupplierID)
		if err != nil {
			return nil, notFoundOr(err, "replacement supplier")
		}
		doc.ReplacementSupplier = replacement
	}

	content, err := s.pdf.Generate(doc)
	if err != nil {
		return nil, err
	}

	name := sanitizeFileName(supplier.FriendlyName + "-" + location.IATACode)
	if name == "" {
		name = tariff.ID.String()
	}
	fileName := fmt.Sprintf("tariff-%s-%s.pdf", strings.ToLower(name), tariff.StartDate.Format("20060102"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
