package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/skyops/fuelrecon/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	g := NewGenerator()

	export := model.RecordsExport{
		Records: []model.ReconRecord{
			{
				ID:                   uuid.New(),
				RecordRef:            "REC-2023-5001",
				FlightDate:           time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
				FlightNumber:         "FA101",
				AircraftRegistration: "ZS-ABC",
				SupplierName:         "Shell Aviation",
				LocationIATA:         "CPT",
				MovementVolumeL:      1200,
				IFSVolumeL:           1198,
				VarianceL:            2,
				Status:               model.RecordStatusMatched,
			},
		},
		Summary: model.ReconSummary{Total: 1, Reconciled: 0, Pending: 0, Queried: 0},
	}

	content, err := g.Generate(export)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty workbook")
	}

	file, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer file.Close()

	if ref, _ := file.GetCellValue("Records", "A2"); ref != "REC-2023-5001" {
		t.Errorf("Records!A2 = %q, want REC-2023-5001", ref)
	}
	if total, _ := file.GetCellValue("Summary", "B3"); total != "1" {
		t.Errorf("Summary!B3 = %q, want 1", total)
	}
}

func TestGenerateEmptyExport(t *testing.T) {
	g := NewGenerator()

	content, err := g.Generate(model.RecordsExport{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Generate returned empty workbook")
	}
}
