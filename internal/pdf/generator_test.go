package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

func testDocument() model.TariffDocument {
	contractRef := "SH-CPT-2023"
	return model.TariffDocument{
		Tariff: model.Tariff{
			ID:           uuid.New(),
			BasePrice:    decimal.RequireFromString("18.45"),
			Differential: decimal.RequireFromString("0.85"),
			Markup:       decimal.RequireFromString("0.35"),
			StartDate:    time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2023, 6, 8, 0, 0, 0, 0, time.UTC),
			ContractRef:  &contractRef,
			PerLiterPrices: []model.CustomPrice{
				{ID: uuid.New(), Description: "Throughput fee", Price: decimal.RequireFromString("0.12")},
			},
		},
		Supplier: model.Supplier{
			FriendlyName: "Shell Aviation",
			LegalName:    "Shell Aviation South Africa (Pty) Ltd",
		},
		Location: model.Location{
			Name:     "Cape Town",
			ICAOCode: "FACT",
			IATACode: "CPT",
			Country:  "South Africa",
			VATRate:  15,
		},
		TotalPerLiter: decimal.RequireFromString("19.65"),
	}
}

func TestGenerateContractDocument(t *testing.T) {
	g := NewGenerator()

	content, err := g.Generate(testDocument())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestGenerateSpotDocument(t *testing.T) {
	g := NewGenerator()

	doc := testDocument()
	doc.Tariff.ContractRef = nil
	doc.Tariff.IsSpotTariff = true
	replacement := model.Supplier{FriendlyName: "Engen Aviation"}
	doc.ReplacementSupplier = &replacement

	content, err := g.Generate(doc)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
}
