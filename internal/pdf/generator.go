package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/skyops/fuelrecon/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(doc model.TariffDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Fuel Tariff Confirmation", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	if doc.Tariff.ContractRef != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Contract %s", *doc.Tariff.ContractRef), "", 1, "C", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Spot tariff (no backing contract)", "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Valid %s to %s",
		formatDate(doc.Tariff.StartDate), formatDate(doc.Tariff.EndDate)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addPartyBlock(pdf, "Supplier", doc.Supplier)
	pdf.Ln(2)
	g.addLocationBlock(pdf, doc.Location)
	if doc.ReplacementSupplier != nil {
		pdf.Ln(2)
		g.addPartyBlock(pdf, "Replacement Supplier", *doc.ReplacementSupplier)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Pricing", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Component", "Amount (R/L)"}
	colWidths := []float64{120, 60}
	g.drawTableRow(pdf, headers, colWidths, true)
	g.drawTableRow(pdf, []string{"Base price", formatAmount(doc.Tariff.BasePrice)}, colWidths, false)
	g.drawTableRow(pdf, []string{"Differential", formatAmount(doc.Tariff.Differential)}, colWidths, false)
	g.drawTableRow(pdf, []string{"Markup", formatAmount(doc.Tariff.Markup)}, colWidths, false)

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total per liter: R %s", formatAmount(doc.TotalPerLiter)), "", 1, "R", false, 0, "")

	if len(doc.Tariff.PerLiterPrices) > 0 || len(doc.Tariff.PerUpliftmentPrices) > 0 {
		pdf.Ln(4)
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Custom charges (invoiced separately)", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)

		itemWidths := []float64{100, 40, 40}
		g.drawTableRow(pdf, []string{"Description", "Basis", "Amount (R)"}, itemWidths, true)
		for _, item := range doc.Tariff.PerLiterPrices {
			g.drawTableRow(pdf, []string{item.Description, "per liter", formatAmount(item.Price)}, itemWidths, false)
		}
		for _, item := range doc.Tariff.PerUpliftmentPrices {
			g.drawTableRow(pdf, []string{item.Description, "per upliftment", formatAmount(item.Price)}, itemWidths, false)
		}
	}

	if doc.Tariff.IsSpotTariff {
		pdf.Ln(4)
		pdf.SetTextColor(200, 100, 0)
		pdf.MultiCell(0, 6, "Note: no contract exists for this supplier-location combination; this tariff applies on a spot basis.", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addPartyBlock(pdf *gofpdf.Fpdf, title string, supplier model.Supplier) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	lines := []string{
		supplier.FriendlyName,
		fmt.Sprintf("Legal name: %s", safeValue(supplier.LegalName)),
		fmt.Sprintf("Contact: %s (%s)", safeValue(supplier.PrimaryContactName), safeValue(supplier.PrimaryContactEmail)),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func (g *Generator) addLocationBlock(pdf *gofpdf.Fpdf, location model.Location) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 6, "Location", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	lines := []string{
		fmt.Sprintf("%s (%s / %s)", location.Name, location.ICAOCode, location.IATACode),
		fmt.Sprintf("%s, %s", safeValue(location.AirportName), safeValue(location.Country)),
		fmt.Sprintf("VAT rate: %.2f%%", location.VATRate),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
}

func (g *Generator) drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
