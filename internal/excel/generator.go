package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/skyops/fuelrecon/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(export model.RecordsExport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, export); err != nil {
		return nil, err
	}

	recordsSheet := "Records"
	file.NewSheet(recordsSheet)
	if err := g.writeRecords(file, recordsSheet, export.Records); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, export model.RecordsExport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Combined reconciliation records")
	set("A2", "Exported at")
	set("B2", time.Now().UTC().Format("2006-01-02 15:04"))
	set("A3", "Total records")
	set("B3", export.Summary.Total)
	set("A4", "Reconciled")
	set("B4", export.Summary.Reconciled)
	set("A5", "Pending")
	set("B5", export.Summary.Pending)
	set("A6", "Queried")
	set("B6", export.Summary.Queried)

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func (g *Generator) writeRecords(file *excelize.File, sheet string, records []model.ReconRecord) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Record Ref",
		"Flight Date",
		"Flight No",
		"Aircraft",
		"Supplier",
		"Location",
		"Movement Volume (L)",
		"IFS Volume (L)",
		"Variance (L)",
		"Status",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, record := range records {
		row := i + 2
		set(fmt.Sprintf("A%d", row), record.RecordRef)
		set(fmt.Sprintf("B%d", row), record.FlightDate.Format("2006-01-02"))
		set(fmt.Sprintf("C%d", row), record.FlightNumber)
		set(fmt.Sprintf("D%d", row), record.AircraftRegistration)
		set(fmt.Sprintf("E%d", row), record.SupplierName)
		set(fmt.Sprintf("F%d", row), record.LocationIATA)
		set(fmt.Sprintf("G%d", row), record.MovementVolumeL)
		set(fmt.Sprintf("H%d", row), record.IFSVolumeL)
		set(fmt.Sprintf("I%d", row), record.VarianceL)
		set(fmt.Sprintf("J%d", row), string(record.Status))
	}

	_ = file.SetColWidth(sheet, "A", "A", 18)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	_ = file.SetColWidth(sheet, "C", "D", 10)
	_ = file.SetColWidth(sheet, "E", "E", 24)
	_ = file.SetColWidth(sheet, "F", "F", 10)
	_ = file.SetColWidth(sheet, "G", "I", 18)
	_ = file.SetColWidth(sheet, "J", "J", 14)
	return nil
}
