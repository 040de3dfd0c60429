package model

import "github.com/shopspring/decimal"

// TariffDocument bundles everything the PDF confirmation needs.
type TariffDocument struct {
	Tariff              Tariff
	Supplier            Supplier
	Location            Location
	ReplacementSupplier *Supplier
	TotalPerLiter       decimal.Decimal
}

// RecordsExport is the workbook payload for a combined-records download.
type RecordsExport struct {
	Records []ReconRecord
	Summary ReconSummary
}
