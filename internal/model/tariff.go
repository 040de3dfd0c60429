package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TariffStatus string

const (
	TariffStatusActive  TariffStatus = "ACTIVE"
	TariffStatusExpired TariffStatus = "EXPIRED"
)

// CustomPrice is an itemized charge owned by a tariff. It is surfaced as a
// separate invoice line and never folded into the per-liter total.
type CustomPrice struct {
	ID          uuid.UUID
	Description string
	Price       decimal.Decimal
}

type Tariff struct {
	ID                    uuid.UUID
	SupplierID            uuid.UUID
	LocationID            uuid.UUID
	ReplacementSupplierID *uuid.UUID // required when IsSpotTariff
	BasePrice             decimal.Decimal
	Differential          decimal.Decimal
	Markup                decimal.Decimal
	StartDate             time.Time
	EndDate               time.Time
	IsSpotTariff          bool
	ContractRef           *string
	PerLiterPrices        []CustomPrice
	PerUpliftmentPrices   []CustomPrice
	Status                TariffStatus
	CreatedAt             time.Time
}
