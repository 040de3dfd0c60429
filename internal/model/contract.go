package model

import (
	"time"

	"github.com/google/uuid"
)

type PriceChangeFrequency string

const (
	FrequencyWeekly  PriceChangeFrequency = "WEEKLY"
	FrequencyMonthly PriceChangeFrequency = "MONTHLY"
)

type ContractSplitType string

const (
	SplitTypePercentage ContractSplitType = "PERCENTAGE"
	SplitTypeDays       ContractSplitType = "DAYS"
)

type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "ACTIVE"
	ContractStatusExpired ContractStatus = "EXPIRED"
)

type Contract struct {
	ID                   uuid.UUID
	SupplierID           uuid.UUID
	LocationID           uuid.UUID
	ContractRef          string
	StartDate            time.Time
	EndDate              time.Time
	PriceChangeFrequency PriceChangeFrequency
	SplitType            ContractSplitType
	SplitValue           string
	Status               ContractStatus
	CreatedAt            time.Time
}
