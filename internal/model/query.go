package model

import (
	"time"

	"github.com/google/uuid"
)

type QueryType string

const (
	QueryTypeVolumeDiscrepancy QueryType = "VOLUME_DISCREPANCY"
	QueryTypeMissingInvoice    QueryType = "MISSING_INVOICE"
	QueryTypeTariffIssue       QueryType = "TARIFF_ISSUE"
	QueryTypePOMismatch        QueryType = "PO_MISMATCH"
	QueryTypeOther             QueryType = "OTHER"
)

type QueryStatus string

const (
	QueryStatusOpen       QueryStatus = "OPEN"
	QueryStatusInProgress QueryStatus = "IN_PROGRESS"
	QueryStatusResolved   QueryStatus = "RESOLVED"
	QueryStatusClosed     QueryStatus = "CLOSED"
)

type Query struct {
	ID          uuid.UUID
	QueryRef    string
	RecordID    uuid.UUID
	RecordRef   string
	QueryType   QueryType
	Description string
	Assignee    string
	Status      QueryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
