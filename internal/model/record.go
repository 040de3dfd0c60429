package model

import (
	"time"

	"github.com/google/uuid"
)

type RecordStatus string

const (
	RecordStatusPending    RecordStatus = "PENDING"
	RecordStatusMatched    RecordStatus = "MATCHED"
	RecordStatusReconciled RecordStatus = "RECONCILED"
	RecordStatusQueried    RecordStatus = "QUERIED"
	RecordStatusInvoiced   RecordStatus = "INVOICED"
)

// ReconRecord pairs a supplier movement line with the internal IFS line for
// one uplift. Volumes and the matching flags arrive pre-computed from the
// matching pipeline; this service stores and serves them.
type ReconRecord struct {
	ID                   uuid.UUID
	RecordRef            string
	FlightDate           time.Time
	FlightNumber         string
	AircraftRegistration string
	SupplierID           uuid.UUID
	SupplierName         string
	LocationID           uuid.UUID
	LocationIATA         string
	MovementVolumeL      float64
	IFSVolumeL           float64
	VarianceL            float64
	FlightMatch          bool
	DateMatch            bool
	AircraftMatch        bool
	Status               RecordStatus
	CreatedAt            time.Time
}

type ReconSummary struct {
	Total      int64
	Reconciled int64
	Pending    int64
	Queried    int64
}
