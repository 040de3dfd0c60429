package model

import (
	"time"

	"github.com/google/uuid"
)

type UploadSource string

const (
	UploadSourceSupplier UploadSource = "SUPPLIER"
	UploadSourceInternal UploadSource = "INTERNAL"
)

type UploadStatus string

const (
	UploadStatusProcessing UploadStatus = "PROCESSING"
	UploadStatusProcessed  UploadStatus = "PROCESSED"
	UploadStatusError      UploadStatus = "ERROR"
)

// Upload registers the metadata of a received movement or IFS file. File
// contents are parsed by a separate pipeline, never by this service.
type Upload struct {
	ID             uuid.UUID
	Source         UploadSource
	ReportType     string
	SupplierID     *uuid.UUID // nil for internal IFS uploads
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Filename       string
	RecordCount    int
	MatchedRecords int
	Status         UploadStatus
	UploadedBy     string
	CreatedAt      time.Time
}
