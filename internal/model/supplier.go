package model

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID                  uuid.UUID
	FriendlyName        string
	LegalName           string
	PDFInvoiceName      string
	PrimaryContactName  string
	PrimaryContactEmail string
	CreatedAt           time.Time
}
