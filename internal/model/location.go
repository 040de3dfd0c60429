package model

import (
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID          uuid.UUID
	Name        string
	Country     string
	AirportName string
	ICAOCode    string // 4-letter
	IATACode    string // 3-letter
	VATRate     float64
	CreatedAt   time.Time
}
