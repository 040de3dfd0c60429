package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

type RecordFilter struct {
	SupplierID *uuid.UUID
	LocationID *uuid.UUID
	Status     *model.RecordStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}

const recordColumns = `
	r.id,
	r.record_ref,
	r.flight_date,
	r.flight_number,
	r.aircraft_registration,
	r.supplier_id,
	s.friendly_name AS supplier_name,
	r.location_id,
	l.iata_code AS location_iata,
	r.movement_volume_l,
	r.ifs_volume_l,
	r.variance_l,
	r.flight_match,
	r.date_match,
	r.aircraft_match,
	r.status,
	r.created_at
`

func (r *RecordRepository) List(ctx context.Context, filter RecordFilter) ([]model.ReconRecord, error) {
	baseQuery := `
		SELECT ` + recordColumns + `
		FROM recon_records r
		JOIN suppliers s ON s.id = r.supplier_id
		JOIN locations l ON l.id = r.location_id
	`
	var filters []string
	var args []interface{}
	if filter.SupplierID != nil {
		filters = append(filters, "r.supplier_id = ?")
		args = append(args, *filter.SupplierID)
	}
	if filter.LocationID != nil {
		filters = append(filters, "r.location_id = ?")
		args = append(args, *filter.LocationID)
	}
	if filter.Status != nil {
		filters = append(filters, "r.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.DateFrom != nil {
		filters = append(filters, "r.flight_date >= ?")
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		filters = append(filters, "r.flight_date < ?")
		args = append(args, *filter.DateTo)
	}

	if len(filters) > 0 {
		baseQuery += " WHERE " + strings.Join(filters, " AND ")
	}
	baseQuery += " ORDER BY r.flight_date DESC, r.record_ref DESC"

	var records []model.ReconRecord
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ReconRecord, error) {
	var record model.ReconRecord
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+recordColumns+`
		FROM recon_records r
		JOIN suppliers s ON s.id = r.supplier_id
		JOIN locations l ON l.id = r.location_id
		WHERE r.id = ?
		LIMIT 1
	`, id).Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

// Create registers a record arriving from the matching pipeline. The record
// ref is drawn from a sequence so refs stay unique under concurrent ingest.
func (r *RecordRepository) Create(ctx context.Context, record model.ReconRecord) (*model.ReconRecord, error) {
	var saved struct {
		ID        uuid.UUID
		RecordRef string
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO recon_records (
			record_ref, flight_date, flight_number, aircraft_registration,
			supplier_id, location_id,
			movement_volume_l, ifs_volume_l, variance_l,
			flight_match, date_match, aircraft_match, status
		) VALUES (
			'REC-' || to_char(NOW(), 'YYYY') || '-' || nextval('recon_record_ref_seq'),
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		)
		RETURNING id, record_ref, created_at
	`,
		record.FlightDate,
		record.FlightNumber,
		record.AircraftRegistration,
		record.SupplierID,
		record.LocationID,
		record.MovementVolumeL,
		record.IFSVolumeL,
		record.VarianceL,
		record.FlightMatch,
		record.DateMatch,
		record.AircraftMatch,
		record.Status,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}

	record.ID = saved.ID
	record.RecordRef = saved.RecordRef
	record.CreatedAt = saved.CreatedAt
	return &record, nil
}

func (r *RecordRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RecordStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE recon_records SET status = ? WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RecordRepository) Summary(ctx context.Context) (*model.ReconSummary, error) {
	var summary model.ReconSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status IN ('RECONCILED', 'INVOICED')) AS reconciled,
			COUNT(*) FILTER (WHERE status IN ('PENDING', 'MATCHED')) AS pending,
			COUNT(*) FILTER (WHERE status = 'QUERIED') AS queried
		FROM recon_records
	`).Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
