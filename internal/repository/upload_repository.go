package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) List(ctx context.Context, source *model.UploadSource) ([]model.Upload, error) {
	baseQuery := `
		SELECT id, source, report_type, supplier_id, period_start, period_end,
			filename, record_count, matched_records, status, uploaded_by, created_at
		FROM uploads
	`
	var filters []string
	var args []interface{}
	if source != nil {
		filters = append(filters, "source = ?")
		args = append(args, *source)
	}
	if len(filters) > 0 {
		baseQuery += " WHERE " + strings.Join(filters, " AND ")
	}
	baseQuery += " ORDER BY created_at DESC"

	var uploads []model.Upload
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *UploadRepository) Create(ctx context.Context, upload model.Upload) (*model.Upload, error) {
	var saved model.Upload
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO uploads (
			source, report_type, supplier_id, period_start, period_end,
			filename, record_count, matched_records, status, uploaded_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, source, report_type, supplier_id, period_start, period_end,
			filename, record_count, matched_records, status, uploaded_by, created_at
	`,
		upload.Source,
		upload.ReportType,
		upload.SupplierID,
		upload.PeriodStart,
		upload.PeriodEnd,
		upload.Filename,
		upload.RecordCount,
		upload.MatchedRecords,
		upload.Status,
		upload.UploadedBy,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
