package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type QueryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

const queryColumns = `
	q.id,
	q.query_ref,
	q.record_id,
	r.record_ref,
	q.query_type,
	q.description,
	q.assignee,
	q.status,
	q.created_at,
	q.updated_at
`

type QueryFilter struct {
	Status    *model.QueryStatus
	QueryType *model.QueryType
	Assignee  *string
}

func (r *QueryRepository) List(ctx context.Context, filter QueryFilter) ([]model.Query, error) {
	baseQuery := `
		SELECT ` + queryColumns + `
		FROM queries q
		JOIN recon_records r ON r.id = q.record_id
	`
	var filters []string
	var args []interface{}
	if filter.Status != nil {
		filters = append(filters, "q.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.QueryType != nil {
		filters = append(filters, "q.query_type = ?")
		args = append(args, *filter.QueryType)
	}
	if filter.Assignee != nil {
		filters = append(filters, "q.assignee = ?")
		args = append(args, *filter.Assignee)
	}

	if len(filters) > 0 {
		baseQuery += " WHERE " + strings.Join(filters, " AND ")
	}
	baseQuery += " ORDER BY q.created_at DESC"

	var queries []model.Query
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&queries).Error; err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *QueryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Query, error) {
	var query model.Query
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+queryColumns+`
		FROM queries q
		JOIN recon_records r ON r.id = q.record_id
		WHERE q.id = ?
		LIMIT 1
	`, id).Scan(&query).Error
	if err != nil {
		return nil, err
	}
	if query.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &query, nil
}

// Create raises a query and flips the underlying record to QUERIED in the
// same transaction.
func (r *QueryRepository) Create(ctx context.Context, query model.Query) (*model.Query, error) {
	var saved model.Query
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Raw(`
			INSERT INTO queries (query_ref, record_id, query_type, description, assignee, status)
			VALUES (
				'QRY-' || to_char(NOW(), 'YYYY') || '-' || lpad(nextval('recon_query_ref_seq')::text, 4, '0'),
				?, ?, ?, ?, ?
			)
			RETURNING id, query_ref, record_id, query_type, description, assignee, status, created_at, updated_at
		`,
			query.RecordID,
			query.QueryType,
			query.Description,
			query.Assignee,
			query.Status,
		).Scan(&saved).Error
		if err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE recon_records SET status = ? WHERE id = ?
		`, model.RecordStatusQueried, query.RecordID).Error
	})
	if err != nil {
		return nil, err
	}

	saved.RecordRef = query.RecordRef
	return &saved, nil
}

func (r *QueryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.QueryStatus) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE queries SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
