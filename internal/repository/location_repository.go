package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skyops/fuelrecon/internal/model"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, country, airport_name, icao_code, iata_code, vat_rate, created_at
		FROM locations
		ORDER BY name
	`).Scan(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, country, airport_name, icao_code, iata_code, vat_rate, created_at
		FROM locations
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&location).Error
	if err != nil {
		return nil, err
	}
	if location.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &location, nil
}

func (r *LocationRepository) Create(ctx context.Context, location model.Location) (*model.Location, error) {
	var saved model.Location
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO locations (name, country, airport_name, icao_code, iata_code, vat_rate)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, name, country, airport_name, icao_code, iata_code, vat_rate, created_at
	`,
		location.Name,
		location.Country,
		location.AirportName,
		location.ICAOCode,
		location.IATACode,
		location.VATRate,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *LocationRepository) Update(ctx context.Context, location model.Location) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE locations
		SET name = ?,
			country = ?,
			airport_name = ?,
			icao_code = ?,
			iata_code = ?,
			vat_rate = ?
		WHERE id = ?
	`,
		location.Name,
		location.Country,
		location.AirportName,
		location.ICAOCode,
		location.IATACode,
		location.VATRate,
		location.ID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`DELETE FROM locations WHERE id = ?`, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
