package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		friendly_name VARCHAR(128) NOT NULL,
		legal_name VARCHAR(256) NOT NULL,
		pdf_invoice_name VARCHAR(128) NOT NULL DEFAULT '',
		primary_contact_name VARCHAR(128) NOT NULL DEFAULT '',
		primary_contact_email VARCHAR(256) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS locations (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		country VARCHAR(64) NOT NULL,
		airport_name VARCHAR(128) NOT NULL,
		icao_code CHAR(4) NOT NULL,
		iata_code CHAR(3) NOT NULL,
		vat_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_locations_icao ON locations (icao_code);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'price_change_frequency') THEN
			CREATE TYPE price_change_frequency AS ENUM ('WEEKLY', 'MONTHLY');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_split_type') THEN
			CREATE TYPE contract_split_type AS ENUM ('PERCENTAGE', 'DAYS');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		location_id UUID NOT NULL REFERENCES locations(id),
		contract_ref VARCHAR(64) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		price_change_frequency price_change_frequency NOT NULL,
		split_type contract_split_type NOT NULL DEFAULT 'PERCENTAGE',
		split_value VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contracts_ref ON contracts (contract_ref);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_supplier_location ON contracts (supplier_id, location_id);`,
	`CREATE TABLE IF NOT EXISTS tariffs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		location_id UUID NOT NULL REFERENCES locations(id),
		replacement_supplier_id UUID REFERENCES suppliers(id),
		base_price NUMERIC(18,4) NOT NULL,
		differential NUMERIC(18,4) NOT NULL,
		markup NUMERIC(18,4) NOT NULL,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_spot_tariff BOOLEAN NOT NULL DEFAULT FALSE,
		contract_ref VARCHAR(64),
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tariffs_supplier_location ON tariffs (supplier_id, location_id);`,
	`CREATE TABLE IF NOT EXISTS tariff_custom_prices (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tariff_id UUID NOT NULL REFERENCES tariffs(id) ON DELETE CASCADE,
		kind VARCHAR(16) NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(18,4) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_tariff_custom_prices_tariff ON tariff_custom_prices (tariff_id);`,
	`CREATE TABLE IF NOT EXISTS recon_records (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		record_ref VARCHAR(32) NOT NULL,
		flight_date DATE NOT NULL,
		flight_number VARCHAR(16) NOT NULL,
		aircraft_registration VARCHAR(16) NOT NULL,
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		location_id UUID NOT NULL REFERENCES locations(id),
		movement_volume_l NUMERIC(12,1) NOT NULL,
		ifs_volume_l NUMERIC(12,1) NOT NULL,
		variance_l NUMERIC(12,1) NOT NULL,
		flight_match BOOLEAN NOT NULL DEFAULT FALSE,
		date_match BOOLEAN NOT NULL DEFAULT FALSE,
		aircraft_match BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_recon_records_ref ON recon_records (record_ref);`,
	`CREATE INDEX IF NOT EXISTS idx_recon_records_status ON recon_records (status);`,
	`CREATE INDEX IF NOT EXISTS idx_recon_records_flight_date ON recon_records (flight_date);`,
	`CREATE TABLE IF NOT EXISTS queries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		query_ref VARCHAR(32) NOT NULL,
		record_id UUID NOT NULL REFERENCES recon_records(id),
		query_type VARCHAR(32) NOT NULL,
		description TEXT NOT NULL,
		assignee VARCHAR(128) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL DEFAULT 'OPEN',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_queries_ref ON queries (query_ref);`,
	`CREATE INDEX IF NOT EXISTS idx_queries_status ON queries (status);`,
	`CREATE TABLE IF NOT EXISTS uploads (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		source VARCHAR(16) NOT NULL,
		report_type VARCHAR(64) NOT NULL,
		supplier_id UUID REFERENCES suppliers(id),
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		filename VARCHAR(256) NOT NULL,
		record_count INT NOT NULL DEFAULT 0,
		matched_records INT NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'PROCESSING',
		uploaded_by VARCHAR(128) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_uploads_supplier ON uploads (supplier_id) WHERE supplier_id IS NOT NULL;`,
	`CREATE SEQUENCE IF NOT EXISTS recon_record_ref_seq START 5000;`,
	`CREATE SEQUENCE IF NOT EXISTS recon_query_ref_seq START 1;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
