package repository

// Schema creates the address table used by the PostGIS geocoder backend.
// It is shared by cmd/importer and the integration tests.
//
// full_address joins the address columns without separators, the way Japanese
// addresses are written, so a search for "千代田区丸の内" is a substring match.
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE EXTENSION IF NOT EXISTS pg_trgm;

	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		prefecture VARCHAR(255) NOT NULL,
		municipality VARCHAR(255) NOT NULL DEFAULT '',
		address_1 VARCHAR(255) NOT NULL DEFAULT '',
		address_2 VARCHAR(255) NOT NULL DEFAULT '',
		block_lot VARCHAR(255) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326)
	);
	ALTER TABLE locations ADD COLUMN IF NOT EXISTS full_address TEXT GENERATED ALWAYS AS (
		prefecture || municipality || address_1 || address_2
	) STORED;
	CREATE INDEX IF NOT EXISTS locations_geom_idx ON locations USING GIST (geom);
	CREATE INDEX IF NOT EXISTS locations_full_address_trgm_idx ON locations USING GIN (full_address gin_trgm_ops);
`
