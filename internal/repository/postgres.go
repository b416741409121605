package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// nearestLocationRadius bounds FindNearestLocation, in metres.
const nearestLocationRadius = 10000

// Repository reads the PostGIS address table.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// searchPattern builds an ILIKE pattern matching query anywhere in full_address.
// Whitespace is dropped because full_address has none. ok is false for a blank query.
func searchPattern(query string) (pattern string, ok bool) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, query)
	if compact == "" {
		return "", false
	}
	return "%" + likeEscaper.Replace(compact) + "%", true
}

// SearchLocationsByText returns addresses containing query, closest match first.
func (r *Repository) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	pattern, ok := searchPattern(query)
	if !ok {
		return []models.Location{}, nil
	}

	sql := `
		SELECT
			id,
			prefecture,
			municipality,
			address_1,
			address_2,
			block_lot,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM locations
		WHERE full_address ILIKE $1
		ORDER BY length(full_address), id
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, pattern)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		var loc models.Location
		err := rows.Scan(
			&loc.ID,
			&loc.Prefecture,
			&loc.Municipality,
			&loc.Address1,
			&loc.Address2,
			&loc.BlockLot,
			&loc.Latitude,
			&loc.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// FindNearestLocation returns the address closest to the coordinates, or nil when
// nothing lies within nearestLocationRadius.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error) {
	sql := `
		SELECT
			id,
			prefecture,
			municipality,
			address_1,
			address_2,
			block_lot,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude
		FROM locations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, $3)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	var loc models.Location
	err := r.db.QueryRow(ctx, sql, lat, lon, nearestLocationRadius).Scan(
		&loc.ID,
		&loc.Prefecture,
		&loc.Municipality,
		&loc.Address1,
		&loc.Address2,
		&loc.BlockLot,
		&loc.Latitude,
		&loc.Longitude,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}

	return &loc, nil
}
