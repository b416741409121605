// Package geocoder holds the reverse-geocoding backends used by the location resolver.
// Every backend answers with a free-text administrative region name, or nil when
// the coordinates have no known region.
package geocoder

import (
	"context"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// ReverseGeocoder converts coordinates into an administrative region.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (*models.AdministrativeRegion, error)
}

const (
	BackendNominatim = "nominatim"
	BackendPostGIS   = "postgis"
)
