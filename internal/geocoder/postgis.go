package geocoder

import (
	"context"
	"fmt"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// NearestLocationFinder is implemented by repository.Repository.
type NearestLocationFinder interface {
	FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// PostGIS reverse-geocodes against the imported address table. The region it
// reports is the kanji prefecture column of the nearest address.
type PostGIS struct {
	repo NearestLocationFinder
}

func NewPostGIS(repo NearestLocationFinder) *PostGIS {
	return &PostGIS{repo: repo}
}

func (p *PostGIS) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.AdministrativeRegion, error) {
	loc, err := p.repo.FindNearestLocation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	if loc == nil || loc.Prefecture == "" {
		return nil, nil
	}
	return &models.AdministrativeRegion{Name: loc.Prefecture}, nil
}
