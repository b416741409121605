package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jordanwl/covid-19-bot/internal/geocoder"
	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/rs/zerolog"
)

// TokenStrategy picks which whitespace-delimited token of a geocoder region name
// is treated as the prefecture name.
type TokenStrategy string

const (
	TokenFirst TokenStrategy = "first"
	TokenLast  TokenStrategy = "last"
)

// RegionNameResolver is implemented by normalizer.Normalizer.
type RegionNameResolver interface {
	ResolveRegionName(token string) models.ResolvedIntent
}

// LocationResolver turns coordinates into a ResolvedIntent through a reverse geocoder.
type LocationResolver struct {
	geocoder geocoder.ReverseGeocoder
	names    RegionNameResolver
	strategy TokenStrategy
}

// NewLocationResolver creates a location resolver. An empty strategy means TokenFirst.
func NewLocationResolver(g geocoder.ReverseGeocoder, names RegionNameResolver, strategy TokenStrategy) *LocationResolver {
	if strategy != TokenLast {
		strategy = TokenFirst
	}
	return &LocationResolver{geocoder: g, names: names, strategy: strategy}
}

// ValidateCoordinates rejects NaN and out-of-range coordinates.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("service: invalid latitude %v: %w", lat, models.ErrInvalidCoordinates)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("service: invalid longitude %v: %w", lon, models.ErrInvalidCoordinates)
	}
	return nil
}

// ResolveFromCoordinates never fails: invalid coordinates, geocoder errors and
// unknown regions all resolve to Unrecognized.
func (s *LocationResolver) ResolveFromCoordinates(ctx context.Context, lat, lon float64) models.ResolvedIntent {
	logger := zerolog.Ctx(ctx)

	if err := ValidateCoordinates(lat, lon); err != nil {
		logger.Debug().Err(err).Msg("location rejected")
		return models.Unrecognized()
	}

	region, err := s.geocoder.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		logger.Warn().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("reverse geocoding failed")
		return models.Unrecognized()
	}
	if region == nil {
		logger.Debug().Float64("lat", lat).Float64("lon", lon).Msg("no region for coordinates")
		return models.Unrecognized()
	}

	token := s.pickToken(region.Name)
	intent := s.names.ResolveRegionName(token)
	if intent.Kind == models.IntentUnrecognized {
		logger.Info().Str("region", region.Name).Str("token", token).Str("strategy", string(s.strategy)).
			Msg("geocoder region did not resolve to a prefecture")
	}
	return intent
}

func (s *LocationResolver) pickToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	if s.strategy == TokenLast {
		return fields[len(fields)-1]
	}
	return fields[0]
}
