package service

import (
	"context"
	"fmt"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// AddressSearcher is implemented by repository.Repository.
type AddressSearcher interface {
	SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error)
}

// KanjiResolver is implemented by normalizer.Normalizer.
type KanjiResolver interface {
	ResolveKanji(name string) models.ResolvedIntent
}

// AddressResolver resolves free-form Japanese addresses ("千代田区丸の内") by
// substring-searching the address table and reading the best hit's prefecture.
type AddressResolver struct {
	repo  AddressSearcher
	kanji KanjiResolver
}

func NewAddressResolver(repo AddressSearcher, kanji KanjiResolver) *AddressResolver {
	return &AddressResolver{repo: repo, kanji: kanji}
}

// ResolveAddress returns Unrecognized when nothing matches.
func (s *AddressResolver) ResolveAddress(ctx context.Context, address string) (models.ResolvedIntent, error) {
	if address == "" {
		return models.Unrecognized(), fmt.Errorf("service: address cannot be empty")
	}

	locations, err := s.repo.SearchLocationsByText(ctx, address)
	if err != nil {
		return models.Unrecognized(), fmt.Errorf("service: failed to search locations: %w", err)
	}
	if len(locations) == 0 {
		return models.Unrecognized(), nil
	}

	return s.kanji.ResolveKanji(locations[0].Prefecture), nil
}
