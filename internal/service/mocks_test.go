package service

import (
	"context"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockReverseGeocoder is a mock implementation of geocoder.ReverseGeocoder
type MockReverseGeocoder struct {
	mock.Mock
}

func (m *MockReverseGeocoder) ReverseGeocode(ctx context.Context, lat float64, lon float64) (*models.AdministrativeRegion, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.AdministrativeRegion), args.Error(1)
}

// MockAddressSearcher is a mock implementation of AddressSearcher
type MockAddressSearcher struct {
	mock.Mock
}

func (m *MockAddressSearcher) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Location), args.Error(1)
}

// MockAddressLookup is a mock implementation of AddressLookup
type MockAddressLookup struct {
	mock.Mock
}

func (m *MockAddressLookup) ResolveAddress(ctx context.Context, address string) (models.ResolvedIntent, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(models.ResolvedIntent), args.Error(1)
}

// MockCaseFetcher is a mock implementation of CaseFetcher
type MockCaseFetcher struct {
	mock.Mock
}

func (m *MockCaseFetcher) FetchCaseRecord(ctx context.Context, id models.PrefectureID) (models.CaseRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.CaseRecord), args.Error(1)
}

// MockReplySender is a mock implementation of ReplySender
type MockReplySender struct {
	mock.Mock
}

func (m *MockReplySender) SendReply(ctx context.Context, replyToken string, payload models.ReplyPayload) error {
	args := m.Called(ctx, replyToken, payload)
	return args.Error(0)
}
