package geocoder

import (
	"context"
	"testing"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNearestLocationFinder struct {
	mock.Mock
}

func (m *MockNearestLocationFinder) FindNearestLocation(ctx context.Context, lat float64, lon float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*models.Location), args.Error(1)
}

func TestPostGIS_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name         string
		mockLocation *models.Location
		mockError    error
		expected     *models.AdministrativeRegion
		expectError  bool
	}{
		{
			name:         "nearest address found",
			mockLocation: &models.Location{ID: 1, Prefecture: "東京都", Municipality: "千代田区"},
			expected:     &models.AdministrativeRegion{Name: "東京都"},
		},
		{
			name:         "nothing nearby",
			mockLocation: nil,
			expected:     nil,
		},
		{
			name:         "row without prefecture",
			mockLocation: &models.Location{ID: 2},
			expected:     nil,
		},
		{
			name:         "repository error",
			mockLocation: nil,
			mockError:    assert.AnError,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockNearestLocationFinder)
			repo.On("FindNearestLocation", mock.Anything, 35.681236, 139.767125).Return(tt.mockLocation, tt.mockError)

			result, err := NewPostGIS(repo).ReverseGeocode(context.Background(), 35.681236, 139.767125)

			if tt.expectError {
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
			repo.AssertExpectations(t)
		})
	}
}
