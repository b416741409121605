//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with PostGIS
	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	_, err = pool.Exec(ctx, Schema)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		INSERT INTO locations (prefecture, municipality, address_1, address_2, geom) VALUES
		('東京都', '千代田区', '丸の内', '', ST_SetSRID(ST_MakePoint(139.767125, 35.681236), 4326)),
		('東京都', '港区', '赤坂', '1丁目', ST_SetSRID(ST_MakePoint(139.732, 35.675), 4326)),
		('大阪府', '大阪市北区', '梅田', '', ST_SetSRID(ST_MakePoint(135.4959, 34.7025), 4326));
	`)
	require.NoError(t, err)

	return pool
}

func TestRepository_SearchLocationsByText(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name               string
		query              string
		expectedPrefecture []string
	}{
		{name: "search by municipality", query: "千代田区", expectedPrefecture: []string{"東京都"}},
		{name: "search by address", query: "梅田", expectedPrefecture: []string{"大阪府"}},
		{name: "search by prefecture", query: "東京都", expectedPrefecture: []string{"東京都", "東京都"}},
		{name: "search by municipality and block", query: "千代田区丸の内", expectedPrefecture: []string{"東京都"}},
		{name: "search by prefecture and municipality", query: "東京都千代田区", expectedPrefecture: []string{"東京都"}},
		{name: "search with spaces", query: "大阪市北区 梅田", expectedPrefecture: []string{"大阪府"}},
		{name: "wildcard is literal", query: "%", expectedPrefecture: []string{}},
		{name: "blank query", query: "  ", expectedPrefecture: []string{}},
		{name: "search with no results", query: "nonexistent", expectedPrefecture: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations, err := repo.SearchLocationsByText(ctx, tt.query)
			require.NoError(t, err)

			got := []string{}
			for _, loc := range locations {
				got = append(got, loc.Prefecture)
			}
			assert.Equal(t, tt.expectedPrefecture, got)
		})
	}
}

func TestRepository_FindNearestLocation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	tests := []struct {
		name     string
		lat      float64
		lon      float64
		expected *models.Location
	}{
		{
			name: "near marunouchi",
			lat:  35.6812,
			lon:  139.7671,
			expected: &models.Location{
				ID:           1,
				Prefecture:   "東京都",
				Municipality: "千代田区",
				Address1:     "丸の内",
				Latitude:     35.681236,
				Longitude:    139.767125,
			},
		},
		{
			name:     "open sea",
			lat:      30.0,
			lon:      150.0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := repo.FindNearestLocation(ctx, tt.lat, tt.lon)
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, loc)
				return
			}
			require.NotNil(t, loc)
			assert.Equal(t, tt.expected.Prefecture, loc.Prefecture)
			assert.Equal(t, tt.expected.Municipality, loc.Municipality)
			assert.InDelta(t, tt.expected.Latitude, loc.Latitude, 1e-6)
			assert.InDelta(t, tt.expected.Longitude, loc.Longitude, 1e-6)
		})
	}
}
