package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jordanwl/covid-19-bot/internal/models"
)

// zoom 5 asks Nominatim for state-level detail, which is prefecture level in Japan.
const nominatimZoom = "5"

// Nominatim reverse-geocodes through an OpenStreetMap Nominatim server.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

type nominatimResponse struct {
	Error   string `json:"error"`
	Address struct {
		State    string `json:"state"`
		Province string `json:"province"`
	} `json:"address"`
}

// NewNominatim creates a Nominatim backend. Nominatim's usage policy requires a
// descriptive User-Agent.
func NewNominatim(baseURL, userAgent string, client *http.Client) *Nominatim {
	if client == nil {
		client = http.DefaultClient
	}
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    client,
	}
}

// ReverseGeocode returns address.state, falling back to address.province.
func (n *Nominatim) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.AdministrativeRegion, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("zoom", nominatimZoom)
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to build nominatim request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder: nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder: nominatim returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocoder: failed to decode nominatim response: %w", err)
	}

	// Nominatim reports "Unable to geocode" for points at sea with a 200 status.
	if body.Error != "" {
		return nil, nil
	}

	name := strings.TrimSpace(body.Address.State)
	if name == "" {
		name = strings.TrimSpace(body.Address.Province)
	}
	if name == "" {
		return nil, nil
	}

	return &models.AdministrativeRegion{Name: name}, nil
}
