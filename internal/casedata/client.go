// Package casedata fetches the upstream case-count snapshot and picks out one prefecture's record.
package casedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/normalizer"
)

// DefaultSnapshotURL is the Apify key-value store holding the latest Japan snapshot.
const DefaultSnapshotURL = "https://api.apify.com/v2/key-value-stores/YbboJrL3cgVfkV1am/records/LATEST?disableRedirect=true"

// Registry is the subset of the prefecture registry the client reads.
type Registry interface {
	Entry(id models.PrefectureID) (models.PrefectureEntry, bool)
}

// Client fetches a fresh snapshot on every call; nothing is cached between requests.
type Client struct {
	url        string
	httpClient *http.Client
	registry   Registry
}

type snapshot struct {
	InfectedByRegion *[]snapshotRecord `json:"infectedByRegion"`
}

type snapshotRecord struct {
	Region        string `json:"region"`
	InfectedCount *int   `json:"infectedCount"`
}

func NewClient(url string, httpClient *http.Client, registry Registry) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, httpClient: httpClient, registry: registry}
}

// FetchCaseRecord returns the snapshot record of the given prefecture.
// Failures wrap models.ErrUpstreamDataUnavailable; a missing or ambiguous
// record is models.ErrCaseRecordNotFound.
func (c *Client) FetchCaseRecord(ctx context.Context, id models.PrefectureID) (models.CaseRecord, error) {
	entry, ok := c.registry.Entry(id)
	if !ok {
		return models.CaseRecord{}, fmt.Errorf("casedata: unknown prefecture %q: %w", id, models.ErrCaseRecordNotFound)
	}

	records, err := c.fetchSnapshot(ctx)
	if err != nil {
		return models.CaseRecord{}, err
	}

	var matches []models.CaseRecord
	for _, r := range records {
		if r.InfectedCount == nil || *r.InfectedCount < 0 {
			continue
		}
		if regionMatches(r.Region, entry) {
			matches = append(matches, models.CaseRecord{Region: r.Region, InfectedCount: *r.InfectedCount})
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.CaseRecord{}, fmt.Errorf("casedata: no record for %q: %w", id, models.ErrCaseRecordNotFound)
	default:
		return models.CaseRecord{}, fmt.Errorf("casedata: %d records for %q: %w", len(matches), id, models.ErrCaseRecordNotFound)
	}
}

func (c *Client) fetchSnapshot(ctx context.Context) ([]snapshotRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("casedata: failed to build request: %v: %w", err, models.ErrUpstreamDataUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("casedata: request failed: %v: %w", err, models.ErrUpstreamDataUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("casedata: upstream returned status %d: %w", resp.StatusCode, models.ErrUpstreamDataUnavailable)
	}

	var snap snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("casedata: failed to decode snapshot: %v: %w", err, models.ErrUpstreamDataUnavailable)
	}
	if snap.InfectedByRegion == nil {
		return nil, fmt.Errorf("casedata: snapshot has no infectedByRegion: %w", models.ErrUpstreamDataUnavailable)
	}

	return *snap.InfectedByRegion, nil
}

// regionMatches accepts the upstream region in English (any case, with or
// without diacritics) or in kanji (with or without the suffix).
func regionMatches(region string, entry models.PrefectureEntry) bool {
	region = strings.TrimSpace(region)
	if region == "" {
		return false
	}
	if region == entry.KanjiName || region == entry.KanjiStem() {
		return true
	}
	return normalizer.Fold(region) == strings.ToLower(entry.RomanizedName)
}
