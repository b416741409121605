package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jordanwl/covid-19-bot/internal/config"
	"github.com/jordanwl/covid-19-bot/internal/logger"
	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/normalizer"
	"github.com/jordanwl/covid-19-bot/internal/prefecture"
	"github.com/jordanwl/covid-19-bot/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// LocationRecord is one row of the address CSV.
type LocationRecord struct {
	Prefecture   string
	Municipality string
	Address1     string
	Address2     string
	BlockLot     string
	Lat          float64
	Lon          float64
}

// KanjiResolver is implemented by normalizer.Normalizer.
type KanjiResolver interface {
	ResolveKanji(name string) models.ResolvedIntent
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open file")
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse CSV")
	}

	registry, err := prefecture.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid prefecture table")
	}
	records, skipped := filterRecords(records, normalizer.New(registry))
	log.Info().Int("records", len(records)).Int("skipped", skipped).Msg("parsed CSV")

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	inserted, err := insertRecords(ctx, conn, records)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(ctx, conn, inserted, int64(len(records))); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int64("inserted", inserted).Msg("import finished")
}

func parseCSV(r io.Reader) ([]LocationRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []LocationRecord
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 11 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 11 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[9], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[9])
		}

		lon, err := strconv.ParseFloat(record[10], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[10])
		}

		records = append(records, LocationRecord{
			Prefecture:   record[0],
			Municipality: record[1],
			Address1:     record[2],
			Address2:     record[3],
			BlockLot:     record[4],
			Lat:          lat,
			Lon:          lon,
		})
	}

	return records, nil
}

// filterRecords drops rows whose prefecture column is not one of the 47 prefectures.
func filterRecords(records []LocationRecord, kanji KanjiResolver) ([]LocationRecord, int) {
	kept := records[:0]
	skipped := 0
	for _, r := range records {
		intent := kanji.ResolveKanji(r.Prefecture)
		if intent.Kind != models.IntentPrefectureQuery {
			log.Debug().Str("prefecture", r.Prefecture).Msg("skipping row with unknown prefecture")
			skipped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, skipped
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []LocationRecord) (int64, error) {
	// Use CopyFrom for bulk insert
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"locations"},
		[]string{"prefecture", "municipality", "address_1", "address_2", "block_lot", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Lon, r.Lat) // PostGIS format: lon lat
			return []any{r.Prefecture, r.Municipality, r.Address1, r.Address2, r.BlockLot, geom}, nil
		}),
	)
}

func verifyImport(ctx context.Context, conn *pgx.Conn, inserted, expected int64) error {
	if inserted != expected {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expected, inserted)
	}
	if inserted == 0 {
		return nil
	}

	// Check a sample geom
	var geom string
	err := conn.QueryRow(ctx, "SELECT ST_AsText(geom) FROM locations LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	log.Info().Str("geom", geom).Msg("sample geom")
	return nil
}
