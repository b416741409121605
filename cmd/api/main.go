package main

import (
	"context"
	"net/http"

	"github.com/jordanwl/covid-19-bot/internal/casedata"
	"github.com/jordanwl/covid-19-bot/internal/config"
	"github.com/jordanwl/covid-19-bot/internal/geocoder"
	"github.com/jordanwl/covid-19-bot/internal/handler"
	"github.com/jordanwl/covid-19-bot/internal/logger"
	"github.com/jordanwl/covid-19-bot/internal/messaging"
	"github.com/jordanwl/covid-19-bot/internal/metrics"
	"github.com/jordanwl/covid-19-bot/internal/normalizer"
	"github.com/jordanwl/covid-19-bot/internal/prefecture"
	"github.com/jordanwl/covid-19-bot/internal/reply"
	"github.com/jordanwl/covid-19-bot/internal/repository"
	"github.com/jordanwl/covid-19-bot/internal/server"
	"github.com/jordanwl/covid-19-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// @title			COVID-19 Prefecture Bot API
// @version		1.0
// @description	LINE webhook that replies with the latest COVID-19 case count for a Japanese prefecture.
// @BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logger.Setup(config.LogLevel, config.LogPretty)
	gin.SetMode(config.GinMode)

	registry, err := prefecture.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid prefecture table")
	}
	norm := normalizer.New(registry)

	httpClient := &http.Client{Timeout: config.HTTPTimeout}
	cases := casedata.NewClient(config.CaseDataURL, httpClient, registry)

	deps := service.Dependencies{
		Normalizer: norm,
		Cases:      cases,
		Formatter:  reply.NewFormatter(registry),
	}

	var geo geocoder.ReverseGeocoder
	switch config.GeocoderBackend {
	case geocoder.BackendPostGIS:
		// Database connection
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		geo = geocoder.NewPostGIS(repo)
		deps.Addresses = service.NewAddressResolver(repo, norm)
	default:
		geo = geocoder.NewNominatim(config.NominatimURL, config.NominatimUserAgent, httpClient)
	}
	deps.Locations = service.NewLocationResolver(geo, norm, service.TokenStrategy(config.GeocoderTokenStrategy))

	messenger, err := messaging.NewLineMessenger(config.LineChannelSecret, config.LineChannelToken,
		messaging.WithHTTPClient(httpClient))
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create LINE client")
	}
	deps.Sender = messenger

	m := metrics.New(prometheus.DefaultRegisterer)
	deps.Metrics = m

	dispatcher := service.NewDispatcher(deps)

	r := server.NewRouter(server.Handlers{
		Webhook: handler.NewWebhookHandler(messenger, dispatcher, m),
		Resolve: handler.NewResolveHandler(dispatcher, registry),
	}, prometheus.DefaultGatherer)

	log.Info().
		Str("address", config.ServerAddress).
		Str("geocoder", config.GeocoderBackend).
		Str("line_channel", config.LineChannelID).
		Msg("starting server")

	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
