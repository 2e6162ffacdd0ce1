package main

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/amqp"
	"github.com/household-ledger/backend/internal/ledger"
	"github.com/household-ledger/backend/internal/models"
	"github.com/household-ledger/backend/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// The base URL all resource links are built with
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models
	err = models.Connect("data/gorm.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The undo window for externally ingested expenses can be tuned,
	// mostly for development
	window := time.Duration(0)
	if w, ok := os.LookupEnv("UNDO_WINDOW"); ok {
		window, err = time.ParseDuration(w)
		if err != nil {
			log.Fatal().Msg("environment variable UNDO_WINDOW must be a valid duration")
		}
	}

	service := ledger.NewService(models.DB, window)
	defer service.Close()

	// Consume expense events from other household features when a
	// broker is configured
	if amqpURL, ok := os.LookupEnv("AMQP_URL"); ok {
		exchange := os.Getenv("AMQP_EXCHANGE")
		queue := os.Getenv("AMQP_QUEUE")

		client, err := amqp.NewClient(amqpURL, exchange, queue)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer client.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			err := client.ConsumeExpenseAdded(ctx, func(msg *amqp.ExpenseAddedMessage) error {
				_, err := service.Ingest(msg.Expense())
				return err
			})
			if err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("expense event consumer stopped")
			}
		}()
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"), service)

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
