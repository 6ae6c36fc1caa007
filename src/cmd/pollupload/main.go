package main

import (
	"context"
	"os"
	"time"

	"poll_uploader/src/common"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not loaded")
	}

	credentialsPath := envOr("SERVICE_ACCOUNT_KEY_PATH", common.SERVICE_ACCOUNT_KEY_PATH)
	excelPath := envOr("EXCEL_FILE_PATH", common.EXCEL_FILE_PATH)
	collection := envOr("COLLECTION_NAME", common.COLLECTION_NAME)

	ctx := context.Background()
	client, err := common.NewFirestoreClient(ctx, credentialsPath, collection)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing Firestore")
		return
	}
	log.Info().
		Str("project", client.ProjectID()).
		Str("collection", client.Collection()).
		Msg("Firestore client initialized successfully.")

	// Load failures are already logged by the pipeline; the run still ends normally.
	_, _ = common.UploadPollResponses(ctx, client, excelPath, common.UploadOptions{})
}
