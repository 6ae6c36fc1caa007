package common

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResponseWriter stores one response document as a new record.
type ResponseWriter interface {
	Add(ctx context.Context, resp PollResponse) (string, error)
}

type UploadOptions struct {
	// Columns are the header labels mapped to q1, q2, q3. Defaults to QUESTION_COLUMNS.
	Columns []string
	// Now stamps each row as it is processed. Defaults to time.Now.
	Now func() time.Time
	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// UploadPollResponses reads the sheet at path and writes one document per
// row that has at least one yes/no answer. It returns the number of
// documents written. A nil writer, including a nil *FirestoreClient left by
// a failed NewFirestoreClient, does nothing.
//
// Only a failure to load the sheet is returned as an error. A failed write
// is logged with its sheet row number and the remaining rows still run.
func UploadPollResponses(ctx context.Context, writer ResponseWriter, path string, opts UploadOptions) (int, error) {
	if writer == nil {
		return 0, nil
	}
	if client, ok := writer.(*FirestoreClient); ok && client == nil {
		return 0, nil
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = QUESTION_COLUMNS
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = &log.Logger
	}

	rows, err := LoadPollRows(path)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			logger.Error().Err(err).Msgf("The file was not found at '%s'. Please check the path.", path)
		} else {
			logger.Error().Err(err).Msg("Error reading Excel file")
		}
		return 0, err
	}
	logger.Info().Msgf("Successfully read %d rows from %s.", len(rows), path)

	uploadCount := 0
	for _, row := range rows {
		resp, hasResponse := NewPollResponse(row, columns, now())
		if !hasResponse {
			continue
		}
		if _, err := writer.Add(ctx, resp); err != nil {
			logger.Error().Err(err).Int("row", row.Number).Msgf("Firestore upload failed for row %d", row.Number)
			continue
		}
		uploadCount++
	}

	logger.Info().Msg("--- Upload Complete ---")
	logger.Info().Msgf("Total valid response rows uploaded: %d", uploadCount)
	return uploadCount, nil
}
