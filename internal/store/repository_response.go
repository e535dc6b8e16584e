package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
)

type responseRepository struct {
	*DB
	logger *logger.Logger
}

// NewResponseRepository constructs a [ResponseRepository] backed by db.
func NewResponseRepository(db *DB, logger *logger.Logger) ResponseRepository {
	return &responseRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertResponse stores one submission envelope as received and returns the
// ID it is stored under. The envelope is opaque here; only the form owner can
// open it. Inserting an envelope whose IV is already stored for the form is
// a no-op that returns the existing ID, so resending after a lost reply
// never adds a second row.
func (r *responseRepository) InsertResponse(ctx context.Context, response models.Response) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResponseQuery(r.builder, response)
	if err != nil {
		log.Err(err).Str("func", "responseRepository.InsertResponse").Str("form_id", response.FormID).Msg("failed to create query")
		return "", err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "responseRepository.InsertResponse").Str("form_id", response.FormID).Msg("failed to insert response")
		return "", r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "responseRepository.InsertResponse").Str("form_id", response.FormID).Msg("failed to read affected rows")
		return "", ErrResponseNotSaved
	}
	if affected == 0 {
		return r.existingResponseID(ctx, response)
	}

	log.Debug().
		Str("func", "responseRepository.InsertResponse").
		Str("form_id", response.FormID).
		Str("response_id", response.ID).
		Msg("response saved")

	return response.ID, nil
}

// existingResponseID resolves an insert that hit the (form_id, iv) conflict.
func (r *responseRepository) existingResponseID(ctx context.Context, response models.Response) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetResponseIDByIVQuery(r.builder, response.FormID, response.Envelope.IV)
	if err != nil {
		return "", err
	}

	var id string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "responseRepository.InsertResponse").Str("form_id", response.FormID).Msg("response row was not inserted")
		return "", ErrResponseNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "responseRepository.InsertResponse").Str("form_id", response.FormID).Msg("failed to look up resent response")
		return "", r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	log.Info().
		Str("func", "responseRepository.InsertResponse").
		Str("form_id", response.FormID).
		Str("response_id", id).
		Msg("envelope already stored, keeping existing response")

	return id, nil
}

// ListResponses returns every stored envelope of a form, oldest first.
func (r *responseRepository) ListResponses(ctx context.Context, formID string) ([]models.Response, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResponsesQuery(r.builder, formID)
	if err != nil {
		log.Err(err).Str("func", "responseRepository.ListResponses").Str("form_id", formID).Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "responseRepository.ListResponses").Str("form_id", formID).Msg("failed to execute query for listing responses")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	responses := make([]models.Response, 0, 50)

	for rows.Next() {
		var resp models.Response

		scanErr := rows.Scan(
			&resp.ID,
			&resp.FormID,
			&resp.Envelope.WrappedKey,
			&resp.Envelope.IV,
			&resp.Envelope.Tag,
			&resp.Envelope.Data,
			&resp.Envelope.Alg,
			&resp.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "responseRepository.ListResponses").Str("form_id", formID).Msg("failed to scan response row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		responses = append(responses, resp)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "responseRepository.ListResponses").Str("form_id", formID).Msg("error occurred during rows iteration")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return responses, nil
}
