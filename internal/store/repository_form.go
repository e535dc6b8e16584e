package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
)

// formRepository is the SQL implementation of [FormRepository]. Queries are
// built with the dialect-bound builder of the embedded [*DB].
type formRepository struct {
	*DB
	logger *logger.Logger
}

// NewFormRepository constructs a [FormRepository] backed by db.
func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	return &formRepository{
		DB:     db,
		logger: logger,
	}
}

// GetForm fetches one form row by its public ID.
func (f *formRepository) GetForm(ctx context.Context, formID string) (models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetFormQuery(f.builder, formID)
	if err != nil {
		log.Err(err).Str("func", "formRepository.GetForm").Str("form_id", formID).Msg("failed to create query")
		return models.Form{}, err
	}

	var form models.Form
	err = f.DB.QueryRowContext(ctx, query, args...).Scan(
		&form.ID,
		&form.OwnerID,
		&form.Title,
		&form.Description,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "formRepository.GetForm").Str("form_id", formID).Msg("form not found")
		return models.Form{}, ErrFormNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "formRepository.GetForm").Str("form_id", formID).Msg("failed to get form")
		return models.Form{}, f.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return form, nil
}

// GetQuestions returns the stored question list ordered by sort_order.
func (f *formRepository) GetQuestions(ctx context.Context, formID string) ([]models.QuestionRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuestionsQuery(f.builder, formID)
	if err != nil {
		log.Err(err).Str("func", "formRepository.GetQuestions").Str("form_id", formID).Msg("failed to create query")
		return nil, err
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "formRepository.GetQuestions").Str("form_id", formID).Msg("failed to execute query for getting questions")
		return nil, f.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	questions := make([]models.QuestionRecord, 0, 16)

	for rows.Next() {
		var q models.QuestionRecord

		scanErr := rows.Scan(
			&q.ID,
			&q.FormID,
			&q.Order,
			&q.Required,
			&q.Type,
			&q.QuestionText,
			&q.Description,
			&q.Options,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "formRepository.GetQuestions").Str("form_id", formID).Msg("failed to scan question row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		questions = append(questions, q)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "formRepository.GetQuestions").Str("form_id", formID).Msg("error occurred during rows iteration")
		return nil, f.classify(fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return questions, nil
}

// SaveForm publishes a form definition in a single transaction:
//
//  1. the current owner is read; a different owner aborts with
//     [ErrFormOwnedByAnother];
//  2. the form row is upserted;
//  3. the old question list is deleted and the new one inserted.
//
// Readers therefore never observe a half-replaced question list.
func (f *formRepository) SaveForm(ctx context.Context, form models.Form, questions []models.QuestionRecord) error {
	log := logger.FromContext(ctx)

	tx, err := f.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("failed to begin transaction")
		return f.classify(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	// ownership check
	query, args, err := buildGetFormOwnerQuery(f.builder, form.ID)
	if err != nil {
		return err
	}

	var currentOwner string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&currentOwner)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("publishing new form")
	case err != nil:
		log.Err(err).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("failed to read form owner")
		return f.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	case currentOwner != form.OwnerID:
		log.Warn().Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("form belongs to another owner")
		return ErrFormOwnedByAnother
	}

	// upsert form
	query, args, err = buildUpsertFormQuery(f.builder, form)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("failed to upsert form")
		return f.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	// replace questions
	query, args, err = buildDeleteQuestionsQuery(f.builder, form.ID)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("failed to delete old questions")
		return f.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	if len(questions) > 0 {
		query, args, err = buildInsertQuestionsQuery(f.builder, form.ID, questions)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Int("questions", len(questions)).Msg("failed to insert questions")
			return f.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "formRepository.SaveForm").Str("form_id", form.ID).Msg("failed to commit transaction")
		return f.classify(fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr))
	}

	log.Info().
		Str("func", "formRepository.SaveForm").
		Str("form_id", form.ID).
		Int("questions", len(questions)).
		Msg("form published")

	return nil
}
