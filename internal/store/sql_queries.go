package store

import (
	"fmt"

	"github.com/MKhiriev/go-slide-form/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	tableForms     = "forms"
	tableQuestions = "questions"
	tableResponses = "responses"
)

var (
	formColumns     = []string{"id", "owner_id", "title", "description", "created_at", "updated_at"}
	questionColumns = []string{"id", "form_id", "sort_order", "required", "question_type", "question_text", "description", "options"}
	responseColumns = []string{"id", "form_id", "wrapped_key", "iv", "tag", "data", "alg", "created_at"}
)

// upsertForm keeps owner_id and created_at of an existing row.
const upsertFormSuffix = `ON CONFLICT (id) DO UPDATE SET
	title = excluded.title,
	description = excluded.description,
	updated_at = excluded.updated_at`

func buildGetFormQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	query, args, err := b.Select(formColumns...).
		From(tableForms).
		Where(sq.Eq{"id": formID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetFormOwnerQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	query, args, err := b.Select("owner_id").
		From(tableForms).
		Where(sq.Eq{"id": formID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertFormQuery(b sq.StatementBuilderType, form models.Form) (string, []any, error) {
	query, args, err := b.Insert(tableForms).
		Columns(formColumns...).
		Values(form.ID, form.OwnerID, form.Title.String(), form.Description.String(), form.CreatedAt, form.UpdatedAt).
		Suffix(upsertFormSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuestionsQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	query, args, err := b.Delete(tableQuestions).
		Where(sq.Eq{"form_id": formID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertQuestionsQuery inserts all questions in one statement. Order is
// taken from the slice position, so the stored order is always 0..n-1.
func buildInsertQuestionsQuery(b sq.StatementBuilderType, formID string, questions []models.QuestionRecord) (string, []any, error) {
	insert := b.Insert(tableQuestions).Columns(questionColumns...)
	for idx, q := range questions {
		insert = insert.Values(
			q.ID,
			formID,
			idx,
			q.Required,
			string(q.Type),
			q.QuestionText.String(),
			q.Description.String(),
			q.Options.String(),
		)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetQuestionsQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	query, args, err := b.Select(questionColumns...).
		From(tableQuestions).
		Where(sq.Eq{"form_id": formID}).
		OrderBy("sort_order ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// insertResponseSuffix makes a resent envelope a no-op. Every submission
// carries a fresh random IV, so (form_id, iv) identifies it.
const insertResponseSuffix = `ON CONFLICT (form_id, iv) DO NOTHING`

func buildInsertResponseQuery(b sq.StatementBuilderType, r models.Response) (string, []any, error) {
	query, args, err := b.Insert(tableResponses).
		Columns(responseColumns...).
		Values(r.ID, r.FormID, r.Envelope.WrappedKey, r.Envelope.IV, r.Envelope.Tag, r.Envelope.Data, r.Envelope.Alg, r.CreatedAt).
		Suffix(insertResponseSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetResponseIDByIVQuery(b sq.StatementBuilderType, formID, iv string) (string, []any, error) {
	query, args, err := b.Select("id").
		From(tableResponses).
		Where(sq.Eq{"form_id": formID, "iv": iv}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListResponsesQuery(b sq.StatementBuilderType, formID string) (string, []any, error) {
	query, args, err := b.Select(responseColumns...).
		From(tableResponses).
		Where(sq.Eq{"form_id": formID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
