package runner

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-slide-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFor_Types(t *testing.T) {
	for _, typ := range models.AllQuestionTypes {
		kind := KindFor(models.DecryptedQuestion{Type: typ})
		assert.Equal(t, typ, kind.Type())
	}

	assert.Equal(t, models.QuestionText, KindFor(models.DecryptedQuestion{Type: "matrix"}).Type())
}

func TestQuestionKinds_Parse(t *testing.T) {
	colors := []string{"Red", "Green", "Blue"}

	tests := []struct {
		name    string
		q       models.DecryptedQuestion
		input   string
		want    any
		wantErr error
	}{
		{"text trims", models.DecryptedQuestion{Type: models.QuestionText}, "  Alice ", "Alice", nil},
		{"text blank is no answer", models.DecryptedQuestion{Type: models.QuestionText}, "   ", nil, nil},
		{"text rejects newline", models.DecryptedQuestion{Type: models.QuestionText}, "a\nb", nil, ErrInvalidAnswer},
		{"long text keeps newline", models.DecryptedQuestion{Type: models.QuestionLongText}, "a\nb", "a\nb", nil},
		{"email", models.DecryptedQuestion{Type: models.QuestionEmail}, "a@example.com", "a@example.com", nil},
		{"email with display name rejected", models.DecryptedQuestion{Type: models.QuestionEmail}, "Al <a@example.com>", nil, ErrInvalidAnswer},
		{"email garbage", models.DecryptedQuestion{Type: models.QuestionEmail}, "not-an-email", nil, ErrInvalidAnswer},
		{"number", models.DecryptedQuestion{Type: models.QuestionNumber}, "42.5", 42.5, nil},
		{"number garbage", models.DecryptedQuestion{Type: models.QuestionNumber}, "forty", nil, ErrInvalidAnswer},
		{"number NaN", models.DecryptedQuestion{Type: models.QuestionNumber}, "NaN", nil, ErrInvalidAnswer},
		{"number Inf", models.DecryptedQuestion{Type: models.QuestionNumber}, "Inf", nil, ErrInvalidAnswer},
		{"number -Inf", models.DecryptedQuestion{Type: models.QuestionNumber}, "-Inf", nil, ErrInvalidAnswer},
		{"number overflow", models.DecryptedQuestion{Type: models.QuestionNumber}, "1e400", nil, ErrInvalidAnswer},
		{"single by label", models.DecryptedQuestion{Type: models.QuestionSingleChoice, Options: colors}, "green", "Green", nil},
		{"single by index", models.DecryptedQuestion{Type: models.QuestionSingleChoice, Options: colors}, "3", "Blue", nil},
		{"single unknown", models.DecryptedQuestion{Type: models.QuestionSingleChoice, Options: colors}, "Pink", nil, ErrInvalidAnswer},
		{"single index out of range", models.DecryptedQuestion{Type: models.QuestionSingleChoice, Options: colors}, "4", nil, ErrInvalidAnswer},
		{"single without options", models.DecryptedQuestion{Type: models.QuestionSingleChoice}, "1", nil, ErrInvalidAnswer},
		{"multiple keeps option order", models.DecryptedQuestion{Type: models.QuestionMultipleChoice, Options: colors}, "3, red, 3", []string{"Red", "Blue"}, nil},
		{"multiple only commas", models.DecryptedQuestion{Type: models.QuestionMultipleChoice, Options: colors}, " , ,", nil, nil},
		{"rating", models.DecryptedQuestion{Type: models.QuestionRating}, "4", 4, nil},
		{"rating out of range", models.DecryptedQuestion{Type: models.QuestionRating}, "6", nil, ErrInvalidAnswer},
		{"yes", models.DecryptedQuestion{Type: models.QuestionYesNo}, "Y", true, nil},
		{"no", models.DecryptedQuestion{Type: models.QuestionYesNo}, "no", false, nil},
		{"maybe", models.DecryptedQuestion{Type: models.QuestionYesNo}, "maybe", nil, ErrInvalidAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindFor(tt.q).Parse(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestionKinds_ValidateRequired(t *testing.T) {
	for _, typ := range models.AllQuestionTypes {
		kind := KindFor(models.DecryptedQuestion{Type: typ, Options: []string{"A"}})

		assert.ErrorIs(t, kind.Validate(true, nil), ErrAnswerRequired, "type %s", typ)
		assert.NoError(t, kind.Validate(false, nil), "type %s", typ)
	}
}

func TestQuestionKinds_ValidateWrongValueType(t *testing.T) {
	tests := []struct {
		typ   models.QuestionType
		value any
	}{
		{models.QuestionText, 3},
		{models.QuestionEmail, true},
		{models.QuestionNumber, "3"},
		{models.QuestionSingleChoice, []string{"A"}},
		{models.QuestionMultipleChoice, "A"},
		{models.QuestionRating, 3.0},
		{models.QuestionYesNo, "yes"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			kind := KindFor(models.DecryptedQuestion{Type: tt.typ, Options: []string{"A"}})
			assert.ErrorIs(t, kind.Validate(false, tt.value), ErrInvalidAnswer)
		})
	}
}

func TestNumberKind_ValidateRejectsNonFinite(t *testing.T) {
	kind := KindFor(models.DecryptedQuestion{Type: models.QuestionNumber})

	assert.NoError(t, kind.Validate(true, -3.5))
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, kind.Validate(true, f), ErrInvalidAnswer, "value %v", f)
	}
}

func TestChoiceKinds_ParseIndexes(t *testing.T) {
	numeric := []string{"2", "1", "10"}

	tests := []struct {
		name    string
		typ     models.QuestionType
		indexes []int
		want    any
		wantErr error
	}{
		{"single first option", models.QuestionSingleChoice, []int{0}, "2", nil},
		{"single second option", models.QuestionSingleChoice, []int{1}, "1", nil},
		{"single empty", models.QuestionSingleChoice, nil, nil, nil},
		{"single two picks", models.QuestionSingleChoice, []int{0, 1}, nil, ErrInvalidAnswer},
		{"single out of range", models.QuestionSingleChoice, []int{3}, nil, ErrInvalidAnswer},
		{"single negative", models.QuestionSingleChoice, []int{-1}, nil, ErrInvalidAnswer},
		{"multiple keeps option order", models.QuestionMultipleChoice, []int{2, 0, 2}, []string{"2", "10"}, nil},
		{"multiple empty", models.QuestionMultipleChoice, []int{}, nil, nil},
		{"multiple out of range", models.QuestionMultipleChoice, []int{0, 5}, nil, ErrInvalidAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindFor(models.DecryptedQuestion{Type: tt.typ, Options: numeric}).(ChoiceKind)
			require.True(t, ok)

			got, err := kind.ParseIndexes(tt.indexes)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextKind_MaxLength(t *testing.T) {
	kind := KindFor(models.DecryptedQuestion{Type: models.QuestionText})

	long := make([]rune, maxTextLength+1)
	for i := range long {
		long[i] = 'ж'
	}

	assert.NoError(t, kind.Validate(true, string(long[:maxTextLength])))
	assert.ErrorIs(t, kind.Validate(true, string(long)), ErrInvalidAnswer)
}
