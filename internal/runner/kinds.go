package runner

import (
	"fmt"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-slide-form/models"
)

// QuestionKind is the per-type behaviour of a question. Parse turns raw user
// input into the value stored in the [models.AnswerSet]; blank input parses
// to nil, meaning "no answer". Validate checks a parsed value, including the
// required rule.
type QuestionKind interface {
	Type() models.QuestionType
	Parse(input string) (any, error)
	Validate(required bool, value any) error
}

// ChoiceKind is implemented by kinds with an option list. ParseIndexes takes
// 0-based option positions, so numeric labels are never mistaken for
// positions. An empty selection parses to nil.
type ChoiceKind interface {
	QuestionKind
	ParseIndexes(indexes []int) (any, error)
}

const (
	maxTextLength     = 1000
	maxLongTextLength = 10000

	ratingMin = 1
	ratingMax = 5
)

// KindFor returns the kind of q. Option lists are captured from the
// decrypted question; a question whose options failed to decrypt has none.
// Unknown types fall back to single-line text.
func KindFor(q models.DecryptedQuestion) QuestionKind {
	switch q.Type {
	case models.QuestionLongText:
		return textKind{kind: models.QuestionLongText, maxLen: maxLongTextLength, multiline: true}
	case models.QuestionEmail:
		return emailKind{}
	case models.QuestionNumber:
		return numberKind{}
	case models.QuestionSingleChoice:
		return singleChoiceKind{options: q.Options}
	case models.QuestionMultipleChoice:
		return multipleChoiceKind{options: q.Options}
	case models.QuestionRating:
		return ratingKind{min: ratingMin, max: ratingMax}
	case models.QuestionYesNo:
		return yesNoKind{}
	default:
		return textKind{kind: models.QuestionText, maxLen: maxTextLength}
	}
}

func checkRequired(required bool, value any) (empty bool, err error) {
	if value == nil {
		if required {
			return true, ErrAnswerRequired
		}
		return true, nil
	}
	return false, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAnswer, fmt.Sprintf(format, args...))
}

// ── text / long_text ──

type textKind struct {
	kind      models.QuestionType
	maxLen    int
	multiline bool
}

func (k textKind) Type() models.QuestionType { return k.kind }

func (k textKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	if !k.multiline && strings.ContainsAny(s, "\r\n") {
		return nil, invalid("line breaks are not allowed")
	}
	return s, nil
}

func (k textKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	s, ok := value.(string)
	if !ok {
		return invalid("expected text, got %T", value)
	}
	if utf8.RuneCountInString(s) > k.maxLen {
		return invalid("at most %d characters", k.maxLen)
	}
	return nil
}

// ── email ──

type emailKind struct{}

func (emailKind) Type() models.QuestionType { return models.QuestionEmail }

func (emailKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return nil, invalid("%q is not an email address", s)
	}
	return s, nil
}

func (k emailKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	s, ok := value.(string)
	if !ok {
		return invalid("expected email, got %T", value)
	}
	_, err := k.Parse(s)
	return err
}

// ── number ──

type numberKind struct{}

func (numberKind) Type() models.QuestionType { return models.QuestionNumber }

func (numberKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return nil, invalid("%q is not a number", s)
	}
	return f, nil
}

func (numberKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	f, ok := value.(float64)
	if !ok {
		return invalid("expected number, got %T", value)
	}
	if !isFinite(f) {
		return invalid("%v is not a finite number", f)
	}
	return nil
}

// isFinite rejects NaN and infinities, which have no JSON encoding.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ── single_choice ──

// singleChoiceKind accepts an option label or its 1-based position.
type singleChoiceKind struct {
	options []string
}

func (singleChoiceKind) Type() models.QuestionType { return models.QuestionSingleChoice }

func (k singleChoiceKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	return resolveOption(k.options, s)
}

func (k singleChoiceKind) ParseIndexes(indexes []int) (any, error) {
	switch len(indexes) {
	case 0:
		return nil, nil
	case 1:
		return optionAt(k.options, indexes[0])
	default:
		return nil, invalid("pick one option")
	}
}

func (k singleChoiceKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	s, ok := value.(string)
	if !ok {
		return invalid("expected one option, got %T", value)
	}
	if !slices.Contains(k.options, s) {
		return invalid("%q is not an option", s)
	}
	return nil
}

// ── multiple_choice ──

// multipleChoiceKind accepts a comma separated list of labels or positions.
// The stored value keeps option order, not input order.
type multipleChoiceKind struct {
	options []string
}

func (multipleChoiceKind) Type() models.QuestionType { return models.QuestionMultipleChoice }

func (k multipleChoiceKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}

	picked := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		opt, err := resolveOption(k.options, part)
		if err != nil {
			return nil, err
		}
		picked[opt] = true
	}
	if len(picked) == 0 {
		return nil, nil
	}

	return k.inOptionOrder(picked), nil
}

func (k multipleChoiceKind) ParseIndexes(indexes []int) (any, error) {
	picked := make(map[string]bool, len(indexes))
	for _, i := range indexes {
		opt, err := optionAt(k.options, i)
		if err != nil {
			return nil, err
		}
		picked[opt] = true
	}
	if len(picked) == 0 {
		return nil, nil
	}
	return k.inOptionOrder(picked), nil
}

func (k multipleChoiceKind) inOptionOrder(picked map[string]bool) []string {
	selected := make([]string, 0, len(picked))
	for _, opt := range k.options {
		if picked[opt] {
			selected = append(selected, opt)
		}
	}
	return selected
}

func (k multipleChoiceKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	selected, ok := value.([]string)
	if !ok {
		return invalid("expected options, got %T", value)
	}
	if len(selected) == 0 {
		if required {
			return ErrAnswerRequired
		}
		return nil
	}
	for _, s := range selected {
		if !slices.Contains(k.options, s) {
			return invalid("%q is not an option", s)
		}
	}
	return nil
}

// ── rating ──

type ratingKind struct {
	min, max int
}

func (ratingKind) Type() models.QuestionType { return models.QuestionRating }

func (k ratingKind) Parse(input string) (any, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, invalid("%q is not a whole number", s)
	}
	if n < k.min || n > k.max {
		return nil, invalid("rating must be between %d and %d", k.min, k.max)
	}
	return n, nil
}

func (k ratingKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	n, ok := value.(int)
	if !ok {
		return invalid("expected rating, got %T", value)
	}
	if n < k.min || n > k.max {
		return invalid("rating must be between %d and %d", k.min, k.max)
	}
	return nil
}

// ── yes_no ──

type yesNoKind struct{}

func (yesNoKind) Type() models.QuestionType { return models.QuestionYesNo }

func (yesNoKind) Parse(input string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return nil, nil
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return nil, invalid("answer yes or no")
	}
}

func (yesNoKind) Validate(required bool, value any) error {
	if empty, err := checkRequired(required, value); empty {
		return err
	}
	if _, ok := value.(bool); !ok {
		return invalid("expected yes or no, got %T", value)
	}
	return nil
}

// resolveOption matches typed input against labels first, then 1-based
// positions.
func resolveOption(options []string, s string) (string, error) {
	for _, opt := range options {
		if strings.EqualFold(opt, s) {
			return opt, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return "", invalid("%q is not an option", s)
}

func optionAt(options []string, i int) (string, error) {
	if i < 0 || i >= len(options) {
		return "", invalid("option %d does not exist", i+1)
	}
	return options[i], nil
}
