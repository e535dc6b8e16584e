package runner

import (
	"fmt"

	"github.com/MKhiriev/go-slide-form/models"
)

// State is the coarse phase of a [Machine].
type State int

const (
	StateLoading State = iota
	StatePresenting
	StateSubmitting
	StateFinished
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePresenting:
		return "presenting"
	case StateSubmitting:
		return "submitting"
	case StateFinished:
		return "finished"
	case StateErrored:
		return "errored"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Machine is the respondent's navigation state. It is not safe for
// concurrent use; front ends drive it from their single event loop.
type Machine struct {
	state State

	questions []models.DecryptedQuestion
	kinds     []QuestionKind
	index     int

	answers models.AnswerSet

	// err is the fatal error in StateErrored, or the last submit failure
	// while presenting again.
	err error

	responseID string
}

// NewMachine returns a machine in StateLoading.
func NewMachine() *Machine {
	return &Machine{
		state:   StateLoading,
		answers: make(models.AnswerSet),
	}
}

// Loaded moves Loading to Presenting(0). questions must already be ordered.
// An empty list moves the machine to Errored with [ErrEmptyForm].
func (m *Machine) Loaded(questions []models.DecryptedQuestion) error {
	if m.state != StateLoading {
		return m.invalid("Loaded")
	}
	if len(questions) == 0 {
		m.state, m.err = StateErrored, ErrEmptyForm
		return ErrEmptyForm
	}

	m.questions = questions
	m.kinds = make([]QuestionKind, len(questions))
	for i, q := range questions {
		m.kinds[i] = KindFor(q)
	}
	m.index = 0
	m.state = StatePresenting
	return nil
}

// Answer parses input with the current question's kind and stores the
// result. Blank input clears the answer. The stored value is left untouched
// when input does not parse.
func (m *Machine) Answer(input string) error {
	if m.state != StatePresenting {
		return m.invalid("Answer")
	}

	value, err := m.kinds[m.index].Parse(input)
	if err != nil {
		return err
	}
	return m.store(value)
}

// AnswerIndexes stores the options at the given 0-based positions as the
// answer of the current choice question. An empty selection clears the
// answer.
func (m *Machine) AnswerIndexes(indexes []int) error {
	if m.state != StatePresenting {
		return m.invalid("AnswerIndexes")
	}

	kind, ok := m.kinds[m.index].(ChoiceKind)
	if !ok {
		return fmt.Errorf("%w: %s has no options", ErrInvalidAnswer, m.kinds[m.index].Type())
	}
	value, err := kind.ParseIndexes(indexes)
	if err != nil {
		return err
	}
	return m.store(value)
}

func (m *Machine) store(value any) error {
	q, kind := m.questions[m.index], m.kinds[m.index]
	if value == nil {
		delete(m.answers, q.ID)
		return nil
	}
	if err := kind.Validate(q.Required, value); err != nil {
		return err
	}

	m.answers[q.ID] = value
	return nil
}

// Next validates the current answer and advances one question.
func (m *Machine) Next() error {
	if m.state != StatePresenting {
		return m.invalid("Next")
	}
	if err := m.validateAt(m.index); err != nil {
		return err
	}
	if m.index == len(m.questions)-1 {
		return ErrLastQuestion
	}
	m.index++
	return nil
}

// Back goes one question back without validating.
func (m *Machine) Back() error {
	if m.state != StatePresenting {
		return m.invalid("Back")
	}
	if m.index == 0 {
		return ErrFirstQuestion
	}
	m.index--
	return nil
}

// Submit validates every answer and moves to Submitting. It returns a copy
// of the answers for encryption. On a validation failure the machine stays
// in Presenting, positioned at the first offending question.
func (m *Machine) Submit() (models.AnswerSet, error) {
	if m.state != StatePresenting {
		return nil, m.invalid("Submit")
	}
	for i := range m.questions {
		if err := m.validateAt(i); err != nil {
			m.index = i
			return nil, err
		}
	}

	m.err = nil
	m.state = StateSubmitting
	return m.answers.Clone(), nil
}

// SubmitSucceeded moves Submitting to Finished.
func (m *Machine) SubmitSucceeded(responseID string) error {
	if m.state != StateSubmitting {
		return m.invalid("SubmitSucceeded")
	}
	m.responseID = responseID
	m.state = StateFinished
	return nil
}

// SubmitFailed moves Submitting back to Presenting with answers kept, so the
// respondent can retry. The error is available from [Machine.Err].
func (m *Machine) SubmitFailed(err error) error {
	if m.state != StateSubmitting {
		return m.invalid("SubmitFailed")
	}
	m.err = err
	m.state = StatePresenting
	return nil
}

// Fail moves any non-terminal state to Errored.
func (m *Machine) Fail(err error) error {
	if m.state == StateFinished || m.state == StateErrored {
		return m.invalid("Fail")
	}
	m.err = err
	m.state = StateErrored
	return nil
}

func (m *Machine) State() State { return m.state }

// Index is the zero-based position of the current question.
func (m *Machine) Index() int { return m.index }

func (m *Machine) Total() int { return len(m.questions) }

// Current returns the question being presented. ok is false outside
// Presenting and Submitting.
func (m *Machine) Current() (q models.DecryptedQuestion, ok bool) {
	if m.state != StatePresenting && m.state != StateSubmitting {
		return models.DecryptedQuestion{}, false
	}
	return m.questions[m.index], true
}

// CurrentKind returns the kind of the current question, or nil.
func (m *Machine) CurrentKind() QuestionKind {
	if _, ok := m.Current(); !ok {
		return nil
	}
	return m.kinds[m.index]
}

// CurrentAnswer returns the stored value of the current question.
func (m *Machine) CurrentAnswer() (any, bool) {
	q, ok := m.Current()
	if !ok {
		return nil, false
	}
	v, ok := m.answers[q.ID]
	return v, ok
}

// IsLast reports whether the current question is the last one.
func (m *Machine) IsLast() bool {
	return len(m.questions) > 0 && m.index == len(m.questions)-1
}

// Progress renders "i / n" with a one-based i.
func (m *Machine) Progress() string {
	return fmt.Sprintf("%d / %d", m.index+1, len(m.questions))
}

func (m *Machine) Err() error { return m.err }

func (m *Machine) ResponseID() string { return m.responseID }

// Answers returns a copy of the answers collected so far.
func (m *Machine) Answers() models.AnswerSet { return m.answers.Clone() }

func (m *Machine) validateAt(i int) error {
	q := m.questions[i]
	value, ok := m.answers[q.ID]
	if !ok {
		value = nil
	}
	if err := m.kinds[i].Validate(q.Required, value); err != nil {
		return fmt.Errorf("question %d: %w", i+1, err)
	}
	return nil
}

func (m *Machine) invalid(event string) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, event, m.state)
}
