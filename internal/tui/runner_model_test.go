package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/runner"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Fakes ----

type fakeRunnerSvc struct {
	session *service.FormSession
	err     error
}

func (f *fakeRunnerSvc) Load(context.Context, string) (*service.FormSession, error) {
	return f.session, f.err
}

type fakeSubmissionSvc struct {
	calls   int
	answers models.AnswerSet
	err     error
}

func (f *fakeSubmissionSvc) Submit(_ context.Context, _ string, _ crypto.SubmissionSealer, answers models.AnswerSet) (models.InsertResponseResult, error) {
	f.calls++
	f.answers = answers
	if f.err != nil {
		return models.InsertResponseResult{}, f.err
	}
	return models.InsertResponseResult{ID: "01JRESP"}, nil
}

// ---- Helpers ----

func testSession() *service.FormSession {
	return &service.FormSession{
		FormID: "form-1",
		Form:   models.DecryptedForm{ID: "form-1", Title: "Survey"},
		Questions: []models.DecryptedQuestion{
			{ID: "q1", Order: 0, Required: true, Type: models.QuestionText, Text: "What is your name?"},
			{ID: "q2", Order: 1, Type: models.QuestionSingleChoice, Text: "Colour", Options: []string{"Red", "Green"}},
		},
	}
}

func newTestModel(loader service.RunnerService, submitter service.SubmissionService) runnerModel {
	return newRunnerModel(context.Background(), loader, submitter, "https://x/form/form-1#q=a&p=b", models.NewAppBuildInfo("", "", ""))
}

// step runs one Update and, when the command yields a message of interest,
// feeds it back.
func step(t *testing.T, m runnerModel, msg tea.Msg) (runnerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(runnerModel)
	require.True(t, ok)
	return rm, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m runnerModel, s string) runnerModel {
	t.Helper()
	for _, r := range s {
		m, _ = step(t, m, keyRunes(string(r)))
	}
	return m
}

func loaded(t *testing.T, session *service.FormSession, err error) runnerModel {
	t.Helper()
	m := newTestModel(&fakeRunnerSvc{}, &fakeSubmissionSvc{})
	m, _ = step(t, m, loadedMsg{session: session, err: err})
	return m
}

// ── Loading ──

func TestRunnerModel_CmdLoadCallsService(t *testing.T) {
	m := newTestModel(&fakeRunnerSvc{session: testSession()}, &fakeSubmissionSvc{})

	msg := m.cmdLoad()()

	got, ok := msg.(loadedMsg)
	require.True(t, ok)
	require.NoError(t, got.err)
	assert.Equal(t, "form-1", got.session.FormID)
}

func TestRunnerModel_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		session *service.FormSession
		err     error
		wantMsg string
	}{
		{"missing credentials", nil, crypto.ErrMissingCredentials, app.UserMissingCredentials},
		{"store unavailable", nil, adapter.ErrStoreUnavailable, app.UserStoreUnavailable},
		{"no questions", &service.FormSession{FormID: "form-1"}, nil, app.UserNoQuestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loaded(t, tt.session, tt.err)

			assert.Equal(t, runner.StateErrored, m.machine.State())
			assert.Contains(t, m.View(), tt.wantMsg)
		})
	}
}

func TestRunnerModel_PartialDecryptionShowsPlaceholder(t *testing.T) {
	session := testSession()
	session.Questions[0].Text = ""
	session.Questions[0].TextStatus.Failed = true
	session.DecryptionErr = fmt.Errorf("%w: question q1", crypto.ErrFieldDecryptionFailed)

	m := loaded(t, session, nil)

	require.Equal(t, runner.StatePresenting, m.machine.State())
	view := m.View()
	assert.Contains(t, view, app.UserFieldUndecryptable)
	assert.Contains(t, view, partialDecryptionWarning)
	assert.Contains(t, view, "1 / 2")
}

// ── Presenting ──

func TestRunnerModel_RequiredBlocksNext(t *testing.T) {
	m := loaded(t, testSession(), nil)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, m.machine.Index())
	assert.Equal(t, app.UserRequiredAnswer, m.notice)
}

func TestRunnerModel_AnswerAndSubmit(t *testing.T) {
	submitter := &fakeSubmissionSvc{}
	m := newTestModel(&fakeRunnerSvc{}, submitter)
	m, _ = step(t, m, loadedMsg{session: testSession()})

	m = typeText(t, m, "Alice")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.machine.Index())

	// pick "Green"
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, runner.StateSubmitting, m.machine.State())
	require.NotNil(t, cmd)

	msg := m.cmdSubmit(m.machine.Answers())()
	m, _ = step(t, m, msg)

	assert.Equal(t, 1, submitter.calls)
	assert.Equal(t, models.AnswerSet{"q1": "Alice", "q2": "Green"}, submitter.answers)
	assert.Equal(t, runner.StateFinished, m.machine.State())
	assert.Contains(t, m.View(), app.UserSubmitted)

	res, err := m.outcome()
	require.NoError(t, err)
	assert.Equal(t, "01JRESP", res.ResponseID)
}

func TestRunnerModel_NumericOptionLabels(t *testing.T) {
	session := &service.FormSession{
		FormID: "form-1",
		Form:   models.DecryptedForm{ID: "form-1", Title: "Survey"},
		Questions: []models.DecryptedQuestion{
			{ID: "q1", Required: true, Type: models.QuestionSingleChoice, Text: "Team size", Options: []string{"2", "1"}},
			{ID: "q2", Type: models.QuestionMultipleChoice, Text: "Floors", Options: []string{"1", "3", "5", "10"}},
		},
	}
	m := loaded(t, session, nil)

	// first option, labelled "2"
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.machine.Index())

	// options "3" and "10"
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.NoError(t, m.commit())

	assert.Equal(t, models.AnswerSet{"q1": "2", "q2": []string{"3", "10"}}, m.machine.Answers())
}

func TestRunnerModel_BackRestoresAnswer(t *testing.T) {
	m := loaded(t, testSession(), nil)

	m = typeText(t, m, "Alice")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, 0, m.machine.Index())
	assert.Equal(t, "Alice", m.input.Value())
}

func TestRunnerModel_SubmitFailureKeepsAnswers(t *testing.T) {
	m := loaded(t, testSession(), nil)
	m = typeText(t, m, "Alice")
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, runner.StateSubmitting, m.machine.State())

	m, _ = step(t, m, submittedMsg{err: fmt.Errorf("%w: rng", crypto.ErrEncryptionFailed)})

	assert.Equal(t, runner.StatePresenting, m.machine.State())
	assert.Equal(t, app.UserEncryptionFailed, m.notice)
	assert.Equal(t, models.AnswerSet{"q1": "Alice"}, m.machine.Answers())
}

// ── Global keys ──

func TestRunnerModel_QuitByUser(t *testing.T) {
	m := loaded(t, testSession(), nil)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	_, err := m.outcome()
	assert.True(t, errors.Is(err, ErrUserQuit))
}

func TestRunnerModel_BuildInfoToggle(t *testing.T) {
	m := loaded(t, testSession(), nil)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, m.View(), "Version: N/A")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestFormatAnswer(t *testing.T) {
	assert.Equal(t, "", formatAnswer(nil))
	assert.Equal(t, "2.5", formatAnswer(2.5))
	assert.Equal(t, "4", formatAnswer(4))
	assert.Equal(t, "yes", formatAnswer(true))
	assert.Equal(t, "no", formatAnswer(false))
}
