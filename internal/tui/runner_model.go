package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/runner"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	undecryptablePlaceholder = app.UserFieldUndecryptable
	partialDecryptionWarning = "Some content of this form could not be decrypted."
	defaultTitle             = "slideform"
)

// runnerModel renders a [runner.Machine]. All navigation decisions are the
// machine's; the model only translates keys into machine events and widget
// state into answer input.
type runnerModel struct {
	ctx       context.Context
	loader    service.RunnerService
	submitter service.SubmissionService
	shareLink string
	buildInfo models.AppBuildInfo

	machine *runner.Machine
	session *service.FormSession

	input    textinput.Model
	area     textarea.Model
	cursor   int
	selected map[int]bool
	spinner  spinner.Model

	notice        string
	warning       string
	showBuildInfo bool
	quitByUser    bool
}

func newRunnerModel(ctx context.Context, loader service.RunnerService, submitter service.SubmissionService, shareLink string, buildInfo models.AppBuildInfo) runnerModel {
	input := textinput.New()
	input.CharLimit = 1000

	area := textarea.New()
	area.CharLimit = 10000
	area.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return runnerModel{
		ctx:       ctx,
		loader:    loader,
		submitter: submitter,
		shareLink: shareLink,
		buildInfo: buildInfo,
		machine:   runner.NewMachine(),
		input:     input,
		area:      area,
		selected:  make(map[int]bool),
		spinner:   sp,
	}
}

func (m runnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// global hotkeys
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.info):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case loadedMsg:
		return m.onLoaded(msg)
	case submittedMsg:
		return m.onSubmitted(msg)
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		switch m.machine.State() {
		case runner.StatePresenting:
			return m.updatePresenting(msg)
		case runner.StateFinished, runner.StateErrored:
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

func (m runnerModel) onLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		_ = m.machine.Fail(msg.err)
		return m, nil
	}

	m.session = msg.session
	if err := m.machine.Loaded(msg.session.Questions); err != nil {
		return m, nil
	}
	if msg.session.DecryptionErr != nil {
		m.warning = partialDecryptionWarning
	}

	cmd := m.prepareInput()
	return m, cmd
}

func (m runnerModel) onSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		_ = m.machine.SubmitFailed(msg.err)
		m.notice = userMessage(msg.err)
		cmd := m.prepareInput()
		return m, cmd
	}

	_ = m.machine.SubmitSucceeded(msg.result.ID)
	m.notice = ""
	return m, nil
}

func (m runnerModel) updatePresenting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, _ := m.machine.Current()
	multiline := q.Type == models.QuestionLongText

	switch {
	case key.Matches(msg, keys.submit):
		return m.submit()

	case key.Matches(msg, keys.back):
		// keep a parsable answer, drop a broken one
		_ = m.commit()
		if err := m.machine.Back(); err != nil {
			return m, nil
		}
		m.notice = ""
		cmd := m.prepareInput()
		return m, cmd

	case key.Matches(msg, keys.next), key.Matches(msg, keys.enter) && !multiline:
		if err := m.commit(); err != nil {
			m.notice = userMessage(err)
			return m, nil
		}
		if m.machine.IsLast() {
			return m.submit()
		}
		if err := m.machine.Next(); err != nil {
			m.notice = userMessage(err)
			return m, nil
		}
		m.notice = ""
		cmd := m.prepareInput()
		return m, cmd
	}

	if q.Type.HasOptions() {
		switch {
		case key.Matches(msg, keys.up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.down):
			if m.cursor < len(q.Options)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.toggle):
			if len(q.Options) == 0 {
				break
			}
			if q.Type == models.QuestionSingleChoice {
				on := m.selected[m.cursor]
				clear(m.selected)
				m.selected[m.cursor] = !on
			} else {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	if multiline {
		m.area, cmd = m.area.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m runnerModel) submit() (tea.Model, tea.Cmd) {
	if err := m.commit(); err != nil {
		m.notice = userMessage(err)
		return m, nil
	}

	answers, err := m.machine.Submit()
	if err != nil {
		m.notice = userMessage(err)
		cmd := m.prepareInput()
		return m, cmd
	}

	m.notice = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(answers))
}

// commit feeds the current widget state into the machine.
func (m *runnerModel) commit() error {
	q, ok := m.machine.Current()
	if !ok {
		return nil
	}

	if q.Type.HasOptions() {
		picked := make([]int, 0, len(m.selected))
		for i := range q.Options {
			if m.selected[i] {
				picked = append(picked, i)
			}
		}
		return m.machine.AnswerIndexes(picked)
	}

	var input string
	switch {
	case q.Type == models.QuestionLongText:
		input = m.area.Value()
	default:
		input = m.input.Value()
	}

	return m.machine.Answer(input)
}

// prepareInput loads the stored answer of the current question into the
// matching widget.
func (m *runnerModel) prepareInput() tea.Cmd {
	q, ok := m.machine.Current()
	if !ok {
		return nil
	}
	value, _ := m.machine.CurrentAnswer()

	m.cursor = 0
	clear(m.selected)
	m.input.Blur()
	m.area.Blur()

	switch {
	case q.Type.HasOptions():
		var picked []string
		switch v := value.(type) {
		case string:
			picked = []string{v}
		case []string:
			picked = v
		}
		for i, opt := range q.Options {
			if slices.Contains(picked, opt) {
				m.selected[i] = true
			}
		}
		return nil
	case q.Type == models.QuestionLongText:
		m.area.SetValue(formatAnswer(value))
		return m.area.Focus()
	default:
		m.input.SetValue(formatAnswer(value))
		m.input.Placeholder = placeholderFor(q.Type)
		return m.input.Focus()
	}
}

func (m runnerModel) cmdLoad() tea.Cmd {
	ctx, loader, link := m.ctx, m.loader, m.shareLink
	return func() tea.Msg {
		session, err := loader.Load(ctx, link)
		return loadedMsg{session: session, err: err}
	}
}

func (m runnerModel) cmdSubmit(answers models.AnswerSet) tea.Cmd {
	ctx, submitter := m.ctx, m.submitter
	formID, sealer := m.session.FormID, m.session.Sealer
	return func() tea.Msg {
		result, err := submitter.Submit(ctx, formID, sealer, answers)
		return submittedMsg{result: result, err: err}
	}
}

func (m runnerModel) busy() bool {
	s := m.machine.State()
	return s == runner.StateLoading || s == runner.StateSubmitting
}

func (m runnerModel) outcome() (Result, error) {
	switch m.machine.State() {
	case runner.StateFinished:
		return Result{ResponseID: m.machine.ResponseID()}, nil
	case runner.StateErrored:
		return Result{}, m.machine.Err()
	}
	return Result{}, ErrUserQuit
}

func formatAnswer(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}

func placeholderFor(t models.QuestionType) string {
	switch t {
	case models.QuestionEmail:
		return "name@example.com"
	case models.QuestionNumber:
		return "number"
	case models.QuestionRating:
		return "1-5"
	case models.QuestionYesNo:
		return "yes / no"
	default:
		return ""
	}
}
