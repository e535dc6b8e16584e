package tui

import (
	"strings"

	"github.com/MKhiriev/go-slide-form/internal/app"
	"github.com/MKhiriev/go-slide-form/internal/runner"
	"github.com/MKhiriev/go-slide-form/models"
)

func (m runnerModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.machine.State() {
	case runner.StateLoading:
		return renderPage(defaultTitle, m.spinner.View()+" Loading form...", "")
	case runner.StateErrored:
		return renderPage(defaultTitle, errorStyle.Render(userMessage(m.machine.Err())), "enter: quit")
	case runner.StateFinished:
		return renderPage(m.title(), app.UserSubmitted, "enter: quit")
	}

	return renderPage(m.title(), m.questionView(), m.hotKeys())
}

func (m runnerModel) title() string {
	if m.session == nil {
		return defaultTitle
	}
	form := m.session.Form
	if form.TitleStatus.Failed {
		return undecryptablePlaceholder
	}
	if form.Title == "" {
		return defaultTitle
	}
	return form.Title
}

func (m runnerModel) questionView() string {
	q, ok := m.machine.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	if m.warning != "" {
		b.WriteString(warningStyle.Render(m.warning))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render(m.machine.Progress()))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(orFailed(q.Text, q.TextStatus.Failed)))
	if q.Required {
		b.WriteString(" *")
	}
	b.WriteString("\n")

	if q.Description != "" || q.DescriptionStatus.Failed {
		b.WriteString(orFailed(q.Description, q.DescriptionStatus.Failed))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.widgetView(q))

	if m.machine.State() == runner.StateSubmitting {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Sending answers...")
	}

	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.notice))
	}

	return b.String()
}

func (m runnerModel) widgetView(q models.DecryptedQuestion) string {
	switch {
	case q.Type.HasOptions():
		if q.OptionsStatus.Failed {
			return failedStyle.Render(undecryptablePlaceholder)
		}

		var b strings.Builder
		for i, opt := range q.Options {
			if i > 0 {
				b.WriteString("\n")
			}
			line := choiceMarker(q.Type, m.selected[i]) + " " + opt
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
		}
		return b.String()
	case q.Type == models.QuestionLongText:
		return m.area.View()
	default:
		return m.input.View()
	}
}

func choiceMarker(t models.QuestionType, on bool) string {
	switch {
	case t == models.QuestionSingleChoice && on:
		return "(x)"
	case t == models.QuestionSingleChoice:
		return "( )"
	case on:
		return "[x]"
	default:
		return "[ ]"
	}
}

func (m runnerModel) hotKeys() string {
	if m.machine.State() == runner.StateSubmitting {
		return ""
	}

	q, _ := m.machine.Current()
	var parts []string

	switch {
	case q.Type.HasOptions():
		parts = append(parts, "↑/↓: move", "space: select")
	case q.Type == models.QuestionLongText:
		parts = append(parts, "tab: next")
	}

	switch {
	case q.Type == models.QuestionLongText:
	case m.machine.IsLast():
		parts = append(parts, "enter: submit")
	default:
		parts = append(parts, "enter: next")
	}
	if m.machine.Index() > 0 {
		parts = append(parts, "shift+tab: back")
	}
	parts = append(parts, "ctrl+s: submit", "f1: about")

	return strings.Join(parts, " · ")
}
