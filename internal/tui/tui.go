package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the form")

// Result is the outcome of one runner session.
type Result struct {
	// ResponseID is set when the answers were stored.
	ResponseID string
}

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// RunForm opens shareLink and drives the respondent through the form until
// the answers are stored, a fatal error is acknowledged or the user quits.
func (t *TUI) RunForm(ctx context.Context, shareLink string) (Result, error) {
	model := newRunnerModel(ctx, t.services.RunnerService, t.services.SubmissionService, shareLink, t.buildInfo)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return Result{}, runErr
	}

	result, ok := finalModel.(runnerModel)
	if !ok {
		return Result{}, tea.ErrProgramKilled
	}

	return result.outcome()
}
