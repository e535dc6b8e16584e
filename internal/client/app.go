package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/MKhiriev/go-slide-form/internal/tui"
	"github.com/MKhiriev/go-slide-form/models"
)

// ErrNoShareLink is returned by Run when no link was given.
var ErrNoShareLink = errors.New("share link is required")

// formRunner is the part of [tui.TUI] the app drives.
type formRunner interface {
	RunForm(ctx context.Context, shareLink string) (tui.Result, error)
}

type App struct {
	runner formRunner
	out    io.Writer
	logger *logger.Logger
}

// NewApp wires the form store adapter, the client services and the terminal
// UI. Messages for the respondent are written to out.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	formStore, err := adapter.NewHTTPFormStore(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create form store adapter: %w", err)
	}

	services, err := service.NewClientServices(formStore, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return newApp(tui.New(services, build, logger), out, logger), nil
}

func newApp(runner formRunner, out io.Writer, logger *logger.Logger) *App {
	return &App{
		runner: runner,
		out:    out,
		logger: logger,
	}
}

// Run presents the form behind shareLink. Quitting the form is not an error.
func (a *App) Run(ctx context.Context, shareLink string) error {
	if shareLink == "" {
		return ErrNoShareLink
	}

	result, err := a.runner.RunForm(ctx, shareLink)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("respondent left the form")
		fmt.Fprintln(a.out, "Form closed, nothing was submitted.")
		return nil
	case err != nil:
		a.logger.Err(err).Str("func", "App.Run").Msg("form run failed")
		return err
	}

	a.logger.Info().Str("response_id", result.ResponseID).Msg("response submitted")
	fmt.Fprintf(a.out, "Thank you! Your response %s was recorded.\n", result.ResponseID)
	return nil
}
