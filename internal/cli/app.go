// Package cli implements the ledgerctl operator commands on top of the ledger services.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/core/services"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/SscSPs/finance_ledger/internal/platform/config"
	"github.com/SscSPs/finance_ledger/internal/repositories"
	"github.com/charmbracelet/glamour"
)

// App is handed to every command as the first Execute argument. The store is
// opened on first use so commands that never touch it work offline.
type App struct {
	Config *config.Config
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger

	// Render turns markdown into terminal output.
	Render func(markdown string) (string, error)

	container  *portssvc.ServiceContainer
	closeStore func()
}

// NewApp creates an App that opens the store configured in cfg on demand.
func NewApp(cfg *config.Config, out, errOut io.Writer, logger *slog.Logger) *App {
	return &App{
		Config: cfg,
		Out:    out,
		Err:    errOut,
		Logger: logger,
		Render: renderTerminal,
	}
}

// WithServices replaces the lazily opened services, for tests and embedding.
func (a *App) WithServices(container *portssvc.ServiceContainer) *App {
	a.container = container
	return a
}

// Services returns the service container, opening the store on first call.
func (a *App) Services(ctx context.Context) (*portssvc.ServiceContainer, error) {
	if a.container != nil {
		return a.container, nil
	}
	repos, closeStore, err := repositories.Open(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, err
	}
	a.closeStore = closeStore
	a.container = services.NewServiceContainer(a.Config, repos)
	return a.container, nil
}

// Close releases the store if one was opened.
func (a *App) Close() {
	if a.closeStore != nil {
		a.closeStore()
		a.closeStore = nil
	}
}

// prove attaches the identity proven by token or apiKey to ctx. Without
// either, ctx is returned as is and the ledger refuses the mutation.
func (a *App) prove(ctx context.Context, svc *portssvc.ServiceContainer, token, apiKey string) (context.Context, error) {
	var (
		identity domain.Identity
		err      error
	)
	switch {
	case token != "":
		identity, err = svc.TokenService.ParseAccessToken(ctx, token)
	case apiKey != "":
		identity, err = svc.APIKeys.ValidateAPIKey(ctx, apiKey)
	default:
		return ctx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("credentials rejected: %w", err)
	}
	return middleware.WithProvenIdentity(ctx, identity), nil
}

func (a *App) printMarkdown(md string) {
	out, err := a.Render(md)
	if err != nil {
		a.Logger.Debug("Falling back to raw markdown", slog.String("error", err.Error()))
		out = md
	}
	fmt.Fprint(a.Out, out)
}

func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
