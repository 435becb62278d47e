package sitecmd

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-folio/internal/commands"
	"github.com/goliatone/go-folio/internal/generator"
	"github.com/goliatone/go-folio/internal/i18n"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// ErrGeneratorUnavailable indicates a site command ran without a generator.
var ErrGeneratorUnavailable = errors.New("sitecmd: generator service is not configured")

// BuildSiteHandler orchestrates static builds through the shared handler
// foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided generator.
func NewBuildSiteHandler(service *generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrGeneratorUnavailable
		}

		options := generator.BuildOptions{
			DryRun:  msg.DryRun,
			Locales: parseLocales(msg.Locales),
		}

		result, err := service.Build(ctx, options)
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build",
			},
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand]("site.build"),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Locales) > 0 {
				fields["locales"] = len(msg.Locales)
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler clears generated artifacts.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that cleans generator output.
func NewCleanSiteHandler(service *generator.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		if service == nil {
			return ErrGeneratorUnavailable
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand]("site.clean"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func parseLocales(values []string) []i18n.Locale {
	if len(values) == 0 {
		return nil
	}
	out := make([]i18n.Locale, 0, len(values))
	seen := map[i18n.Locale]struct{}{}
	for _, value := range values {
		locale, ok := i18n.ParseLocale(strings.TrimSpace(value))
		if !ok {
			continue
		}
		if _, dup := seen[locale]; dup {
			continue
		}
		seen[locale] = struct{}{}
		out = append(out, locale)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
