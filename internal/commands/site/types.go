package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-folio/internal/generator"
	"github.com/goliatone/go-folio/internal/i18n"
)

const (
	buildSiteMessageType = "folio.site.build"
	cleanSiteMessageType = "folio.site.clean"
)

// ResultCallback receives build results produced by generator operations. The
// callback is optional and is invoked synchronously from the handler.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a site command that produced a build.
type ResultEnvelope struct {
	Result   *generator.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand renders the static site for the requested locales.
type BuildSiteCommand struct {
	Locales        []string       `json:"locales,omitempty"`
	DryRun         bool           `json:"dry_run,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures requested locales belong to the supported set.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	for _, locale := range m.Locales {
		trimmed := strings.TrimSpace(locale)
		if trimmed == "" {
			errs["locales"] = validation.NewError("folio.site.build.locale_empty", "locales must not contain empty values")
			break
		}
		if _, ok := i18n.ParseLocale(trimmed); !ok {
			errs["locales"] = validation.NewError("folio.site.build.locale_unsupported", "locales must belong to the supported set")
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CleanSiteCommand clears generated artifacts from the output directory.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate satisfies command.Message; there are no payload constraints.
func (CleanSiteCommand) Validate() error { return nil }
