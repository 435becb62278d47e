package folio

import "github.com/goliatone/go-folio/internal/runtimeconfig"

var (
	ErrContentDirRequired         = runtimeconfig.ErrContentDirRequired
	ErrGeneratorOutputDirRequired = runtimeconfig.ErrGeneratorOutputDirRequired
	ErrBaseURLInvalid             = runtimeconfig.ErrBaseURLInvalid
	ErrDefaultLocaleUnsupported   = runtimeconfig.ErrDefaultLocaleUnsupported
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	SiteConfig           = runtimeconfig.SiteConfig
	ContentConfig        = runtimeconfig.ContentConfig
	NavigationConfig     = runtimeconfig.NavigationConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	GeneratorConfig      = runtimeconfig.GeneratorConfig
	ThemeConfig          = runtimeconfig.ThemeConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the conventional repository layout defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
