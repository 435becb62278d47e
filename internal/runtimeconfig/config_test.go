package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing content dir",
			mutate:  func(cfg *Config) { cfg.Content.Dir = " " },
			wantErr: ErrContentDirRequired,
		},
		{
			name:    "missing output dir",
			mutate:  func(cfg *Config) { cfg.Generator.OutputDir = "" },
			wantErr: ErrGeneratorOutputDirRequired,
		},
		{
			name:    "base url without scheme",
			mutate:  func(cfg *Config) { cfg.Site.BaseURL = "example.com" },
			wantErr: ErrBaseURLInvalid,
		},
		{
			name:    "unsupported default locale",
			mutate:  func(cfg *Config) { cfg.Site.DefaultLocale = "fr" },
			wantErr: ErrDefaultLocaleUnsupported,
		},
		{
			name:    "unknown logging provider",
			mutate:  func(cfg *Config) { cfg.Logging.Provider = "zap" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name: "invalid gologger format",
			mutate: func(cfg *Config) {
				cfg.Logging.Provider = "gologger"
				cfg.Logging.Format = "xml"
			},
			wantErr: ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateAcceptsHTTPSBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("https base url should validate, got %v", err)
	}
}
