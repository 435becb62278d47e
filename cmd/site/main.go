package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	folio "github.com/goliatone/go-folio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("site: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: site <build|clean> [flags]")
	}

	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "clean":
		return runClean(args[1:])
	default:
		return fmt.Errorf("unknown command %q; expected build or clean", args[0])
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("site-build", flag.ExitOnError)
	cfg := parseConfigFlags(fs)
	locales := fs.String("locales", "", "Comma separated locales to build (defaults to all)")
	dryRun := fs.Bool("dry-run", false, "Render pages without writing artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := folio.New(*cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	result, err := module.Build(context.Background(), splitLocales(*locales), *dryRun)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Printf("built %d pages (%d assets) for %s in %s\n",
			result.PagesBuilt,
			result.AssetsCopied,
			strings.Join(result.Locales, ", "),
			result.Duration.Round(0),
		)
	}
	return nil
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("site-clean", flag.ExitOnError)
	cfg := parseConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := folio.New(*cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}
	return module.Clean(context.Background())
}

func parseConfigFlags(fs *flag.FlagSet) *folio.Config {
	cfg := folio.DefaultConfig()
	fs.StringVar(&cfg.Content.Dir, "content-dir", cfg.Content.Dir, "Path to the markdown content root")
	fs.StringVar(&cfg.Generator.OutputDir, "output-dir", cfg.Generator.OutputDir, "Directory receiving the static tree")
	fs.StringVar(&cfg.Generator.AssetsDir, "assets-dir", cfg.Generator.AssetsDir, "Directory of static assets to copy")
	fs.StringVar(&cfg.Generator.TemplatesDir, "templates-dir", cfg.Generator.TemplatesDir, "Directory of HTML templates overriding the embedded layout")
	fs.StringVar(&cfg.Site.BaseURL, "base-url", cfg.Site.BaseURL, "Absolute site URL used in sitemap and canonical links")
	fs.StringVar(&cfg.Theme.Path, "theme-dir", cfg.Theme.Path, "Optional go-theme directory")
	fs.StringVar(&cfg.Theme.Name, "theme", cfg.Theme.Name, "Theme name to select")
	fs.StringVar(&cfg.Theme.Variant, "theme-variant", cfg.Theme.Variant, "Theme variant to select")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (trace, debug, info, warn, error, fatal)")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format (json, console, pretty)")
	fs.BoolVar(&cfg.Generator.CleanBuild, "clean-build", cfg.Generator.CleanBuild, "Clear the output directory before building")
	return &cfg
}

func splitLocales(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
