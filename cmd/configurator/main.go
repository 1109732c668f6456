package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/config"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/domain/repository"
	"github.com/yourusername/pc-configurator/internal/infrastructure/storage"
	"github.com/yourusername/pc-configurator/internal/usecase"
	"github.com/yourusername/pc-configurator/pkg/logger"
)

type cliFlags struct {
	budget   int
	ram      string
	storage  string
	cpu      string
	gpu      string
	usage    string
	os       bool
	catalog  string
	xlsxOut  string
	profiles string
	importTo string
	lang     string
}

type output struct {
	Result   *entity.Result         `json:"result"`
	Analysis *usecase.BuildAnalysis `json:"analysis,omitempty"`
}

func main() {
	f := parseFlags(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Konfiguratsiya yuklanmadi: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.Component("cli")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, f, log); err != nil {
		log.Error().Err(err).Msg("configurator failed")
		msg := usecase.UserMessage(err, f.lang)
		if usecase.KindOf(err) == usecase.KindUnknown {
			msg = err.Error()
		}
		fmt.Fprintln(os.Stderr, "❌ "+msg)
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string) cliFlags {
	var f cliFlags
	fs := flag.NewFlagSet("configurator", flag.ExitOnError)
	fs.IntVar(&f.budget, "budget", 0, "total budget in yen")
	fs.StringVar(&f.ram, "ram", "16GB", "memory capacity, e.g. 32GB")
	fs.StringVar(&f.storage, "storage", "1TB", "storage capacity, e.g. 2TB")
	fs.StringVar(&f.cpu, "cpu", entity.BrandAny, "cpu brand: intel, amd or any")
	fs.StringVar(&f.gpu, "gpu", entity.BrandAny, "gpu brand: nvidia, amd or any")
	fs.StringVar(&f.usage, "usage", "gaming", "usage profile")
	fs.BoolVar(&f.os, "os", false, "include an operating system")
	fs.StringVar(&f.catalog, "catalog", "", "catalog file (overrides CATALOG_PATH and CATALOG_SOURCE)")
	fs.StringVar(&f.xlsxOut, "xlsx-out", "", "write the build to this .xlsx file")
	fs.StringVar(&f.profiles, "profiles", "", "extra usage profiles yaml (overrides PROFILES_PATH)")
	fs.StringVar(&f.importTo, "import-to", "", "copy the file catalog into sqlite or postgres and exit")
	fs.StringVar(&f.lang, "lang", "ja", "error message language: ja or en")
	_ = fs.Parse(args)
	return f
}

func run(ctx context.Context, cfg *config.Config, f cliFlags, log zerolog.Logger) error {
	if f.catalog != "" {
		cfg.CatalogSource = config.SourceFile
		cfg.CatalogPath = f.catalog
	}
	if f.profiles != "" {
		cfg.ProfilesPath = f.profiles
	}

	if f.importTo != "" {
		return importCatalog(ctx, cfg, f.importTo, log)
	}

	store, err := storage.Open(ctx, openOptions(cfg, cfg.CatalogSource, log))
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := store.Load(ctx)
	if err != nil {
		return err
	}
	report := usecase.ValidateCatalog(catalog)
	for _, issue := range report.Issues {
		log.Warn().Str("issue", issue.String()).Msg("catalog issue")
	}
	log.Info().Int("parts", report.PartCount).Str("updated", catalog.LastUpdated).Msg("catalog loaded")

	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	req := entity.Requirements{
		Budget:    f.budget,
		RAM:       f.ram,
		Storage:   entity.StorageRequirement{Capacity: f.storage},
		CPUBrand:  f.cpu,
		GPUBrand:  f.gpu,
		Usage:     f.usage,
		IncludeOS: f.os,
	}
	res, err := engine.Recommend(ctx, req, catalog)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(output{Result: res, Analysis: engine.AnalyzeBuild(&res.Recommendations)}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if f.xlsxOut != "" {
		if err := writeXLSX(f.xlsxOut, res); err != nil {
			return err
		}
		log.Info().Str("path", f.xlsxOut).Msg("xlsx written")
	}
	return nil
}

func openOptions(cfg *config.Config, source string, log zerolog.Logger) storage.OpenOptions {
	return storage.OpenOptions{
		Source:      source,
		Path:        cfg.CatalogPath,
		PostgresDSN: cfg.PostgresDSN,
		SQLitePath:  cfg.SQLitePath,
		Log:         log,
	}
}

func newEngine(cfg *config.Config, log zerolog.Logger) (*usecase.RecommendationEngine, error) {
	profiles := usecase.NewProfileRegistry()
	if cfg.ProfilesPath != "" {
		if err := profiles.LoadFile(cfg.ProfilesPath); err != nil {
			return nil, err
		}
	}
	return usecase.NewRecommendationEngine(
		usecase.WithLogger(logger.Component("engine")),
		usecase.WithSafetyMargin(cfg.PSUSafetyMargin),
		usecase.WithBaseSystemPower(cfg.BaseSystemPower),
		usecase.WithMaxDowngradeIterations(cfg.MaxDowngradeIterations),
		usecase.WithProfiles(profiles),
	), nil
}

// importCatalog fayl katalogini DB ga ko'chirish
func importCatalog(ctx context.Context, cfg *config.Config, target string, log zerolog.Logger) error {
	target = strings.ToLower(strings.TrimSpace(target))
	if target != config.SourceSQLite && target != config.SourcePostgres {
		return fmt.Errorf("-import-to must be sqlite or postgres, got %q", target)
	}

	catalog, err := storage.NewFileCatalogRepository(cfg.CatalogPath).Load(ctx)
	if err != nil {
		return err
	}
	if report := usecase.ValidateCatalog(catalog); !report.OK() {
		return report.Err()
	}

	store, err := storage.Open(ctx, openOptions(cfg, target, log))
	if err != nil {
		return err
	}
	var writer repository.CatalogWriter = store
	if err := writer.SaveCatalog(ctx, catalog); err != nil {
		_ = store.Close()
		return err
	}
	log.Info().Str("target", target).Int("parts", catalog.Size()).Msg("catalog imported")
	return store.Close()
}

func writeXLSX(path string, res *entity.Result) error {
	data, err := storage.ExportResultXLSX(res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("xlsx %s yozilmadi: %w", path, err)
	}
	return nil
}
