package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/pc-configurator/config"
	"github.com/yourusername/pc-configurator/internal/delivery/telegram"
	"github.com/yourusername/pc-configurator/internal/domain/repository"
	"github.com/yourusername/pc-configurator/internal/infrastructure/gemini"
	"github.com/yourusername/pc-configurator/internal/infrastructure/storage"
	"github.com/yourusername/pc-configurator/internal/usecase"
	"github.com/yourusername/pc-configurator/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Logger()
		bootLog.Fatal().Err(err).Msg("❌ Konfiguratsiya yuklanmadi")
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.Component("main")
	log.Info().Msg("🚀 Ilova ishga tushmoqda...")

	if err := cfg.RequireBotSecrets(); err != nil {
		log.Fatal().Err(err).Msg("❌ Secretlar yetishmayapti")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if isEmptyOrDisabled(cfg.TelegramToken) {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN yo'q. Bot vaqtincha ishga tushmaydi.")
		<-ctx.Done()
		return
	}

	// 1. Katalog: manbadan o'qib xotirada ushlab turiladi
	source, err := storage.Open(ctx, storage.OpenOptions{
		Source:      cfg.CatalogSource,
		Path:        cfg.CatalogPath,
		PostgresDSN: cfg.PostgresDSN,
		SQLitePath:  cfg.SQLitePath,
		Log:         logger.Component("storage"),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Katalog manbasi ochilmadi")
	}
	catalog, err := source.Load(ctx)
	_ = source.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Katalog yuklanmadi")
	}
	report := usecase.ValidateCatalog(catalog)
	for _, issue := range report.Issues {
		log.Warn().Str("issue", issue.String()).Msg("catalog issue")
	}
	catalogRepo := storage.NewMemoryCatalogRepository()
	catalogRepo.Replace(catalog)
	log.Info().Str("source", cfg.CatalogSource).Int("parts", report.PartCount).Msg("✅ Katalog tayyor")

	// 2. Engine
	profiles := usecase.NewProfileRegistry()
	if cfg.ProfilesPath != "" {
		if err := profiles.LoadFile(cfg.ProfilesPath); err != nil {
			log.Fatal().Err(err).Str("path", cfg.ProfilesPath).Msg("❌ Usage profillar yuklanmadi")
		}
	}
	engine := usecase.NewRecommendationEngine(
		usecase.WithLogger(logger.Component("engine")),
		usecase.WithSafetyMargin(cfg.PSUSafetyMargin),
		usecase.WithBaseSystemPower(cfg.BaseSystemPower),
		usecase.WithMaxDowngradeIterations(cfg.MaxDowngradeIterations),
		usecase.WithProfiles(profiles),
	)

	opts := []telegram.HandlerOption{
		telegram.WithPartFinder(catalogRepo),
		telegram.WithHandlerLogger(logger.Component("telegram")),
	}

	// 3. Gemini ixtiyoriy
	var aiRepo repository.AIRepository
	if !isEmptyOrDisabled(cfg.GeminiAPIKey) {
		aiRepo, err = gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, logger.Component("gemini"))
		if err != nil {
			log.Fatal().Err(err).Msg("❌ Gemini client yaratilmadi")
		}
		defer aiRepo.Close()
		opts = append(opts, telegram.WithAI(aiRepo))
		log.Info().Msg("✅ Gemini AI client tayyor")
	} else {
		log.Info().Msg("GEMINI_API_KEY yo'q, AI izohlar o'chirilgan")
	}

	// 4. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(cfg.TelegramToken, engine, catalogRepo, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Bot handler yaratilmadi")
	}
	log.Info().Str("username", botHandler.GetBotUsername()).Msg("✅ Telegram bot tayyor")

	log.Info().Msg("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")
	if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("❌ Bot xatosi")
	}
	log.Info().Msg("✅ Bot to'xtatildi.")
}

func initDefaultTimezone() {
	const tzName = "Asia/Tokyo"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 9*60*60)
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
