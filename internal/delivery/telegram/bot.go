package telegram

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/domain/repository"
	"github.com/yourusername/pc-configurator/internal/usecase"
)

const (
	partsListLimit   = 10
	searchHitsLimit  = 5
	defaultReplyLang = "en"
)

// sender *tgbotapi.BotAPI subset
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// BotHandler /build, /parts, /profiles va /help buyruqlari
type BotHandler struct {
	bot        *tgbotapi.BotAPI
	sender     sender
	engine     *usecase.RecommendationEngine
	catalogs   repository.CatalogRepository
	finder     repository.PartFinder
	ai         repository.AIRepository
	log        zerolog.Logger
	workerPool *workerPool
}

// HandlerOption ixtiyoriy bog'liqliklar
type HandlerOption func(*BotHandler)

// WithAI build commentary; skipped when nil
func WithAI(ai repository.AIRepository) HandlerOption {
	return func(h *BotHandler) { h.ai = ai }
}

// WithPartFinder enables /parts
func WithPartFinder(f repository.PartFinder) HandlerOption {
	return func(h *BotHandler) { h.finder = f }
}

// WithHandlerLogger bot logger
func WithHandlerLogger(l zerolog.Logger) HandlerOption {
	return func(h *BotHandler) { h.log = l }
}

// NewBotHandler telegram bot yaratish
func NewBotHandler(token string, engine *usecase.RecommendationEngine, catalogs repository.CatalogRepository, opts ...HandlerOption) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot yaratilmadi: %w", err)
	}
	h := newHandler(bot, engine, catalogs, opts...)
	h.bot = bot
	return h, nil
}

func newHandler(s sender, engine *usecase.RecommendationEngine, catalogs repository.CatalogRepository, opts ...HandlerOption) *BotHandler {
	h := &BotHandler{
		sender:   s,
		engine:   engine,
		catalogs: catalogs,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.workerPool = newWorkerPool(h, defaultWorkerCount)
	return h
}

// GetBotUsername bot username
func (h *BotHandler) GetBotUsername() string {
	if h.bot == nil {
		return ""
	}
	return h.bot.Self.UserName
}

// reply buyruq matni uchun javob; empty for non-commands
func (h *BotHandler) reply(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	command, args, _ := strings.Cut(text, " ")
	// "/build@MyBot" guruhlarda
	command, _, _ = strings.Cut(strings.ToLower(command), "@")

	switch command {
	case "/start", "/help":
		return helpText
	case "/profiles":
		return FormatProfiles(h.engine.Profiles().Names())
	case "/build":
		return h.handleBuild(ctx, args)
	case "/parts":
		return h.handleParts(ctx, args)
	default:
		return "Unknown command. Send /help for the list."
	}
}

func (h *BotHandler) handleBuild(ctx context.Context, args string) string {
	req, err := ParseBuildCommand(args)
	if err != nil {
		return "❌ " + err.Error() + "\nUsage: " + buildUsage
	}

	catalog, err := h.catalogs.Load(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("catalog load failed")
		return "❌ " + usecase.UserMessage(err, defaultReplyLang)
	}

	res, err := h.engine.Recommend(ctx, req, catalog)
	if err != nil {
		h.log.Warn().Err(err).Int("budget", req.Budget).Str("usage", req.Usage).Msg("build failed")
		return "❌ " + usecase.UserMessage(err, defaultReplyLang)
	}

	text := FormatResult(res, h.engine.AnalyzeBuild(&res.Recommendations))
	if h.ai != nil {
		comment, err := h.ai.CommentOnBuild(ctx, req, res)
		if err != nil {
			h.log.Warn().Err(err).Str("result_id", res.ID).Msg("ai commentary skipped")
		} else if comment = strings.TrimSpace(comment); comment != "" {
			text += "\n\n💬 " + comment
		}
	}
	return text
}

func (h *BotHandler) handleParts(ctx context.Context, args string) string {
	if h.finder == nil {
		return "Catalog browsing is not available."
	}
	query := strings.TrimSpace(args)
	if query == "" {
		return "Usage: /parts cpu or /parts rtx 4060\nCategories: " + strings.Join(sortedCategories(), ", ")
	}

	if cat, ok := entity.ParseCategory(query); ok {
		parts, err := h.finder.GetByCategory(ctx, string(cat))
		if err != nil {
			return "❌ " + usecase.UserMessage(err, defaultReplyLang)
		}
		return formatParts(categoryLabels[cat]+" (cheapest first):", parts, partsListLimit)
	}

	hits, err := h.finder.Search(ctx, query)
	if err != nil {
		return "❌ " + usecase.UserMessage(err, defaultReplyLang)
	}
	if len(hits) > searchHitsLimit {
		hits = hits[:searchHitsLimit]
	}
	parts := make([]entity.Part, len(hits))
	for i, hit := range hits {
		parts[i] = hit.Part
	}
	return formatParts(fmt.Sprintf("Matches for %q:", query), parts, searchHitsLimit)
}

// sortedCategories kategoriya nomlari alifbo tartibida
func sortedCategories() []string {
	out := make([]string, 0, len(entity.AllCategories))
	for _, c := range entity.AllCategories {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}
