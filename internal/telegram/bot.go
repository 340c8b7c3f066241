package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"grocery-planner/internal/app"
	"grocery-planner/internal/config"
	"grocery-planner/internal/grocery"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the grocery planner application.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, application *app.App) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	webhookURL := cfg.TelegramWebhookURL
	wh, _ := tgbotapi.NewWebhook(webhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", webhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{api: bot, app: application, cfg: cfg}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	if b.cfg.TelegramAllowUserID != 0 && update.Message.From.ID != b.cfg.TelegramAllowUserID {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	b.handleMessage(r.Context(), update.Message)
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	userID := strconv.FormatInt(msg.From.ID, 10)

	switch {
	case strings.HasPrefix(text, "/plan "):
		b.handlePlan(ctx, msg.Chat.ID, userID, strings.TrimPrefix(text, "/plan "))
	case strings.HasPrefix(text, "/list "):
		b.handleList(ctx, msg.Chat.ID, strings.TrimPrefix(text, "/list "))
	case strings.HasPrefix(text, "/price "):
		b.handlePrice(ctx, msg.Chat.ID, strings.TrimPrefix(text, "/price "))
	case strings.HasPrefix(text, "/check "):
		b.handleCheck(ctx, msg.Chat.ID, strings.TrimPrefix(text, "/check "))
	default:
		b.reply(msg.Chat.ID, "Commands:\n/plan <request> — generate a weekly plan\n/list <plan-id> — show the grocery list\n/price <plan-id> — fetch prices\n/check <plan-id> <item> — toggle an item")
	}
}

func (b *Bot) handlePlan(ctx context.Context, chatID int64, userID, request string) {
	b.reply(chatID, "🧑‍🍳 Planning your week...")

	planID, list, err := b.app.GeneratePlan(ctx, userID, request)
	if err != nil {
		log.Printf("Plan generation failed: %v", err)
		b.reply(chatID, "Sorry, I couldn't generate a plan. Please try again.")
		return
	}

	plan, err := b.app.Plan(ctx, planID)
	if err != nil {
		log.Printf("Failed to load plan %d: %v", planID, err)
	}
	if plan != nil {
		b.replyMarkdown(chatID, formatPlanMarkdown(planID, plan))
	}
	b.replyMarkdown(chatID, formatListMarkdown(list, plan))
}

func (b *Bot) handleList(ctx context.Context, chatID int64, arg string) {
	planID, ok := b.parsePlanID(chatID, arg)
	if !ok {
		return
	}

	list, plan, err := b.app.LoadList(ctx, planID)
	if err != nil {
		log.Printf("Failed to load list %d: %v", planID, err)
		b.reply(chatID, "Couldn't find that plan.")
		return
	}
	b.replyMarkdown(chatID, formatListMarkdown(list, plan))
}

func (b *Bot) handlePrice(ctx context.Context, chatID int64, arg string) {
	planID, ok := b.parsePlanID(chatID, arg)
	if !ok {
		return
	}

	b.reply(chatID, "💸 Looking up prices...")
	list, priced, err := b.app.PriceList(ctx, planID)
	if err != nil {
		log.Printf("Pricing failed for plan %d: %v", planID, err)
		b.reply(chatID, "Pricing failed. Please try again.")
		return
	}

	b.reply(chatID, fmt.Sprintf("Priced %d items.", priced))
	b.replyMarkdown(chatID, formatListMarkdown(list, nil))
}

func (b *Bot) handleCheck(ctx context.Context, chatID int64, args string) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) != 2 {
		b.reply(chatID, "Usage: /check <plan-id> <item>")
		return
	}
	planID, ok := b.parsePlanID(chatID, parts[0])
	if !ok {
		return
	}
	name := parts[1]

	list, _, err := b.app.LoadList(ctx, planID)
	if err != nil {
		b.reply(chatID, "Couldn't find that plan.")
		return
	}

	if category, found := findItemCategory(list, name); found {
		if err := b.app.ToggleChecked(ctx, planID, category, name); err != nil {
			log.Printf("Toggle failed: %v", err)
			b.reply(chatID, "Couldn't update that item.")
			return
		}
		b.reply(chatID, fmt.Sprintf("Toggled %s.", name))
		return
	}
	b.reply(chatID, fmt.Sprintf("No item named %q on that list.", name))
}

// findItemCategory locates an item by name, checking categories in their
// fixed order.
func findItemCategory(list grocery.List, name string) (grocery.Category, bool) {
	lower := strings.ToLower(name)
	for _, category := range grocery.Categories {
		for _, item := range list.Items(category) {
			if strings.ToLower(item.Name) == lower {
				return category, true
			}
		}
	}
	return grocery.CategoryOther, false
}

func (b *Bot) parsePlanID(chatID int64, arg string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		b.reply(chatID, "That doesn't look like a plan ID.")
		return 0, false
	}
	return id, true
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
