package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/engine"
	"github.com/osse101/CoinBot_Go/internal/logger"
)

// messenger is the slice of *discordgo.Session the bot writes through
type messenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
}

// Bot represents the Discord bot
type Bot struct {
	Session *discordgo.Session
	engine  engine.Engine

	// catalogs maps a rendered shop message id to its catalog token
	mu       sync.Mutex
	catalogs map[string]string

	// lifeMu orders wg.Add against Stop so no command starts after Wait
	lifeMu  sync.Mutex
	stopped bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// Config holds the bot configuration
type Config struct {
	Token string
}

// New creates a new Discord bot
func New(cfg Config, eng engine.Engine) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSession, err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsDirectMessageReactions |
		discordgo.IntentsMessageContent

	return newBot(s, eng), nil
}

func newBot(s *discordgo.Session, eng engine.Engine) *Bot {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bot{
		Session:  s,
		engine:   eng,
		catalogs: make(map[string]string),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.messageReactionAdd)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgOpenSession, err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop abandons pending shop selections, waits for in-flight commands and
// closes the gateway connection
func (b *Bot) Stop() error {
	b.lifeMu.Lock()
	b.stopped = true
	b.cancel()
	b.lifeMu.Unlock()

	b.wg.Wait()
	if b.Session == nil {
		return nil
	}
	return b.Session.Close()
}

// begin registers an in-flight command, failing once Stop has been called
func (b *Bot) begin() bool {
	b.lifeMu.Lock()
	defer b.lifeMu.Unlock()
	if b.stopped {
		return false
	}
	b.wg.Add(1)
	return true
}

func (b *Bot) ready(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)
}

func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	b.handleMessage(s, m.Author.ID, m.ChannelID, m.Content)
}

func (b *Bot) messageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	b.handleReaction(r.UserID, r.MessageID, r.Emoji.Name)
}

// handleMessage runs one chat message end to end. For a shop it renders the
// catalog and stays until the selection resolves.
func (b *Bot) handleMessage(out messenger, authorID, channelID, content string) {
	intent, err := ParseCommand(authorID, content)
	if errors.Is(err, ErrNotCommand) || !b.begin() {
		return
	}
	defer b.wg.Done()
	ctx := logger.EnsureRequestID(b.ctx)
	log := logger.FromContext(ctx)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		b.send(ctx, out, channelID, usageErr.Usage)
		return
	}

	reply, err := b.engine.Handle(ctx, intent)
	if err != nil {
		log.Error(LogMsgHandleFailed, "intent", intent.Name(), "error", err)
		b.send(ctx, out, channelID, MsgGenericError)
		return
	}

	if !reply.HasCatalog() {
		b.send(ctx, out, channelID, reply.Text)
		return
	}
	b.runShop(ctx, out, channelID, reply.Catalog)
}

func (b *Bot) runShop(ctx context.Context, out messenger, channelID string, p *domain.CatalogPresentation) {
	log := logger.FromContext(ctx)

	msg, err := out.ChannelMessageSendEmbed(channelID, shopEmbed(p))
	if err != nil {
		log.Error(LogMsgSendFailed, "channel", channelID, "error", err)
		return
	}

	b.track(msg.ID, p.Token)
	defer b.untrack(msg.ID)

	for _, entry := range p.Entries {
		emoji, ok := keycap(entry.Index)
		if !ok {
			break
		}
		if err := out.MessageReactionAdd(channelID, msg.ID, emoji); err != nil {
			log.Warn(LogMsgReactionFailed, "message", msg.ID, "error", err)
		}
	}

	reply, err := b.engine.AwaitPurchase(ctx, p.Token)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error(LogMsgHandleFailed, "intent", domain.IntentShop, "error", err)
			b.send(ctx, out, channelID, MsgGenericError)
		}
		return
	}
	b.send(ctx, out, channelID, reply.Text)
}

func (b *Bot) handleReaction(userID, messageID, emojiName string) domain.SelectionStatus {
	index, ok := keycapIndex(emojiName)
	if !ok {
		return domain.SelectionIgnored
	}
	token, ok := b.lookup(messageID)
	if !ok {
		return domain.SelectionRejected
	}

	status := b.engine.Select(domain.Selection{UserID: userID, CatalogToken: token, Index: index})
	slog.Debug(LogMsgSelectionReceived, "user", userID, "index", index, "status", status)
	return status
}

func (b *Bot) send(ctx context.Context, out messenger, channelID, text string) {
	if text == "" {
		return
	}
	if _, err := out.ChannelMessageSend(channelID, text); err != nil {
		logger.FromContext(ctx).Error(LogMsgSendFailed, "channel", channelID, "error", err)
	}
}

func (b *Bot) track(messageID, token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.catalogs[messageID] = token
}

func (b *Bot) untrack(messageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.catalogs, messageID)
}

func (b *Bot) lookup(messageID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	token, ok := b.catalogs[messageID]
	return token, ok
}
