package discord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CoinBot_Go/internal/admin"
	"github.com/osse101/CoinBot_Go/internal/concurrency"
	"github.com/osse101/CoinBot_Go/internal/cooldown"
	"github.com/osse101/CoinBot_Go/internal/database/memory"
	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/engine"
	"github.com/osse101/CoinBot_Go/internal/ledger"
	"github.com/osse101/CoinBot_Go/internal/random"
	"github.com/osse101/CoinBot_Go/internal/shop"
)

const channel = "chan-1"

// fakeMessenger records everything the bot sends
type fakeMessenger struct {
	mu        sync.Mutex
	texts     []string
	embeds    []*discordgo.MessageEmbed
	reactions []string
	sendErr   error
}

func (f *fakeMessenger) ChannelMessageSend(_ string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.texts = append(f.texts, content)
	return &discordgo.Message{ID: "text"}, nil
}

func (f *fakeMessenger) ChannelMessageSendEmbed(_ string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{ID: "shop-msg"}, nil
}

func (f *fakeMessenger) MessageReactionAdd(_, _ string, emojiID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reactions = append(f.reactions, emojiID)
	return nil
}

func (f *fakeMessenger) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

func (f *fakeMessenger) reactionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reactions)
}

func newTestBot(t *testing.T, timeout time.Duration) (*Bot, *memory.Store) {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })

	ledgerSvc := ledger.NewService(store, concurrency.NewLockManager(), cooldown.NewChecker(cooldown.Config{}), random.NewScripted().WithFlips(domain.Heads), nil)
	flow := shop.NewFlow(shop.Config{Timeout: timeout}, ledgerSvc, nil)
	eng := engine.New(ledgerSvc, flow, admin.NewService(ledgerSvc, nil, nil), random.NewScripted())
	return newBot(nil, eng), store
}

func TestHandleMessage_TextReply(t *testing.T) {
	bot, store := newTestBot(t, time.Second)
	acct := domain.NewAccount(author)
	acct.Balance = 300
	require.NoError(t, store.PutAccount(context.Background(), acct))
	out := &fakeMessenger{}

	bot.handleMessage(out, author, channel, "!bet 100 heads")
	assert.Equal(t, "You won! You gained 100 :coin:. Your new balance is 400 :coin:", out.lastText())

	bot.handleMessage(out, author, channel, "!roll_dice many 3")
	assert.Equal(t, UsageRollDice, out.lastText())

	bot.handleMessage(out, author, channel, "good morning")
	assert.Len(t, out.texts, 2)
}

func TestHandleMessage_StorageFailure(t *testing.T) {
	bot, store := newTestBot(t, time.Second)
	require.NoError(t, store.Close())
	out := &fakeMessenger{}

	bot.handleMessage(out, author, channel, "coins")
	assert.Equal(t, MsgGenericError, out.lastText())
}

func TestHandleMessage_ShopSelection(t *testing.T) {
	bot, store := newTestBot(t, 2*time.Second)
	acct := domain.NewAccount(author)
	acct.Balance = 1000
	require.NoError(t, store.PutAccount(context.Background(), acct))
	out := &fakeMessenger{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		bot.handleMessage(out, author, channel, "eg shop")
	}()

	require.Eventually(t, func() bool { return out.reactionCount() == 9 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.SelectionRejected, bot.handleReaction(author, "other-msg", "7️⃣"))
	assert.Equal(t, domain.SelectionIgnored, bot.handleReaction("999", "shop-msg", "7️⃣"))
	assert.Equal(t, domain.SelectionAccepted, bot.handleReaction(author, "shop-msg", "7️⃣"))
	<-done

	require.Len(t, out.embeds, 1)
	assert.Equal(t, "1. 🚗 Car", out.embeds[0].Fields[0].Name)
	assert.Equal(t, "Price: 5,000 :coin:", out.embeds[0].Fields[0].Value)
	assert.Equal(t, "<@555>, Your inventory:\n🍔 Burger: 1", out.lastText())

	_, tracked := bot.lookup("shop-msg")
	assert.False(t, tracked)
}

func TestHandleMessage_ShopTimeout(t *testing.T) {
	bot, _ := newTestBot(t, 50*time.Millisecond)
	out := &fakeMessenger{}

	bot.handleMessage(out, author, channel, "eg shop")

	assert.Equal(t, engine.MsgPurchaseTimeout, out.lastText())
}

func TestStopAbandonsPendingShop(t *testing.T) {
	bot, _ := newTestBot(t, 10*time.Second)
	out := &fakeMessenger{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		bot.handleMessage(out, author, channel, "eg shop")
	}()
	require.Eventually(t, func() bool { return out.reactionCount() == 9 }, time.Second, 5*time.Millisecond)

	require.NoError(t, bot.Stop())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shop did not stop on cancel")
	}
	assert.Empty(t, out.texts)

	// commands arriving after Stop are dropped
	bot.handleMessage(out, author, channel, "coins")
	assert.Empty(t, out.texts)
}

func TestSendError_Logged(t *testing.T) {
	bot, _ := newTestBot(t, time.Second)
	out := &fakeMessenger{sendErr: errors.New("missing access")}

	assert.NotPanics(t, func() { bot.handleMessage(out, author, channel, "eg help") })
}

func TestKeycap(t *testing.T) {
	for i := 1; i <= 9; i++ {
		emoji, ok := keycap(i)
		require.True(t, ok)
		index, ok := keycapIndex(emoji)
		require.True(t, ok)
		assert.Equal(t, i, index)
	}

	index, ok := keycapIndex("3⃣")
	assert.True(t, ok)
	assert.Equal(t, 3, index)

	_, ok = keycap(10)
	assert.False(t, ok)
	_, ok = keycapIndex("👍")
	assert.False(t, ok)
	_, ok = keycapIndex("0️⃣")
	assert.False(t, ok)
}
