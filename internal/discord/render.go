package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/CoinBot_Go/internal/domain"
	"github.com/osse101/CoinBot_Go/internal/engine"
)

var printer = message.NewPrinter(language.English)

// shopEmbed renders a catalog as one field per entry, numbered to match the
// keycap reactions
func shopEmbed(p *domain.CatalogPresentation) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(p.Entries))
	for _, entry := range p.Entries {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf(ShopFieldName, entry.Index, entry.Label),
			Value:  printer.Sprintf(ShopFieldValue, entry.Price),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       engine.MsgShopTitle,
		Description: engine.MsgShopDescription,
		Color:       ShopEmbedColor,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: ShopFooter,
		},
	}
}

// keycap returns the reaction emoji for a 1-based index
func keycap(index int) (string, bool) {
	if index < 1 || index > maxKeycapSelector {
		return "", false
	}
	return strconv.Itoa(index) + keycapSuffix, true
}

// keycapIndex maps a keycap reaction back to its index. Clients may drop
// the variation selector, so both spellings are accepted.
func keycapIndex(emoji string) (int, bool) {
	digits := strings.TrimSuffix(strings.ReplaceAll(emoji, "\uFE0F", ""), "\u20E3")
	if len(digits) != 1 || digits == emoji {
		return 0, false
	}
	index, err := strconv.Atoi(digits)
	if err != nil || index < 1 || index > maxKeycapSelector {
		return 0, false
	}
	return index, true
}
