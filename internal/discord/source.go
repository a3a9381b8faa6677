package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Yuridiegotech/CabalOnline/internal/domain"
	"github.com/Yuridiegotech/CabalOnline/internal/logger"
)

// messageLister is the part of *discordgo.Session the source uses
type messageLister interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// Source reads recent messages from one channel through the Discord REST API.
// No gateway connection is opened.
type Source struct {
	api       messageLister
	channelID string
	limit     int
}

// NewSource creates a REST-only Discord session for the bot token
func NewSource(token, channelID string, limit int) (*Source, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Client = &http.Client{Timeout: RequestTimeout}

	return newSource(s, channelID, limit), nil
}

func newSource(api messageLister, channelID string, limit int) *Source {
	if limit <= 0 || limit > MaxFetchLimit {
		limit = MaxFetchLimit
	}
	return &Source{api: api, channelID: channelID, limit: limit}
}

// Fetch returns the most recent messages of the channel, oldest first
func (s *Source) Fetch(ctx context.Context) ([]domain.Message, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFetchingMessages, "channel_id", s.channelID, "limit", s.limit)

	msgs, err := s.api.ChannelMessages(s.channelID, s.limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: channel %s: %w", domain.ErrFetchFailed, s.channelID, err)
	}

	log.Info(LogMsgMessagesFetched, "count", len(msgs))
	return ToMessages(msgs), nil
}

// ToMessages converts Discord messages into domain messages, reversing the
// API's newest-first order.
func ToMessages(msgs []*discordgo.Message) []domain.Message {
	out := make([]domain.Message, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m == nil {
			continue
		}
		out = append(out, toMessage(m))
	}
	return out
}

func toMessage(m *discordgo.Message) domain.Message {
	msg := domain.Message{ID: m.ID}
	if !m.Timestamp.IsZero() {
		msg.Timestamp = m.Timestamp.UTC().Format(time.RFC3339Nano)
	}
	for _, e := range m.Embeds {
		if e == nil {
			continue
		}
		msg.Embeds = append(msg.Embeds, domain.Embed{Title: e.Title, Description: e.Description})
	}
	return msg
}
