package discord

import (
	"context"
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	pkgerrors "github.com/pkg/errors"

	"github.com/jose-valero/gravbits/internal/domain"
)

// ChannelStore cumple service.MessageStore, service.Notifier y service.Poster
// sobre la REST API de discordgo.
type ChannelStore struct {
	s *discordgo.Session
}

func NewChannelStore(s *discordgo.Session) *ChannelStore { return &ChannelStore{s: s} }

func (c *ChannelStore) Channel(ctx context.Context, channelID string) (domain.GuildChannel, error) {
	ch, err := c.s.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.GuildChannel{}, pkgerrors.Wrapf(err, "channel %s", channelID)
	}
	return toGuildChannel(ch), nil
}

func (c *ChannelStore) Messages(ctx context.Context, channelID string, limit int, beforeID string) ([]domain.MessageRecord, error) {
	msgs, err := c.s.ChannelMessages(channelID, limit, beforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "messages of %s", channelID)
	}
	return toRecords(msgs), nil
}

// BulkDelete: discordgo manda un id suelto como delete simple y recorta a 100.
func (c *ChannelStore) BulkDelete(ctx context.Context, channelID string, ids []string) error {
	for len(ids) > 0 {
		n := min(len(ids), 100)
		if err := c.s.ChannelMessagesBulkDelete(channelID, ids[:n], discordgo.WithContext(ctx)); err != nil {
			return pkgerrors.Wrapf(err, "bulk delete in %s", channelID)
		}
		ids = ids[n:]
	}
	return nil
}

func (c *ChannelStore) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	err := c.s.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
	return pkgerrors.Wrapf(err, "delete %s/%s", channelID, messageID)
}

func (c *ChannelStore) Post(ctx context.Context, channelID, text string) (domain.MessageRecord, error) {
	m, err := c.s.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	if err != nil {
		return domain.MessageRecord{}, pkgerrors.Wrapf(err, "send to %s", channelID)
	}
	return domain.MessageRecord{ID: m.ID, CreatedAt: m.Timestamp}, nil
}

// IsNotFound: el recurso ya no existe (canal borrado, mensaje ya borrado).
func IsNotFound(err error) bool {
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) {
		return false
	}
	if rest.Response != nil && rest.Response.StatusCode == http.StatusNotFound {
		return true
	}
	return rest.Message != nil && (rest.Message.Code == discordgo.ErrCodeUnknownChannel ||
		rest.Message.Code == discordgo.ErrCodeUnknownMessage)
}

func toRecords(msgs []*discordgo.Message) []domain.MessageRecord {
	out := make([]domain.MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		out = append(out, domain.MessageRecord{ID: m.ID, CreatedAt: m.Timestamp})
	}
	return out
}

func toGuildChannel(ch *discordgo.Channel) domain.GuildChannel {
	return domain.GuildChannel{ID: ch.ID, Name: ch.Name, Kind: channelKind(ch.Type)}
}

func channelKind(t discordgo.ChannelType) domain.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return domain.ChannelKindText
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return domain.ChannelKindVoice
	case discordgo.ChannelTypeGuildForum:
		return domain.ChannelKindForum
	default:
		return domain.ChannelKindOther
	}
}
