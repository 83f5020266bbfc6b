package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"

	"github.com/jose-valero/gravbits/internal/domain"
)

// Permisos que da add-user según el tipo de canal.
const (
	textAllow  = discordgo.PermissionViewChannel | discordgo.PermissionSendMessages
	voiceAllow = discordgo.PermissionViewChannel | discordgo.PermissionVoiceConnect | discordgo.PermissionVoiceSpeak
	forumAllow = discordgo.PermissionViewChannel | discordgo.PermissionSendMessagesInThreads
)

// GuildAccess cumple service.GuildDirectory y service.OverwriteEditor.
type GuildAccess struct {
	s *discordgo.Session
}

func NewGuildAccess(s *discordgo.Session) *GuildAccess { return &GuildAccess{s: s} }

func (g *GuildAccess) GuildChannels(ctx context.Context, guildID string) ([]domain.GuildChannel, error) {
	chans, err := g.s.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "guild channels %s", guildID)
	}
	out := make([]domain.GuildChannel, 0, len(chans))
	for _, ch := range chans {
		out = append(out, toGuildChannel(ch))
	}
	return out, nil
}

func (g *GuildAccess) Allow(ctx context.Context, ch domain.GuildChannel, t domain.OverwriteTarget) error {
	allow, ok := allowFor(ch.Kind)
	if !ok {
		return errors.Errorf("channel %s: no permissions for kind %s", ch.ID, ch.Kind)
	}
	err := g.s.ChannelPermissionSet(ch.ID, t.ID, overwriteType(t.Kind), allow, 0, discordgo.WithContext(ctx))
	return errors.Wrapf(err, "allow %s on %s", t.ID, ch.ID)
}

func (g *GuildAccess) Remove(ctx context.Context, channelID string, t domain.OverwriteTarget) error {
	err := g.s.ChannelPermissionDelete(channelID, t.ID, discordgo.WithContext(ctx))
	if IsNotFound(err) {
		// no había overwrite
		return nil
	}
	return errors.Wrapf(err, "remove %s from %s", t.ID, channelID)
}

func allowFor(k domain.ChannelKind) (int64, bool) {
	switch k {
	case domain.ChannelKindText:
		return textAllow, true
	case domain.ChannelKindVoice:
		return voiceAllow, true
	case domain.ChannelKindForum:
		return forumAllow, true
	}
	return 0, false
}

func overwriteType(k domain.TargetKind) discordgo.PermissionOverwriteType {
	if k == domain.TargetRole {
		return discordgo.PermissionOverwriteTypeRole
	}
	return discordgo.PermissionOverwriteTypeMember
}
