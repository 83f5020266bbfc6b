package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) sendEphemeral(ic *discordgo.InteractionCreate, msg string) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: clampMessage(msg),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("sendEphemeral")
	}
	return err
}

// Defer efímero (para trabajos >3s)
func (r *Router) deferEphemeral(ic *discordgo.InteractionCreate) error {
	err := r.s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		r.log.Warn().Err(err).Msg("deferEphemeral")
	}
	return err
}

func (r *Router) replyEphemeral(ic *discordgo.InteractionCreate, content string) {
	_, err := r.s.FollowupMessageCreate(ic.Interaction, true, &discordgo.WebhookParams{
		Content:         clampMessage(content),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err == nil {
		return
	}
	// Fallback sólo si todavía no hay respuesta (webhook desconocido)
	var reqErr *discordgo.RESTError
	if errors.As(err, &reqErr) && reqErr.Message != nil && reqErr.Message.Code == discordgo.ErrCodeUnknownWebhook {
		_ = r.sendEphemeral(ic, content)
		return
	}
	r.log.Warn().Err(err).Msg("replyEphemeral")
}
