// esta es la logica de InteractionApplicationCommand de discordgo
// aqui solo manejamos la interaccion del usuario y despachamos a los servicios
package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/gravbits/internal/app/service"
	"github.com/jose-valero/gravbits/internal/domain"
)

const (
	commandTimeout = 12 * time.Second
	// delete-gravbits y los comandos de acceso esperan pacing entre llamadas
	slowCommandTimeout = 10 * time.Minute
)

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	uid := invokerID(ic)
	log := r.log.With().Str("cmd", cmd.Name).Str("by", uid).Str("guild", ic.GuildID).Logger()
	log.Info().Msg("slash command")
	r.metrics.RecordCommand(cmd.Name)

	responded := false
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("panic in slash command")
			msg := "❌ An error occurred while processing your command. Please try again."
			if responded {
				r.replyEphemeral(ic, msg)
			} else {
				_ = r.sendEphemeral(ic, msg)
			}
		}
	}()

	if ic.GuildID == "" {
		_ = r.sendEphemeral(ic, "This command only works inside a server.")
		return
	}
	if !r.requireCommandRole(ic) {
		return
	}
	if ok, wait := r.limiter.Allow(uid); !ok {
		_ = r.sendEphemeral(ic, fmt.Sprintf("⏳ Slow down, try again in %s.", wait.Round(100*time.Millisecond)))
		return
	}

	_ = r.deferEphemeral(ic)
	responded = true

	timeout := commandTimeout
	switch cmd.Name {
	case "delete-gravbits", "add-user", "remove-user", "remove-user-all":
		timeout = slowCommandTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer step(log, "cmd."+cmd.Name)()

	r.replyEphemeral(ic, r.dispatch(ctx, ic, cmd.Name))
}

// dispatch devuelve el texto de la respuesta.
func (r *Router) dispatch(ctx context.Context, ic *discordgo.InteractionCreate, name string) string {
	guildID, channelID := ic.GuildID, ic.ChannelID

	switch name {
	//--> canal actual a la lista de limpieza, con defaults
	case "add-gravbits":
		p, err := r.svc.Channels.Add(ctx, guildID, channelID)
		if err != nil {
			r.log.Error().Err(err).Str("channel", channelID).Msg("add channel")
			return "Failed to add channel. Please try again."
		}
		return fmt.Sprintf("Channel %s added for monitoring. Messages will be checked every %d hour and deleted if older than %d hour.",
			r.channelLabel(channelID), p.IntervalHours, p.DeleteAgeHours)

	case "remove-gravbits":
		existed, err := r.svc.Channels.Remove(ctx, guildID, channelID)
		if err != nil {
			r.log.Error().Err(err).Str("channel", channelID).Msg("remove channel")
			return "Failed to remove channel. Please try again."
		}
		if !existed {
			return fmt.Sprintf("Channel %s was not being monitored.", r.channelLabel(channelID))
		}
		return fmt.Sprintf("Channel %s removed from monitoring.", r.channelLabel(channelID))

	case "check-gravbits":
		hours := intOr(ic, "interval", 1)
		p, err := r.svc.Channels.SetInterval(ctx, guildID, channelID, hours)
		switch {
		case errors.Is(err, service.ErrInvalidHours):
			return "Interval must be at least 1 hour."
		case errors.Is(err, service.ErrNotMonitored):
			return "Failed to update interval. Make sure this channel is being monitored first with /add-gravbits."
		case err != nil:
			r.log.Error().Err(err).Str("channel", channelID).Msg("set interval")
			return "Failed to update interval. Please try again."
		}
		return fmt.Sprintf("Scan interval updated to %d hour(s) for channel %s.", p.IntervalHours, r.channelLabel(channelID))

	case "deltime-gravbits":
		hours := intOr(ic, "delete_age", 1)
		p, err := r.svc.Channels.SetDeleteAge(ctx, guildID, channelID, hours)
		switch {
		case errors.Is(err, service.ErrInvalidHours):
			return "Delete age must be at least 1 hour."
		case errors.Is(err, service.ErrNotMonitored):
			return "Failed to update delete age. Make sure this channel is being monitored first with /add-gravbits."
		case err != nil:
			r.log.Error().Err(err).Str("channel", channelID).Msg("set delete age")
			return "Failed to update delete age. Please try again."
		}
		return fmt.Sprintf("Delete age updated to %d hour(s) for channel %s.", p.DeleteAgeHours, r.channelLabel(channelID))

	//--> borrado manual de los últimos N mensajes, sin filtro de edad
	case "delete-gravbits":
		count := intOr(ic, "count", 100)
		n, err := r.svc.Sweeper.Purge(ctx, channelID, count)
		switch {
		case errors.Is(err, service.ErrInvalidCount):
			return "Count must be between 1 and 100."
		case err != nil:
			r.log.Error().Err(err).Str("channel", channelID).Msg("purge")
			return "Failed to delete messages. I might be missing permissions or the messages are too old."
		case n == 0:
			return "No messages found to delete."
		}
		return fmt.Sprintf("Successfully deleted %d message(s).", n)

	case "scan":
		policies, err := r.svc.Channels.List(ctx, guildID)
		if err != nil {
			r.log.Error().Err(err).Msg("list channels")
			return "Failed to list channels. Please try again."
		}
		lines := make([]string, 0, len(policies))
		for _, p := range policies {
			name := ""
			if ch, err := r.safeGetChannel(p.ChannelID); err == nil {
				name = ch.Name
			}
			lines = append(lines, scanLine(p, name))
		}
		return formatScan(r.guildName(guildID), lines)

	case "add-user", "remove-user", "remove-user-all":
		if r.svc.Access == nil {
			return "Access commands are disabled."
		}
		return r.dispatchAccess(ctx, ic, name)
	}
	return "Unknown command."
}

func (r *Router) dispatchAccess(ctx context.Context, ic *discordgo.InteractionCreate, name string) string {
	user, _ := optID(ic, "usr")
	role, _ := optID(ic, "role")
	targets := targetsFrom(user, role)

	switch name {
	case "add-user":
		rep, err := r.svc.Access.Grant(ctx, ic.GuildID, targets...)
		return accessResult("Added", targets, rep, err)

	case "remove-user":
		channelID, ok := optID(ic, "channel")
		if !ok {
			return "Please provide a valid channel."
		}
		rep, err := r.svc.Access.Revoke(ctx, channelID, targets...)
		if err != nil {
			return accessError(err)
		}
		if !rep.OK() {
			return "There was an error while trying to remove the user or role from the channel."
		}
		return fmt.Sprintf("Removed %s from channel <#%s>.", describeTargets(targets), channelID)

	default: // remove-user-all
		rep, err := r.svc.Access.RevokeAll(ctx, ic.GuildID, targets...)
		return accessResult("Removed", targets, rep, err)
	}
}

// accessResult: un timeout igual reporta lo que alcanzó a aplicarse.
func accessResult(action string, targets []domain.OverwriteTarget, rep domain.AccessReport, err error) string {
	switch {
	case err == nil:
		return formatAccessReport(action, targets, rep)
	case errors.Is(err, context.DeadlineExceeded):
		return formatAccessReport(action, targets, rep) + "\n⏱️ Stopped before reaching every channel."
	}
	return accessError(err)
}

func accessError(err error) string {
	if errors.Is(err, service.ErrNoTarget) {
		return "Pass a user or a role."
	}
	return "There was an error while updating channel permissions: " + err.Error()
}

func intOr(ic *discordgo.InteractionCreate, name string, def int) int {
	if v, ok := optInt(ic, name); ok {
		return v
	}
	return def
}
