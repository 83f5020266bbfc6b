package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/gravbits/internal/domain"
)

func findOpt(ic *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if ic.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	for _, o := range ic.ApplicationCommandData().Options {
		if o.Name == name {
			return o
		}
		// subcommand
		if o.Type == discordgo.ApplicationCommandOptionSubCommand {
			for _, so := range o.Options {
				if so.Name == name {
					return so
				}
			}
		}
	}
	return nil
}

func optInt(ic *discordgo.InteractionCreate, name string) (int, bool) {
	o := findOpt(ic, name)
	if o == nil || o.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return int(o.IntValue()), true
}

// optID devuelve el snowflake de una opción user/role/channel.
func optID(ic *discordgo.InteractionCreate, name string) (string, bool) {
	o := findOpt(ic, name)
	if o == nil {
		return "", false
	}
	switch o.Type {
	case discordgo.ApplicationCommandOptionUser,
		discordgo.ApplicationCommandOptionRole,
		discordgo.ApplicationCommandOptionChannel,
		discordgo.ApplicationCommandOptionMentionable:
		id, ok := o.Value.(string)
		return id, ok && id != ""
	}
	return "", false
}

func invokerID(ic *discordgo.InteractionCreate) string {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User.ID
	}
	if ic.User != nil {
		return ic.User.ID
	}
	return ""
}

func targetsFrom(userID, roleID string) []domain.OverwriteTarget {
	var out []domain.OverwriteTarget
	if userID != "" {
		out = append(out, domain.Member(userID))
	}
	if roleID != "" {
		out = append(out, domain.Role(roleID))
	}
	return out
}

func describeTargets(ts []domain.OverwriteTarget) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		if t.Kind == domain.TargetRole {
			parts = append(parts, "role <@&"+t.ID+">")
		} else {
			parts = append(parts, "user <@"+t.ID+">")
		}
	}
	return strings.Join(parts, " and ")
}

func formatAccessReport(action string, ts []domain.OverwriteTarget, rep domain.AccessReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %d channel(s) updated", action, describeTargets(ts), rep.Applied)
	if rep.Skipped > 0 {
		fmt.Fprintf(&b, ", %d skipped", rep.Skipped)
	}
	b.WriteString(".")
	if !rep.OK() {
		mentions := make([]string, 0, len(rep.Failed))
		for _, id := range rep.Failed {
			mentions = append(mentions, "<#"+id+">")
		}
		fmt.Fprintf(&b, "\n⚠️ Failed on %d channel(s): %s", len(rep.Failed), strings.Join(mentions, ", "))
	}
	return b.String()
}

// scanLine: una línea de /scan; name vacío = canal no encontrado.
func scanLine(p domain.ChannelPolicy, name string) string {
	if name == "" {
		return fmt.Sprintf("• Channel ID %s (not found)", p.ChannelID)
	}
	return fmt.Sprintf("• #%s: Checked every %d hour(s), deleting messages older than %d hour(s)",
		name, p.IntervalHours, p.DeleteAgeHours)
}

func formatScan(guildName string, lines []string) string {
	if len(lines) == 0 {
		return "No channels are currently being monitored in this server."
	}
	return fmt.Sprintf("**Monitored Channels in %s:**\n%s", guildName, strings.Join(lines, "\n"))
}

// displayName: nick del guild, después global name, después username.
func displayName(m *discordgo.Member, u *discordgo.User) string {
	if m != nil && m.Nick != "" {
		return m.Nick
	}
	if m != nil && m.User != nil {
		u = m.User
	}
	if u == nil {
		return "there"
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// Discord rechaza mensajes de más de 2000 caracteres.
const (
	maxMessageLen   = 2000
	truncatedSuffix = "\n… (truncated)"
)

// clampMessage recorta content al límite de Discord, cortando en el último salto de línea.
func clampMessage(content string) string {
	if utf8.RuneCountInString(content) <= maxMessageLen {
		return content
	}
	runes := []rune(content)
	cut := string(runes[:maxMessageLen-utf8.RuneCountInString(truncatedSuffix)])
	if i := strings.LastIndexByte(cut, '\n'); i > 0 {
		cut = cut[:i]
	}
	return cut + truncatedSuffix
}
