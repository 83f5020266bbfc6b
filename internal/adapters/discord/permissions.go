package discord

import "github.com/bwmarrin/discordgo"

// requireCommandRole corta el comando si el miembro no tiene el rol configurado.
func (r *Router) requireCommandRole(ic *discordgo.InteractionCreate) bool {
	if ic.Member != nil {
		var roles []*discordgo.Role
		if g, err := r.s.State.Guild(ic.GuildID); err == nil && g != nil {
			roles = g.Roles
		}
		if len(roles) == 0 {
			roles, _ = r.s.GuildRoles(ic.GuildID)
		}
		if hasRoleNamed(roles, ic.Member.Roles, r.cmdRole) {
			return true
		}
	}
	_ = r.sendEphemeral(ic, "🔒 You don't have permission to use this command. You need the '"+r.cmdRole+"' role.")
	return false
}

func hasRoleNamed(guildRoles []*discordgo.Role, memberRoleIDs []string, name string) bool {
	if name == "" {
		return false
	}
	has := make(map[string]struct{}, len(memberRoleIDs))
	for _, rid := range memberRoleIDs {
		has[rid] = struct{}{}
	}
	for _, ro := range guildRoles {
		if ro == nil || ro.Name != name {
			continue
		}
		if _, ok := has[ro.ID]; ok {
			return true
		}
	}
	return false
}
