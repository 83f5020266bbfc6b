package discord

import "github.com/bwmarrin/discordgo"

var minOne = 1.0

// RetentionCommands: limpieza periódica de canales.
var RetentionCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "add-gravbits",
		Description: "Add this channel for message deletion.",
	},
	{
		Name:        "remove-gravbits",
		Description: "Remove this channel from the deletion list.",
	},
	{
		Name:        "check-gravbits",
		Description: "Set the interval for message deletion (hours).",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "interval",
			Description: "Interval in hours",
			MinValue:    &minOne,
		}},
	},
	{
		Name:        "deltime-gravbits",
		Description: "Set the time for messages to be deleted (older than N hours).",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "delete_age",
			Description: "Delete messages older than N hours",
			MinValue:    &minOne,
		}},
	},
	{
		Name:        "delete-gravbits",
		Description: "Delete a specific number of messages from the current channel.",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "count",
			Description: "Number of messages to delete (1-100)",
			MinValue:    &minOne,
			MaxValue:    100,
		}},
	},
	{
		Name:        "scan",
		Description: "Show all channels being monitored in this guild.",
	},
}

// AccessCommands: permission overwrites para miembros/roles.
var AccessCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "add-user",
		Description: "Add a user or role to all channels in the server",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usr", Description: "The user to add", Required: true},
			{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "The role to add"},
		},
	},
	{
		Name:        "remove-user",
		Description: "Remove a user or role from a specific channel",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "The channel to remove from", Required: true},
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usr", Description: "The user to remove"},
			{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "The role to remove"},
		},
	},
	{
		Name:        "remove-user-all",
		Description: "Remove a user or role from all channels in the server",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: "usr", Description: "The user to remove", Required: true},
			{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "The role to remove"},
		},
	},
}

// commandSet: lo que se registra en cada guild.
func commandSet(withAccess bool) []*discordgo.ApplicationCommand {
	out := append([]*discordgo.ApplicationCommand{}, RetentionCommands...)
	if withAccess {
		out = append(out, AccessCommands...)
	}
	return out
}
