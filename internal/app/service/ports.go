package service

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"

	"github.com/jose-valero/gravbits/internal/domain"
)

// Lo implementa internal/adapters/discord.ChannelStore
type MessageStore interface {
	// Channel falla si el canal no existe o no es accesible.
	Channel(ctx context.Context, channelID string) (domain.GuildChannel, error)
	// Messages devuelve hasta limit mensajes anteriores a beforeID (vacío = desde el último),
	// del más nuevo al más viejo.
	Messages(ctx context.Context, channelID string, limit int, beforeID string) ([]domain.MessageRecord, error)
	BulkDelete(ctx context.Context, channelID string, ids []string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Lo implementa internal/adapters/discord.ChannelStore
type Notifier interface {
	Post(ctx context.Context, channelID, text string) (domain.MessageRecord, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Lo implementa internal/infra/storage.ChannelRepo
type PolicyRepo interface {
	Upsert(ctx context.Context, p domain.ChannelPolicy) error
	Delete(ctx context.Context, guildID, channelID string) (bool, error)
	Update(ctx context.Context, guildID, channelID string, u domain.ChannelPolicyUpdate) (domain.ChannelPolicy, error)
	ListAll(ctx context.Context) ([]domain.ChannelPolicy, error)
	ListByGuild(ctx context.Context, guildID string) ([]domain.ChannelPolicy, error)
}

// Lo implementa RetentionScheduler
type Armer interface {
	Arm(p domain.ChannelPolicy)
	Disarm(channelID string)
	ReloadAll(policies []domain.ChannelPolicy)
}

// Lo implementa internal/adapters/discord.GuildAccess
type GuildDirectory interface {
	GuildChannels(ctx context.Context, guildID string) ([]domain.GuildChannel, error)
}

// Lo implementa internal/adapters/discord.GuildAccess
type OverwriteEditor interface {
	// Allow aplica los permisos que corresponden al tipo de canal.
	Allow(ctx context.Context, ch domain.GuildChannel, t domain.OverwriteTarget) error
	Remove(ctx context.Context, channelID string, t domain.OverwriteTarget) error
}

// Poster publica un mensaje sin esperar nada a cambio (saludos).
type Poster interface {
	Post(ctx context.Context, channelID, text string) (domain.MessageRecord, error)
}

// Pacer espacia llamadas a la API; *rate.Limiter lo cumple.
type Pacer interface {
	Wait(ctx context.Context) error
}
