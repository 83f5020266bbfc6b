package domain

import "time"

const (
	DefaultIntervalHours  = 1
	DefaultDeleteAgeHours = 1
)

// ChannelPolicy: configuración de limpieza de un canal monitoreado.
// Clave única (GuildID, ChannelID).
type ChannelPolicy struct {
	GuildID        string    `yaml:"guild_id"`
	ChannelID      string    `yaml:"channel_id"`
	IntervalHours  int       `yaml:"interval_hours"`
	DeleteAgeHours int       `yaml:"delete_age_hours"`
	CreatedAt      time.Time `yaml:"created_at,omitempty"`
	UpdatedAt      time.Time `yaml:"updated_at,omitempty"`
}

// NewChannelPolicy devuelve la policy por defecto (1h / 1h).
func NewChannelPolicy(guildID, channelID string) ChannelPolicy {
	return ChannelPolicy{
		GuildID:        guildID,
		ChannelID:      channelID,
		IntervalHours:  DefaultIntervalHours,
		DeleteAgeHours: DefaultDeleteAgeHours,
	}
}

// Para updates parciales desde /check-gravbits y /deltime-gravbits
type ChannelPolicyUpdate struct {
	IntervalHours  *int
	DeleteAgeHours *int
}

func (u ChannelPolicyUpdate) Empty() bool {
	return u.IntervalHours == nil && u.DeleteAgeHours == nil
}

// MessageRecord es lo mínimo que el barrido necesita de un mensaje.
type MessageRecord struct {
	ID        string
	CreatedAt time.Time
}

// SweepResult resume un barrido; no se persiste.
type SweepResult struct {
	RunID         string
	ChannelID     string
	DeletedCount  int
	BulkDeleted   int
	SingleDeleted int
	Pages         int
	CompletedAt   time.Time
}
