package storage

import (
	"errors"
	"time"

	"github.com/jose-valero/gravbits/internal/domain"
)

var ErrNotFound = errors.New("not found")

const channelsTable = "gravbits_channels"

// channelRow es la fila de gravbits_channels tal como la escanea sqlx.
type channelRow struct {
	GuildID        string    `db:"guild_id"`
	ChannelID      string    `db:"channel_id"`
	IntervalHours  int       `db:"interval_hours"`
	DeleteAgeHours int       `db:"delete_age_hours"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r channelRow) toDomain() domain.ChannelPolicy {
	return domain.ChannelPolicy{
		GuildID:        r.GuildID,
		ChannelID:      r.ChannelID,
		IntervalHours:  r.IntervalHours,
		DeleteAgeHours: r.DeleteAgeHours,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toPolicies(rows []channelRow) []domain.ChannelPolicy {
	out := make([]domain.ChannelPolicy, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}
