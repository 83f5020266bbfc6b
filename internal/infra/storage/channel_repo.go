package storage

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	pq "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jose-valero/gravbits/internal/domain"
)

var channelColumns = []string{
	"guild_id", "channel_id", "interval_hours", "delete_age_hours", "created_at", "updated_at",
}

// ChannelRepo persiste las policies de gravbits_channels.
type ChannelRepo struct {
	db      *sqlx.DB
	builder sq.StatementBuilderType
}

func NewChannelRepo(db *sqlx.DB) *ChannelRepo {
	return &ChannelRepo{db: db, builder: queryBuilder()}
}

func queryBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Upsert por (guild_id, channel_id); created_at se conserva.
func (r *ChannelRepo) Upsert(ctx context.Context, p domain.ChannelPolicy) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO gravbits_channels
  (guild_id, channel_id, interval_hours, delete_age_hours, created_at, updated_at)
VALUES
  ($1, $2, $3, $4, NOW(), NOW())
ON CONFLICT (guild_id, channel_id) DO UPDATE SET
  interval_hours   = EXCLUDED.interval_hours,
  delete_age_hours = EXCLUDED.delete_age_hours,
  updated_at       = NOW()
`, p.GuildID, p.ChannelID, p.IntervalHours, p.DeleteAgeHours)
	return errors.Wrapf(err, "upsert policy %s/%s", p.GuildID, p.ChannelID)
}

// Delete devuelve false si no había fila.
func (r *ChannelRepo) Delete(ctx context.Context, guildID, channelID string) (bool, error) {
	query, args, err := deleteQuery(r.builder, guildID, channelID).ToSql()
	if err != nil {
		return false, errors.Wrap(err, "failed to build delete policy query")
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "delete policy %s/%s", guildID, channelID)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Update aplica sólo los campos presentes y devuelve la policy resultante.
// ErrNotFound si el canal no está monitoreado.
func (r *ChannelRepo) Update(ctx context.Context, guildID, channelID string, u domain.ChannelPolicyUpdate) (domain.ChannelPolicy, error) {
	if u.Empty() {
		return r.Get(ctx, guildID, channelID)
	}
	query, args, err := updateQuery(r.builder, guildID, channelID, u).ToSql()
	if err != nil {
		return domain.ChannelPolicy{}, errors.Wrap(err, "failed to build update policy query")
	}
	var row channelRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ChannelPolicy{}, ErrNotFound
		}
		return domain.ChannelPolicy{}, errors.Wrapf(err, "update policy %s/%s", guildID, channelID)
	}
	return row.toDomain(), nil
}

func (r *ChannelRepo) Get(ctx context.Context, guildID, channelID string) (domain.ChannelPolicy, error) {
	query, args, err := r.builder.
		Select(channelColumns...).
		From(channelsTable).
		Where("guild_id = ? AND channel_id = ?", guildID, channelID).
		ToSql()
	if err != nil {
		return domain.ChannelPolicy{}, errors.Wrap(err, "failed to build get policy query")
	}
	var row channelRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ChannelPolicy{}, ErrNotFound
		}
		return domain.ChannelPolicy{}, errors.Wrapf(err, "get policy %s/%s", guildID, channelID)
	}
	return row.toDomain(), nil
}

func (r *ChannelRepo) ListAll(ctx context.Context) ([]domain.ChannelPolicy, error) {
	return r.list(ctx, listQuery(r.builder, ""))
}

func (r *ChannelRepo) ListByGuild(ctx context.Context, guildID string) ([]domain.ChannelPolicy, error) {
	return r.list(ctx, listQuery(r.builder, guildID))
}

func (r *ChannelRepo) list(ctx context.Context, q sq.SelectBuilder) ([]domain.ChannelPolicy, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build list policies query")
	}
	var rows []channelRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to select policies")
	}
	return toPolicies(rows), nil
}

// DeleteChannels borra las policies de los canales dados, de cualquier guild.
func (r *ChannelRepo) DeleteChannels(ctx context.Context, channelIDs []string) (int, error) {
	if len(channelIDs) == 0 {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `
DELETE FROM gravbits_channels
 WHERE channel_id = ANY($1)
`, pq.Array(channelIDs))
	if err != nil {
		return 0, errors.Wrap(err, "delete stale policies")
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func deleteQuery(b sq.StatementBuilderType, guildID, channelID string) sq.DeleteBuilder {
	return b.Delete(channelsTable).Where("guild_id = ? AND channel_id = ?", guildID, channelID)
}

func updateQuery(b sq.StatementBuilderType, guildID, channelID string, u domain.ChannelPolicyUpdate) sq.UpdateBuilder {
	q := b.Update(channelsTable)
	if u.IntervalHours != nil {
		q = q.Set("interval_hours", *u.IntervalHours)
	}
	if u.DeleteAgeHours != nil {
		q = q.Set("delete_age_hours", *u.DeleteAgeHours)
	}
	return q.
		Set("updated_at", sq.Expr("NOW()")).
		Where("guild_id = ? AND channel_id = ?", guildID, channelID).
		Suffix("RETURNING guild_id, channel_id, interval_hours, delete_age_hours, created_at, updated_at")
}

func listQuery(b sq.StatementBuilderType, guildID string) sq.SelectBuilder {
	q := b.Select(channelColumns...).From(channelsTable)
	if guildID != "" {
		q = q.Where(sq.Eq{"guild_id": guildID})
	}
	return q.OrderBy("guild_id", "created_at", "channel_id")
}
