package discord

import (
	"context"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/jose-valero/gravbits/internal/app/service"
	"github.com/jose-valero/gravbits/internal/infra/metrics"
)

// Intents que necesita el bot: guilds para registrar comandos, presences y members para saludar.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildPresences | discordgo.IntentsGuildMembers

// Services: lo que el router despacha. Access y Greet son opcionales (nil = apagado).
type Services struct {
	Channels *service.ChannelService
	Sweeper  *service.SweepService
	Access   *service.AccessService
	Greet    *service.GreetService
}

type Router struct {
	s       *discordgo.Session
	svc     Services
	cmdRole string
	limiter *userLimiter
	metrics *metrics.Metrics
	log     zerolog.Logger

	mu         sync.Mutex
	registered map[string]bool // guildID -> comandos ya registrados
}

func NewRouter(s *discordgo.Session, svc Services, commandRole string, m *metrics.Metrics, logger zerolog.Logger) *Router {
	return &Router{
		s:          s,
		svc:        svc,
		cmdRole:    commandRole,
		limiter:    newUserLimiter(2 * time.Second),
		metrics:    m,
		log:        logger.With().Str("component", "discord").Logger(),
		registered: map[string]bool{},
	}
}

// registerGuild sobreescribe los comandos del guild una sola vez por proceso.
func (r *Router) registerGuild(guildID string) {
	r.mu.Lock()
	if r.registered[guildID] {
		r.mu.Unlock()
		return
	}
	r.registered[guildID] = true
	r.mu.Unlock()

	cmds := commandSet(r.svc.Access != nil)
	if _, err := r.s.ApplicationCommandBulkOverwrite(r.s.State.User.ID, guildID, cmds); err != nil {
		r.log.Error().Err(err).Str("guild", guildID).Msg("register commands")
		r.mu.Lock()
		delete(r.registered, guildID)
		r.mu.Unlock()
		return
	}
	r.log.Info().Str("guild", guildID).Int("commands", len(cmds)).Msg("commands registered")
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ev *discordgo.Ready) {
		r.log.Info().Str("user", ev.User.Username).Int("guilds", len(ev.Guilds)).Msg("ready")
		for _, g := range ev.Guilds {
			r.registerGuild(g.ID)
		}
		go r.reload()
	})

	r.s.AddHandler(func(s *discordgo.Session, gc *discordgo.GuildCreate) {
		r.registerGuild(gc.ID)
	})

	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		if ic.Type != discordgo.InteractionApplicationCommand {
			return
		}
		r.handleSlashCommand(ic)
	})

	if r.svc.Greet != nil {
		r.s.AddHandler(func(s *discordgo.Session, p *discordgo.PresenceUpdate) {
			r.handlePresence(p)
		})
	}
}

func (r *Router) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := r.svc.Channels.Reload(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("reload timers")
		return
	}
	r.log.Info().Int("channels", n).Msg("timers reloaded")
}

func (r *Router) handlePresence(p *discordgo.PresenceUpdate) {
	if p.Status != discordgo.StatusOnline || p.User == nil {
		return
	}
	if p.User.Bot {
		return
	}
	var member *discordgo.Member
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if m, err := r.s.State.Member(p.GuildID, p.User.ID); err == nil {
		member = m
	} else if m, err := r.s.GuildMember(p.GuildID, p.User.ID, discordgo.WithContext(ctx)); err == nil {
		member = m
	}
	if _, err := r.svc.Greet.Online(ctx, p.User.ID, displayName(member, p.User)); err != nil {
		r.log.Warn().Err(err).Str("user", p.User.ID).Msg("greet")
	}
}

// ---------- helpers ----------

func (r *Router) safeGetChannel(id string) (*discordgo.Channel, error) {
	if ch, err := r.s.State.Channel(id); err == nil && ch != nil {
		return ch, nil
	}
	ch, err := r.s.Channel(id)
	if err != nil {
		return nil, err
	}
	_ = r.s.State.ChannelAdd(ch) // ChannelAdd devuelve solo error
	return ch, nil
}

// channelLabel: **nombre** si se puede leer, si no la mención.
func (r *Router) channelLabel(id string) string {
	if ch, err := r.safeGetChannel(id); err == nil && ch.Name != "" {
		return "**" + ch.Name + "**"
	}
	return "<#" + id + ">"
}

func (r *Router) guildName(id string) string {
	if g, err := r.s.State.Guild(id); err == nil && g.Name != "" {
		return g.Name
	}
	if g, err := r.s.Guild(id); err == nil {
		return g.Name
	}
	return "this server"
}
