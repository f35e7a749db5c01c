package presence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/marcus-crane/steammini/events"
	"github.com/marcus-crane/steammini/steam"
)

const refreshTimeout = 30 * time.Second

type UserFetcher interface {
	GetUser(ctx context.Context, steamID string) (steam.SteamUser, error)
}

type Notifier interface {
	Notify(title, message, url string) error
}

// Tracker keeps the latest Presence for one Steam user and tells subscribers
// when it changes.
type Tracker struct {
	steamID   string
	client    UserFetcher
	publisher events.Publisher
	notifier  Notifier
	now       func() time.Time

	m     sync.RWMutex
	state Presence
}

// NewTracker watches steamID. publisher and notifier may be nil.
func NewTracker(steamID string, client UserFetcher, publisher events.Publisher, notifier Notifier) *Tracker {
	return &Tracker{
		steamID:   steamID,
		client:    client,
		publisher: publisher,
		notifier:  notifier,
		now:       time.Now,
	}
}

func (t *Tracker) Current() Presence {
	t.m.RLock()
	defer t.m.RUnlock()
	return t.state
}

// Poll fetches the user once. A failed fetch leaves the current state alone.
func (t *Tracker) Poll(ctx context.Context) error {
	user, err := t.client.GetUser(ctx, t.steamID)
	if err != nil {
		return err
	}

	next := FromUser(user)

	t.m.Lock()
	prev := t.state
	if prev.ID == next.ID {
		t.m.Unlock()
		return nil
	}
	next.UpdatedAt = t.now().UTC()
	t.state = next
	t.m.Unlock()

	slog.Debug("Steam presence changed",
		slog.String("steam_id", t.steamID),
		slog.String("old_status", string(prev.Status)),
		slog.String("new_status", string(next.Status)),
	)

	if t.publisher != nil {
		if err := events.PublishJSON(t.publisher, events.PresenceStream, "presence", next); err != nil {
			slog.Error("Failed to publish presence update", slog.String("error", err.Error()))
		}
	}

	// The first poll after boot only establishes a baseline
	startedGame := prev.ID != "" && next.Status == StatusPlaying && next.GameID != prev.GameID
	if t.notifier != nil && startedGame {
		title := fmt.Sprintf("%s started playing", next.PersonaName)
		game := next.GameName
		if game == "" {
			game = fmt.Sprintf("App %s", next.GameID)
		}
		if err := t.notifier.Notify(title, game, next.StoreURL); err != nil {
			slog.Error("Failed to send presence notification",
				slog.String("error", err.Error()),
				slog.String("game_id", next.GameID),
			)
		}
	}
	return nil
}

// Refresh is Poll for the scheduler, which has nowhere to return errors to.
func (t *Tracker) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := t.Poll(ctx); err != nil {
		slog.Error("Failed to refresh Steam presence",
			slog.String("error", err.Error()),
			slog.String("steam_id", t.steamID),
		)
	}
}
