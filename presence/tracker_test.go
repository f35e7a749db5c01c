package presence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steammini/events"
	"github.com/marcus-crane/steammini/steam"
)

const testSteamID = "76561197999386785"

type stubFetcher struct {
	m     sync.Mutex
	user  steam.SteamUser
	err   error
	calls int
}

func (s *stubFetcher) GetUser(_ context.Context, steamID string) (steam.SteamUser, error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.calls++
	if s.err != nil {
		return steam.SteamUser{}, s.err
	}
	u := s.user
	u.SteamID = steamID
	return u, nil
}

func (s *stubFetcher) set(user steam.SteamUser, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.user = user
	s.err = err
}

type recorder struct {
	events []*sse.Event
}

func (r *recorder) Publish(id string, event *sse.Event) {
	if id == events.PresenceStream {
		r.events = append(r.events, event)
	}
}

type notification struct {
	title, message, url string
}

type stubNotifier struct {
	sent []notification
	err  error
}

func (n *stubNotifier) Notify(title, message, url string) error {
	n.sent = append(n.sent, notification{title, message, url})
	return n.err
}

func newTestTracker() (*Tracker, *stubFetcher, *recorder, *stubNotifier) {
	fetcher := &stubFetcher{}
	rec := &recorder{}
	notifier := &stubNotifier{}
	tracker := NewTracker(testSteamID, fetcher, rec, notifier)
	tracker.now = func() time.Time { return time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC) }
	return tracker, fetcher, rec, notifier
}

func TestTracker_PollPublishesChanges(t *testing.T) {
	tracker, fetcher, rec, notifier := newTestTracker()
	ctx := context.Background()

	assert.Empty(t, tracker.Current().ID)

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1}, nil)
	require.NoError(t, tracker.Poll(ctx))
	assert.Equal(t, StatusOnline, tracker.Current().Status)
	assert.Equal(t, time.Date(2024, 7, 21, 12, 0, 0, 0, time.UTC), tracker.Current().UpdatedAt)
	assert.Len(t, rec.events, 1)

	// nothing changed so nothing is published
	require.NoError(t, tracker.Poll(ctx))
	assert.Len(t, rec.events, 1)

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1, GameID: "620", GameExtraInfo: "Portal 2"}, nil)
	require.NoError(t, tracker.Poll(ctx))
	assert.Equal(t, StatusPlaying, tracker.Current().Status)
	assert.Len(t, rec.events, 2)
	assert.Contains(t, string(rec.events[1].Data), `"game_name":"Portal 2"`)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, notification{
		title:   "sentry started playing",
		message: "Portal 2",
		url:     "https://store.steampowered.com/app/620",
	}, notifier.sent[0])
}

func TestTracker_FirstPollDoesNotNotify(t *testing.T) {
	tracker, fetcher, rec, notifier := newTestTracker()

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1, GameID: "620"}, nil)
	require.NoError(t, tracker.Poll(context.Background()))

	assert.Len(t, rec.events, 1)
	assert.Empty(t, notifier.sent)
}

func TestTracker_UnnamedGameFallsBackToAppID(t *testing.T) {
	tracker, fetcher, _, notifier := newTestTracker()
	ctx := context.Background()

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1}, nil)
	require.NoError(t, tracker.Poll(ctx))
	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1, GameID: "620"}, nil)
	require.NoError(t, tracker.Poll(ctx))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "App 620", notifier.sent[0].message)
}

func TestTracker_PollErrorKeepsState(t *testing.T) {
	tracker, fetcher, rec, _ := newTestTracker()
	ctx := context.Background()

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1}, nil)
	require.NoError(t, tracker.Poll(ctx))
	before := tracker.Current()

	boom := errors.New("boom")
	fetcher.set(steam.SteamUser{}, boom)
	assert.ErrorIs(t, tracker.Poll(ctx), boom)
	assert.Equal(t, before, tracker.Current())
	assert.Len(t, rec.events, 1)

	// Refresh swallows the error after logging it
	tracker.Refresh()
	assert.Equal(t, before, tracker.Current())
}

func TestTracker_NotifierFailureIsNotFatal(t *testing.T) {
	tracker, fetcher, _, notifier := newTestTracker()
	notifier.err = errors.New("pushover is down")
	ctx := context.Background()

	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1}, nil)
	require.NoError(t, tracker.Poll(ctx))
	fetcher.set(steam.SteamUser{PersonaName: "sentry", PersonaState: 1, GameID: "620"}, nil)
	assert.NoError(t, tracker.Poll(ctx))
	assert.Equal(t, StatusPlaying, tracker.Current().Status)
}

func TestTracker_NilCollaborators(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.set(steam.SteamUser{PersonaState: 1, GameID: "620"}, nil)
	tracker := NewTracker(testSteamID, fetcher, nil, nil)

	require.NoError(t, tracker.Poll(context.Background()))
	assert.Equal(t, testSteamID, tracker.Current().SteamID)
}
