package events

import (
	"testing"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	streams []string
	events  []*sse.Event
}

func (r *recorder) Publish(id string, event *sse.Event) {
	r.streams = append(r.streams, id)
	r.events = append(r.events, event)
}

func TestPublishJSON(t *testing.T) {
	t.Parallel()
	rec := &recorder{}

	err := PublishJSON(rec, PresenceStream, "presence", map[string]string{"status": "playing"})
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	assert.Equal(t, []string{PresenceStream}, rec.streams)
	assert.JSONEq(t, `{"status":"playing"}`, string(rec.events[0].Data))
	assert.Equal(t, "presence", string(rec.events[0].Event))
	_, err = uuid.ParseBytes(rec.events[0].ID)
	assert.NoError(t, err)
}

func TestPublishJSON_UnencodableValue(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	err := PublishJSON(rec, PresenceStream, "presence", make(chan int))
	assert.Error(t, err)
	assert.Empty(t, rec.events)
}

func TestNew_CreatesPresenceStream(t *testing.T) {
	t.Parallel()
	server := New()
	defer server.Close()
	assert.True(t, server.StreamExists(PresenceStream))
}
