package events

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/r3labs/sse/v2"
)

const PresenceStream = "presence"

// Publisher is the part of *sse.Server that producers need.
type Publisher interface {
	Publish(id string, event *sse.Event)
}

func New() *sse.Server {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(PresenceStream)
	return server
}

// PublishJSON sends v to every subscriber of stream under a fresh event ID.
func PublishJSON(p Publisher, stream string, eventType string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.Publish(stream, &sse.Event{
		ID:    []byte(uuid.NewString()),
		Event: []byte(eventType),
		Data:  data,
	})
	return nil
}
