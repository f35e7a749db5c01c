package notify

import (
	"time"

	"github.com/gregdel/pushover"
)

type Pushover struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
}

func NewPushover(token, recipient string) *Pushover {
	return &Pushover{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(recipient),
	}
}

func (p *Pushover) Notify(title, message, url string) error {
	msg := &pushover.Message{
		Message:   message,
		Title:     title,
		Priority:  pushover.PriorityNormal,
		URL:       url,
		URLTitle:  "Open in the Steam store",
		Timestamp: time.Now().Unix(),
	}
	_, err := p.app.SendMessage(msg, p.recipient)
	return err
}
