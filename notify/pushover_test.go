package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushover_RejectsMissingCredentialsBeforeSending(t *testing.T) {
	t.Parallel()
	p := NewPushover("", "")
	err := p.Notify("sentry started playing", "Portal 2", "https://store.steampowered.com/app/620")
	assert.Error(t, err)
}
