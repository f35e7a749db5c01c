package presence

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus-crane/steammini/steam"
)

type Status string

const (
	StatusOffline Status = "offline"
	StatusOnline  Status = "online"
	StatusPlaying Status = "playing"
)

// Presence is what a watched user is up to, as of the last successful poll.
type Presence struct {
	ID          string    `json:"id"`
	SteamID     string    `json:"steam_id"`
	PersonaName string    `json:"persona_name"`
	Avatar      string    `json:"avatar,omitempty"`
	Status      Status    `json:"status"`
	GameID      string    `json:"game_id,omitempty"`
	GameName    string    `json:"game_name,omitempty"`
	StoreURL    string    `json:"store_url,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromUser(u steam.SteamUser) Presence {
	p := Presence{
		SteamID:     u.SteamID,
		PersonaName: u.PersonaName,
		Avatar:      u.AvatarFull,
		Status:      StatusOffline,
	}
	// personastate 0 is offline, every other value is some flavour of online
	if u.PersonaState != 0 {
		p.Status = StatusOnline
	}
	if u.IsPlaying() {
		p.Status = StatusPlaying
		p.GameID = u.GameID
		p.GameName = u.GameExtraInfo
		p.StoreURL = fmt.Sprintf("https://store.steampowered.com/app/%s", u.GameID)
	}
	p.ID = GeneratePresenceID(&p)
	return p
}

// GeneratePresenceID is deterministic so two polls that saw the same thing
// produce the same ID. UpdatedAt is not hashed.
func GeneratePresenceID(p *Presence) string {
	hashString := fmt.Sprintf("%s-%s-%s-%s-%s",
		p.SteamID,
		p.PersonaName,
		p.Status,
		p.GameID,
		p.GameName,
	)
	return fmt.Sprintf(
		"steam:%s:%d",
		p.Status,
		xxhash.Sum64String(hashString),
	)
}
