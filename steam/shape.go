package steam

import "fmt"

const (
	mediaBaseURL = "https://media.steampowered.com/steamcommunity/public/images/apps"
	storeAppURL  = "https://store.steampowered.com/app"
)

// IconURL is empty when Steam left out the icon hash, which happens when
// app info was not requested.
func (g SteamGame) IconURL() string {
	if g.ImgIconURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s.jpg", mediaBaseURL, g.AppID, g.ImgIconURL)
}

func (g SteamGame) StoreURL() string {
	return fmt.Sprintf("%s/%d", storeAppURL, g.AppID)
}

func shapeRecent(g SteamGame) RecentGame {
	return RecentGame{
		AppID: g.AppID,
		Name:  g.Name,
		Image: g.IconURL(),
		URL:   g.StoreURL(),
	}
}

func shapeTop(g SteamGame) TopGame {
	return TopGame{
		AppID:    g.AppID,
		Name:     g.Name,
		Image:    g.IconURL(),
		URL:      g.StoreURL(),
		Playtime: g.PlaytimeForever,
	}
}
