package steam

// SteamUser is a single entry from GetPlayerSummaries. Only SteamID is
// guaranteed, everything else depends on the player's privacy settings.
type SteamUser struct {
	SteamID                  string `json:"steamid"`
	PersonaName              string `json:"personaname,omitempty"`
	ProfileURL               string `json:"profileurl,omitempty"`
	Avatar                   string `json:"avatar,omitempty"`
	AvatarMedium             string `json:"avatarmedium,omitempty"`
	AvatarFull               string `json:"avatarfull,omitempty"`
	AvatarHash               string `json:"avatarhash,omitempty"`
	PersonaState             int    `json:"personastate,omitempty"`
	PersonaStateFlags        int    `json:"personastateflags,omitempty"`
	CommunityVisibilityState int    `json:"communityvisibilitystate,omitempty"`
	ProfileState             int    `json:"profilestate,omitempty"`
	LastLogoff               int64  `json:"lastlogoff,omitempty"`
	CommentPermission        int    `json:"commentpermission,omitempty"`
	RealName                 string `json:"realname,omitempty"`
	PrimaryClanID            string `json:"primaryclanid,omitempty"`
	TimeCreated              int64  `json:"timecreated,omitempty"`
	GameID                   string `json:"gameid,omitempty"`
	GameServerIP             string `json:"gameserverip,omitempty"`
	GameExtraInfo            string `json:"gameextrainfo,omitempty"`
	LocCountryCode           string `json:"loccountrycode,omitempty"`
	LocStateCode             string `json:"locstatecode,omitempty"`
	LocCityID                int    `json:"loccityid,omitempty"`
}

// IsPlaying reports whether Steam thinks the user is currently in a game.
func (u SteamUser) IsPlaying() bool {
	return u.GameID != ""
}

type playerSummaryResponse struct {
	Response struct {
		Players []SteamUser `json:"players"`
	} `json:"response"`
}

// SteamGame is a game as returned by the IPlayerService endpoints. Playtimes
// are in minutes.
type SteamGame struct {
	AppID                  int    `json:"appid"`
	Name                   string `json:"name,omitempty"`
	ImgIconURL             string `json:"img_icon_url,omitempty"`
	ImgLogoURL             string `json:"img_logo_url,omitempty"`
	PlaytimeForever        int    `json:"playtime_forever"`
	Playtime2Weeks         int    `json:"playtime_2weeks"`
	PlaytimeWindowsForever int    `json:"playtime_windows_forever"`
	PlaytimeMacForever     int    `json:"playtime_mac_forever"`
	PlaytimeLinuxForever   int    `json:"playtime_linux_forever"`
	PlaytimeDeckForever    int    `json:"playtime_deck_forever"`
	RTimeLastPlayed        int64  `json:"rtime_last_played,omitempty"`
}

type recentlyPlayedResponse struct {
	Response struct {
		TotalCount int         `json:"total_count"`
		Games      []SteamGame `json:"games"`
	} `json:"response"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int         `json:"game_count"`
		Games     []SteamGame `json:"games"`
	} `json:"response"`
}

// RecentGame is the shaped form of a recently played game.
type RecentGame struct {
	AppID int    `json:"appid"`
	Name  string `json:"name"`
	Image string `json:"image"`
	URL   string `json:"url"`
}

// TopGame is the shaped form of an owned game, ranked by Playtime.
type TopGame struct {
	AppID    int    `json:"appid"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	URL      string `json:"url"`
	Playtime int    `json:"playtime"`
}

type StoreItem struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	SteamAppID  int      `json:"steam_appid"`
	IsFree      bool     `json:"is_free"`
	HeaderImage string   `json:"header_image"`
	Developers  []string `json:"developers"`
	Publishers  []string `json:"publishers"`
}

type storeAppResponse struct {
	Success bool      `json:"success"`
	Data    StoreItem `json:"data"`
}
