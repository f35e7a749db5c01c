package steam

import (
	"cmp"
	"context"
	"net/url"
	"strconv"

	"golang.org/x/exp/slices"
)

// TopGamesOptions controls GetTopGames. Count must be within [1, 10].
type TopGamesOptions struct {
	Count                  int
	IncludePlayedFreeGames bool
	IncludeAppInfo         bool
}

func DefaultTopGamesOptions() TopGamesOptions {
	return TopGamesOptions{
		Count:                  DefaultTopCount,
		IncludePlayedFreeGames: false,
		IncludeAppInfo:         true,
	}
}

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// GetRecentlyPlayedRaw returns up to count games played in the last two
// weeks exactly as Steam reports them.
func (c *Client) GetRecentlyPlayedRaw(ctx context.Context, steamID string, count int) ([]SteamGame, error) {
	if err := ValidateSteamID(steamID); err != nil {
		return nil, err
	}
	if err := validateRecentCount(count); err != nil {
		return nil, err
	}

	payload, err := c.Request(ctx, EndpointRecentlyPlayed, url.Values{
		"steamid": {steamID},
		"count":   {strconv.Itoa(count)},
	})
	if err != nil {
		return nil, err
	}

	var recent recentlyPlayedResponse
	if err := payload.Decode(&recent); err != nil {
		return nil, err
	}
	// The count fields are sometimes left out, so only the games list decides.
	if len(recent.Response.Games) == 0 {
		return []SteamGame{}, nil
	}
	return recent.Response.Games, nil
}

// GetRecentlyPlayed is GetRecentlyPlayedRaw with each game reduced to its
// name, icon and store page.
func (c *Client) GetRecentlyPlayed(ctx context.Context, steamID string, count int) ([]RecentGame, error) {
	games, err := c.GetRecentlyPlayedRaw(ctx, steamID, count)
	if err != nil {
		return nil, err
	}
	shaped := make([]RecentGame, 0, len(games))
	for _, g := range games {
		shaped = append(shaped, shapeRecent(g))
	}
	return shaped, nil
}

// GetTopGames returns the player's owned games ordered by lifetime playtime,
// most played first, cut down to opts.Count. Games with equal playtime keep
// the order Steam returned them in.
func (c *Client) GetTopGames(ctx context.Context, steamID string, opts TopGamesOptions) ([]TopGame, error) {
	if err := ValidateSteamID(steamID); err != nil {
		return nil, err
	}
	if err := validateTopCount(opts.Count); err != nil {
		return nil, err
	}

	payload, err := c.Request(ctx, EndpointOwnedGames, url.Values{
		"steamid":                   {steamID},
		"count":                     {strconv.Itoa(opts.Count)},
		"include_played_free_games": {boolParam(opts.IncludePlayedFreeGames)},
		"include_appinfo":           {boolParam(opts.IncludeAppInfo)},
	})
	if err != nil {
		return nil, err
	}

	var owned ownedGamesResponse
	if err := payload.Decode(&owned); err != nil {
		return nil, err
	}
	if len(owned.Response.Games) == 0 {
		return []TopGame{}, nil
	}

	shaped := make([]TopGame, 0, len(owned.Response.Games))
	for _, g := range owned.Response.Games {
		shaped = append(shaped, shapeTop(g))
	}
	slices.SortStableFunc(shaped, func(a, b TopGame) int {
		return cmp.Compare(b.Playtime, a.Playtime)
	})
	if len(shaped) > opts.Count {
		shaped = shaped[:opts.Count]
	}
	return shaped, nil
}
