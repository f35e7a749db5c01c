package steam

import (
	"context"
	"net/url"
)

// GetUser returns the profile summary for steamID.
func (c *Client) GetUser(ctx context.Context, steamID string) (SteamUser, error) {
	var user SteamUser
	if err := ValidateSteamID(steamID); err != nil {
		return user, err
	}

	payload, err := c.Request(ctx, EndpointGetUser, url.Values{"steamids": {steamID}})
	if err != nil {
		return user, err
	}

	var summary playerSummaryResponse
	if err := payload.Decode(&summary); err != nil {
		return user, err
	}
	if len(summary.Response.Players) == 0 {
		return user, notFoundError(ERR_USER_NOT_FOUND)
	}
	return summary.Response.Players[0], nil
}
