package steam

import (
	"context"
	"net/url"
	"strconv"
)

// LookupStoreItem fetches storefront details for appID. The storefront lives
// on a different host so the request is sent with a base URL override.
func (c *Client) LookupStoreItem(ctx context.Context, appID int) (StoreItem, error) {
	var item StoreItem
	if appID <= 0 {
		return item, validationError(ERR_INVALID_APP_ID)
	}

	id := strconv.Itoa(appID)
	payload, err := c.Request(ctx, EndpointAppDetails, url.Values{"appids": {id}}, WithBase(c.storeBaseURL))
	if err != nil {
		return item, err
	}

	var apps map[string]storeAppResponse
	if err := payload.Decode(&apps); err != nil {
		return item, err
	}
	app, ok := apps[id]
	if !ok {
		return item, decodeError(ERR_STORE_RESPONSE_MALFORMED, nil)
	}
	if !app.Success {
		return item, notFoundError(ERR_STORE_ITEM_NOT_FOUND)
	}
	return app.Data, nil
}
