package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/r3labs/sse/v2"
	"github.com/rs/cors"

	"github.com/marcus-crane/steammini/config"
	"github.com/marcus-crane/steammini/presence"
	"github.com/marcus-crane/steammini/steam"
)

type steamAPI interface {
	GetUser(ctx context.Context, steamID string) (steam.SteamUser, error)
	GetRecentlyPlayed(ctx context.Context, steamID string, count int) ([]steam.RecentGame, error)
	GetTopGames(ctx context.Context, steamID string, opts steam.TopGamesOptions) ([]steam.TopGame, error)
	LookupStoreItem(ctx context.Context, appID int) (steam.StoreItem, error)
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func renderJSONMessage(w http.ResponseWriter, message string) {
	renderJSON(w, http.StatusOK, map[string]string{"message": message})
}

func renderJSONError(w http.ResponseWriter, status int, message string) {
	renderJSON(w, status, map[string]string{"error": message})
}

// renderSteamError maps the kind of a steam error onto a status code. Anything
// that went wrong talking to Steam is the upstream's fault, hence 502.
func renderSteamError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch steam.KindOf(err) {
	case steam.KindValidation:
		status = http.StatusBadRequest
	case steam.KindNotFound:
		status = http.StatusNotFound
	}
	renderJSONError(w, status, err.Error())
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return v, nil
}

func queryBool(r *http.Request, key string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", key)
	}
	return v, nil
}

// RegisterRoutes wires the HTTP API onto mux. tracker is nil when no user
// is being watched.
func RegisterRoutes(mux *http.ServeMux, api steamAPI, cfg config.Config, tracker *presence.Tracker, sseServer *sse.Server) http.Handler {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "Welcome to steammini, a tiny window into Steam.\nYou can find the source code on <a href=\"https://github.com/marcus-crane/steammini\">Github</a>\n")
	})

	mux.HandleFunc("GET /api", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, "This is the base of steammini's API")
	})

	mux.HandleFunc("GET /api/v1", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, "This is the v1 endpoint of the API")
	})

	mux.HandleFunc("GET /api/v1/users/{steamid}", func(w http.ResponseWriter, r *http.Request) {
		user, err := api.GetUser(r.Context(), r.PathValue("steamid"))
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, http.StatusOK, user)
	})

	mux.HandleFunc("GET /api/v1/users/{steamid}/recent", func(w http.ResponseWriter, r *http.Request) {
		count, err := queryInt(r, "count", cfg.Steam.RecentCount)
		if err != nil {
			renderJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		games, err := api.GetRecentlyPlayed(r.Context(), r.PathValue("steamid"), count)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, http.StatusOK, games)
	})

	mux.HandleFunc("GET /api/v1/users/{steamid}/top", func(w http.ResponseWriter, r *http.Request) {
		opts := steam.DefaultTopGamesOptions()
		var err error
		if opts.Count, err = queryInt(r, "count", cfg.Steam.TopCount); err != nil {
			renderJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if opts.IncludePlayedFreeGames, err = queryBool(r, "free", opts.IncludePlayedFreeGames); err != nil {
			renderJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if opts.IncludeAppInfo, err = queryBool(r, "appinfo", opts.IncludeAppInfo); err != nil {
			renderJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		games, err := api.GetTopGames(r.Context(), r.PathValue("steamid"), opts)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, http.StatusOK, games)
	})

	mux.HandleFunc("GET /api/v1/apps/{appid}", func(w http.ResponseWriter, r *http.Request) {
		appID, err := strconv.Atoi(r.PathValue("appid"))
		if err != nil {
			renderJSONError(w, http.StatusBadRequest, steam.ERR_INVALID_APP_ID)
			return
		}
		item, err := api.LookupStoreItem(r.Context(), appID)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, http.StatusOK, item)
	})

	mux.HandleFunc("GET /api/v1/presence", func(w http.ResponseWriter, r *http.Request) {
		if tracker == nil {
			renderJSONError(w, http.StatusNotFound, "Presence tracking is not configured. Set STEAM_USER_ID to enable it.")
			return
		}
		renderJSON(w, http.StatusOK, tracker.Current())
	})

	if sseServer != nil {
		mux.HandleFunc("GET /events", sseServer.ServeHTTP)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})

	return c.Handler(mux)
}
