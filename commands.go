package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcus-crane/steammini/config"
	"github.com/marcus-crane/steammini/events"
	"github.com/marcus-crane/steammini/notify"
	"github.com/marcus-crane/steammini/presence"
	"github.com/marcus-crane/steammini/steam"
)

type app struct {
	envFile string
	cfg     config.Config
	client  *steam.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "steammini",
		Short:         "Look up Steam profiles and play history",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to read configuration from, if present")

	root.AddCommand(
		a.userCmd(),
		a.recentCmd(),
		a.topCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) setup(logOutput io.Writer) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: cfg.GetLogLevel()})))
	if err := cfg.Validate(); err != nil {
		return err
	}
	client, err := steam.NewClient(cfg.Steam.APIKey,
		steam.WithAPIBaseURL(cfg.Steam.BaseURL),
		steam.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.client = client
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user <steamid>",
		Short: "Show a player's profile summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.client.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), user)
		},
	}
}

func (a *app) recentCmd() *cobra.Command {
	var count int
	var raw bool
	cmd := &cobra.Command{
		Use:   "recent <steamid>",
		Short: "List games played in the last two weeks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Steam.RecentCount
			}
			if raw {
				games, err := a.client.GetRecentlyPlayedRaw(cmd.Context(), args[0], count)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), games)
			}
			games, err := a.client.GetRecentlyPlayed(cmd.Context(), args[0], count)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), games)
		},
	}
	cmd.Flags().IntVar(&count, "count", steam.DefaultRecentCount, "number of games to fetch (defaults to STEAM_RECENT_COUNT)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print games as Steam returns them, playtimes included")
	return cmd
}

func (a *app) topCmd() *cobra.Command {
	opts := steam.DefaultTopGamesOptions()
	cmd := &cobra.Command{
		Use:   "top <steamid>",
		Short: "List a player's most played games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				opts.Count = a.cfg.Steam.TopCount
			}
			games, err := a.client.GetTopGames(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), games)
		},
	}
	cmd.Flags().IntVar(&opts.Count, "count", steam.DefaultTopCount, "number of games to return, 1 to 10 (defaults to STEAM_TOP_COUNT)")
	cmd.Flags().BoolVar(&opts.IncludePlayedFreeGames, "free", opts.IncludePlayedFreeGames, "include free games the player has played")
	cmd.Flags().BoolVar(&opts.IncludeAppInfo, "appinfo", opts.IncludeAppInfo, "include names and icons")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and watch STEAM_USER_ID's presence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sseServer := events.New()

			var tracker *presence.Tracker
			if a.cfg.Steam.UserID != "" {
				var notifier presence.Notifier
				if a.cfg.PushoverEnabled() {
					notifier = notify.NewPushover(a.cfg.Pushover.Token, a.cfg.Pushover.Recipient)
				}
				tracker = presence.NewTracker(a.cfg.Steam.UserID, a.client, sseServer, notifier)
			}

			if tracker != nil && a.cfg.Server.BackgroundJobsEnabled {
				scheduler, err := SetupInBackground(a.cfg, tracker)
				if err != nil {
					sseServer.Close()
					return err
				}
				scheduler.Start()
				defer scheduler.Shutdown()
				slog.Info("Background jobs have started up in the background.")
			} else {
				slog.Info("Background jobs are disabled.")
			}

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", a.cfg.Server.Port),
				Handler:           RegisterRoutes(http.NewServeMux(), a.client, a.cfg, tracker, sseServer),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("steammini is running", slog.String("addr", srv.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				sseServer.Close()
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			slog.Info("Gracefully shutting down...")
			// SSE subscribers hold their connections open until their stream closes
			sseServer.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
