package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/lunamark/spotr"
	"github.com/lunamark/spotr/internal/callback"
	"github.com/lunamark/spotr/internal/config"
	"github.com/lunamark/spotr/internal/store"
)

// loginScopes is what the CLI asks for: enough to read the library, the
// player, and private playlists.
var loginScopes = []spotr.Scope{
	spotr.ScopeUserReadPrivate,
	spotr.ScopeUserReadEmail,
	spotr.ScopeUserReadPlaybackState,
	spotr.ScopeUserReadCurrentlyPlaying,
	spotr.ScopePlaylistReadPrivate,
	spotr.ScopePlaylistReadCollaborative,
	spotr.ScopeUserLibraryRead,
}

// Setup writes the example config file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := config.CreateFile(path); err != nil {
		return err
	}
	r.logger.Infof("wrote %s, fill in your Spotify credentials", path)
	return nil
}

// Login runs the authorization-code flow end to end: prints the auth URL,
// receives the redirect on a local server, and persists the refresh token.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	cfg := r.loadConfig(cmd)

	creds, err := r.credentials(cfg)
	if err != nil {
		return err
	}

	client := spotr.New(creds,
		spotr.WithLogger(r.logger),
		spotr.WithRedirectURI(cfg.Spotify.RedirectURI),
	)

	authURL, _, err := client.AuthorizationURL(loginScopes, cmd.Bool("force"))
	if err != nil {
		return err
	}

	fmt.Println("Visit this URL to authorize spotr:")
	color.New(color.FgCyan, color.Underline).Println(authURL)
	if err := callback.OpenBrowser(authURL); err != nil {
		r.logger.Debug("could not open browser", "err", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	handler := callback.NewHandler(client, cfg.Spotify.RedirectURI)
	if err := callback.Serve(ctx, addr, "/callback", handler); err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	refresh := client.Authenticator().RefreshToken()
	if refresh == "" {
		return fmt.Errorf("no refresh token received")
	}

	ts, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer ts.Close()

	if err := ts.Save(tokenAccount, refresh); err != nil {
		return err
	}

	color.Green("✓ Logged in, token stored in %s", cfg.Store.Path)
	return nil
}

// Logout deletes the stored refresh token.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	cfg := r.loadConfig(cmd)
	ts, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer ts.Close()

	if err := ts.Delete(tokenAccount); err != nil {
		return err
	}
	r.logger.Info("logged out")
	return nil
}

// Search searches the catalogue and prints a table of results.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("missing search query")
	}

	client, _, err := r.client(cmd, false)
	if err != nil {
		return err
	}

	kind := spotr.SearchType(cmd.String("type"))
	res, err := client.Search(ctx, query, []spotr.SearchType{kind}, int(cmd.Int("limit")), 0, "")
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	switch kind {
	case spotr.SearchArtist:
		t.AppendHeader(table.Row{"#", "Artist", "Followers", "ID"})
		if res.Data.Artists != nil {
			for i, a := range res.Data.Artists.Items {
				t.AppendRow(table.Row{i + 1, a.Name, a.Followers.Total, a.ID})
			}
		}
	case spotr.SearchAlbum:
		t.AppendHeader(table.Row{"#", "Album", "Artist", "Released", "ID"})
		if res.Data.Albums != nil {
			for i, a := range res.Data.Albums.Items {
				t.AppendRow(table.Row{i + 1, a.Name, firstArtist(a.Artists), a.ReleaseDate, a.ID})
			}
		}
	case spotr.SearchPlaylist:
		t.AppendHeader(table.Row{"#", "Playlist", "Owner", "Tracks", "ID"})
		if res.Data.Playlists != nil {
			for i, p := range res.Data.Playlists.Items {
				t.AppendRow(table.Row{i + 1, p.Name, p.Owner.DisplayName, p.Tracks.Total, p.ID})
			}
		}
	default:
		t.AppendHeader(table.Row{"#", "Track", "Artist", "Album", "ID"})
		if res.Data.Tracks != nil {
			for i, tr := range res.Data.Tracks.Items {
				t.AppendRow(table.Row{i + 1, tr.Name, firstArtist(tr.Artists), tr.Album.Name, tr.ID})
			}
		}
	}

	t.Render()
	return nil
}

// Album prints an album header and its track listing.
func (r *Runner) Album(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("missing album ID")
	}

	client, _, err := r.client(cmd, false)
	if err != nil {
		return err
	}

	res, err := client.GetAlbum(ctx, id, "")
	if err != nil {
		return err
	}
	album := res.Data

	color.New(color.Bold).Printf("%s — %s (%s)\n", album.Name, firstArtist(album.Artists), album.ReleaseDate)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Length"})
	for _, tr := range album.Tracks.Items {
		t.AppendRow(table.Row{tr.TrackNumber, tr.Name, formatDuration(tr.DurationMS)})
	}
	t.Render()
	return nil
}

// Artist prints an artist header and their top tracks.
func (r *Runner) Artist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("missing artist ID")
	}

	client, _, err := r.client(cmd, false)
	if err != nil {
		return err
	}

	res, err := client.GetArtist(ctx, id)
	if err != nil {
		return err
	}
	artist := res.Data

	color.New(color.Bold).Printf("%s — %d followers\n", artist.Name, artist.Followers.Total)

	top, err := client.GetArtistTopTracks(ctx, id, spotr.Market(cmd.String("market")))
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Track", "Album", "Popularity"})
	for i, tr := range top.Data {
		t.AppendRow(table.Row{i + 1, tr.Name, tr.Album.Name, tr.Popularity})
	}
	t.Render()
	return nil
}

// Playing prints what is playing right now, or a note when nothing is.
func (r *Runner) Playing(ctx context.Context, cmd *cli.Command) error {
	client, _, err := r.client(cmd, true)
	if err != nil {
		return err
	}

	res, err := client.GetCurrentlyPlaying(ctx, "")
	if err != nil {
		return err
	}

	if res.Data == nil {
		fmt.Println("Nothing is playing.")
		return nil
	}

	switch item := res.Data.Item.(type) {
	case spotr.PlayingTrack:
		state := "▶"
		if !res.Data.IsPlaying {
			state = "⏸"
		}
		color.New(color.Bold).Printf("%s %s — %s\n", state, item.Track.Name, firstArtist(item.Track.Artists))
	case spotr.PlayingEpisode:
		color.New(color.Bold).Printf("▶ %s (%s)\n", item.Episode.Name, item.Episode.Show.Name)
	case spotr.PlayingAd:
		fmt.Println("An advertisement is playing.")
	default:
		fmt.Println("Something unrecognized is playing.")
	}
	return nil
}

// Playlists prints the current user's playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	client, _, err := r.client(cmd, true)
	if err != nil {
		return err
	}

	res, err := client.GetCurrentUserPlaylists(ctx, int(cmd.Int("limit")), 0)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Playlist", "Tracks", "Public", "ID"})
	for i, p := range res.Data.Items {
		public := "no"
		if p.Public != nil && *p.Public {
			public = "yes"
		}
		t.AppendRow(table.Row{i + 1, p.Name, p.Tracks.Total, public, p.ID})
	}
	t.Render()
	return nil
}

func firstArtist(artists []spotr.ArtistSimplified) string {
	if len(artists) == 0 {
		return ""
	}
	return artists[0].Name
}

func formatDuration(ms int) string {
	secs := ms / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
