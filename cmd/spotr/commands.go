package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "setup",
			Usage:  "Write an example config.toml to the current directory",
			Flags:  []cli.Flag{configFlag()},
			Action: r.Setup,
		},
		{
			Name:  "login",
			Usage: "Authenticate with Spotify using the authorization-code flow",
			Flags: []cli.Flag{
				configFlag(),
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Show the consent dialog even if already approved",
				},
			},
			Action: r.Login,
		},
		{
			Name:  "search",
			Usage: "Search the Spotify catalogue",
			Arguments: []cli.Argument{
				&cli.StringArg{Name: "query"},
			},
			Flags: []cli.Flag{
				configFlag(),
				&cli.StringFlag{
					Name:  "type",
					Usage: "Object kind to search: album, artist, track, playlist",
					Value: "track",
				},
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of results",
					Value: 10,
				},
			},
			Action: r.Search,
		},
		{
			Name:  "album",
			Usage: "Show an album and its tracks",
			Arguments: []cli.Argument{
				&cli.StringArg{Name: "id"},
			},
			Flags:  []cli.Flag{configFlag()},
			Action: r.Album,
		},
		{
			Name:  "artist",
			Usage: "Show an artist and their top tracks",
			Arguments: []cli.Argument{
				&cli.StringArg{Name: "id"},
			},
			Flags: []cli.Flag{
				configFlag(),
				&cli.StringFlag{
					Name:  "market",
					Usage: "Country code for top tracks",
					Value: "US",
				},
			},
			Action: r.Artist,
		},
		{
			Name:   "playing",
			Usage:  "Show the currently playing item",
			Flags:  []cli.Flag{configFlag()},
			Action: r.Playing,
		},
		{
			Name:  "playlists",
			Usage: "List your playlists",
			Flags: []cli.Flag{
				configFlag(),
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Maximum number of playlists",
					Value: 50,
				},
			},
			Action: r.Playlists,
		},
		{
			Name:   "logout",
			Usage:  "Forget the stored refresh token",
			Flags:  []cli.Flag{configFlag()},
			Action: r.Logout,
		},
	}
}
