package spotr

import (
	"encoding/json"
	"fmt"
)

// PlayingItem is the item currently loaded in the player, discriminated by
// the currently_playing_type field on the wire. Exactly one concrete type
// implements each kind: [PlayingTrack], [PlayingEpisode], [PlayingAd], and
// [PlayingUnknown].
type PlayingItem interface {
	playingItem()
}

// PlayingTrack is a music track in the player.
type PlayingTrack struct {
	Track Track
}

// PlayingEpisode is a podcast episode in the player.
type PlayingEpisode struct {
	Episode Episode
}

// PlayingAd is an advertisement in the player. It carries no item data.
type PlayingAd struct{}

// PlayingUnknown is an item kind this library does not know; Raw holds the
// undecoded item body.
type PlayingUnknown struct {
	Type string
	Raw  json.RawMessage
}

func (PlayingTrack) playingItem()   {}
func (PlayingEpisode) playingItem() {}
func (PlayingAd) playingItem()      {}
func (PlayingUnknown) playingItem() {}

// CurrentlyPlaying describes what the user is listening to right now.
type CurrentlyPlaying struct {
	Context    *Context
	Timestamp  int64
	ProgressMS *int
	IsPlaying  bool
	Item       PlayingItem
}

type currentlyPlayingWire struct {
	Context              *Context        `json:"context"`
	Timestamp            int64           `json:"timestamp"`
	ProgressMS           *int            `json:"progress_ms"`
	IsPlaying            bool            `json:"is_playing"`
	Item                 json.RawMessage `json:"item"`
	CurrentlyPlayingType string          `json:"currently_playing_type"`
}

// UnmarshalJSON decodes the playing item into the variant named by the
// currently_playing_type discriminator.
func (p *CurrentlyPlaying) UnmarshalJSON(data []byte) error {
	var wire currentlyPlayingWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	item, err := decodePlayingItem(wire.CurrentlyPlayingType, wire.Item)
	if err != nil {
		return err
	}
	*p = CurrentlyPlaying{
		Context:    wire.Context,
		Timestamp:  wire.Timestamp,
		ProgressMS: wire.ProgressMS,
		IsPlaying:  wire.IsPlaying,
		Item:       item,
	}
	return nil
}

func decodePlayingItem(kind string, raw json.RawMessage) (PlayingItem, error) {
	switch kind {
	case "track":
		var t Track
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("failed to decode playing track: %w", err)
		}
		return PlayingTrack{Track: t}, nil
	case "episode":
		var e Episode
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("failed to decode playing episode: %w", err)
		}
		return PlayingEpisode{Episode: e}, nil
	case "ad":
		return PlayingAd{}, nil
	default:
		return PlayingUnknown{Type: kind, Raw: raw}, nil
	}
}

// CurrentPlayback extends [CurrentlyPlaying] with the device and player mode.
type CurrentPlayback struct {
	CurrentlyPlaying
	Device       Device
	RepeatState  RepeatState
	ShuffleState bool
}

type currentPlaybackWire struct {
	currentlyPlayingWire
	Device       Device      `json:"device"`
	RepeatState  RepeatState `json:"repeat_state"`
	ShuffleState bool        `json:"shuffle_state"`
}

// UnmarshalJSON decodes the playback state including the tagged playing item.
func (p *CurrentPlayback) UnmarshalJSON(data []byte) error {
	var wire currentPlaybackWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	item, err := decodePlayingItem(wire.CurrentlyPlayingType, wire.Item)
	if err != nil {
		return err
	}
	*p = CurrentPlayback{
		CurrentlyPlaying: CurrentlyPlaying{
			Context:    wire.Context,
			Timestamp:  wire.Timestamp,
			ProgressMS: wire.ProgressMS,
			IsPlaying:  wire.IsPlaying,
			Item:       item,
		},
		Device:       wire.Device,
		RepeatState:  wire.RepeatState,
		ShuffleState: wire.ShuffleState,
	}
	return nil
}
