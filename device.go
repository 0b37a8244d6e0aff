package spotr

// Device is a playback device known to the user's account.
type Device struct {
	ID               string `json:"id"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"` // computer, smartphone, speaker, ...
	VolumePercent    *int   `json:"volume_percent"`
}

// RepeatState is the player's repeat mode.
type RepeatState string

const (
	RepeatOff     RepeatState = "off"
	RepeatTrack   RepeatState = "track"
	RepeatContext RepeatState = "context"
)
