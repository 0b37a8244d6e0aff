package spotr

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidRedirect is returned by [Client.Redirected] when the callback
	// URL is malformed or is missing the authorization code.
	ErrInvalidRedirect = errors.New("invalid redirect URL")

	// ErrIncorrectState is returned by [Client.Redirected] when the state
	// parameter is missing, unknown, or already consumed.
	ErrIncorrectState = errors.New("state parameter not found or is incorrect")
)

// AuthenticationError is a non-2xx response from the token endpoint.
type AuthenticationError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// AuthDeclinedError is returned by [Client.Redirected] when the authorization
// redirect carried an error parameter, most commonly because the user declined
// consent.
type AuthDeclinedError struct {
	Reason string
}

func (e *AuthDeclinedError) Error() string {
	return fmt.Sprintf("authorization failed: %s", e.Reason)
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Reason  PlayerReason `json:"reason,omitempty"`
}

// Error is a non-2xx response from a resource endpoint, decoded from the
// standard {"error": {"status": ..., "message": ...}} envelope.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int
	// Message is a short description of the cause.
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("spotify error %d: %s", e.Status, e.Message)
}

// MarshalJSON encodes the error in its wire envelope.
func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorEnvelope{Error: errorBody{Status: e.Status, Message: e.Message}})
}

// UnmarshalJSON decodes the error from its wire envelope.
func (e *Error) UnmarshalJSON(data []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	e.Status = env.Error.Status
	e.Message = env.Error.Message
	return nil
}

// PlayerError is an [Error] extended with a machine-readable reason, returned
// by the player endpoints to distinguish conditions like "no active device"
// from "already paused".
type PlayerError struct {
	Status  int
	Message string
	Reason  PlayerReason
}

func (e *PlayerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Reason.Description())
}

// MarshalJSON encodes the error in its wire envelope.
func (e PlayerError) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorEnvelope{Error: errorBody{Status: e.Status, Message: e.Message, Reason: e.Reason}})
}

// UnmarshalJSON decodes the error from its wire envelope.
func (e *PlayerError) UnmarshalJSON(data []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	e.Status = env.Error.Status
	e.Message = env.Error.Message
	e.Reason = env.Error.Reason
	return nil
}

// PlayerReason is the machine-readable reason attached to a [PlayerError].
type PlayerReason string

const (
	ReasonNoPrevTrack           PlayerReason = "NO_PREV_TRACK"
	ReasonNoNextTrack           PlayerReason = "NO_NEXT_TRACK"
	ReasonNoSpecificTrack       PlayerReason = "NO_SPECIFIC_TRACK"
	ReasonAlreadyPaused         PlayerReason = "ALREADY_PAUSED"
	ReasonNotPaused             PlayerReason = "NOT_PAUSED"
	ReasonNotPlayingLocally     PlayerReason = "NOT_PLAYING_LOCALLY"
	ReasonNotPlayingTrack       PlayerReason = "NOT_PLAYING_TRACK"
	ReasonNotPlayingContext     PlayerReason = "NOT_PLAYING_CONTEXT"
	ReasonEndlessContext        PlayerReason = "ENDLESS_CONTEXT"
	ReasonContextDisallow       PlayerReason = "CONTEXT_DISALLOW"
	ReasonAlreadyPlaying        PlayerReason = "ALREADY_PLAYING"
	ReasonRateLimited           PlayerReason = "RATE_LIMITED"
	ReasonRemoteControlDisallow PlayerReason = "REMOTE_CONTROL_DISALLOW"
	ReasonDeviceNotControllable PlayerReason = "DEVICE_NOT_CONTROLLABLE"
	ReasonVolumeControlDisallow PlayerReason = "VOLUME_CONTROL_DISALLOW"
	ReasonNoActiveDevice        PlayerReason = "NO_ACTIVE_DEVICE"
	ReasonPremiumRequired       PlayerReason = "PREMIUM_REQUIRED"
	ReasonUnknown               PlayerReason = "UNKNOWN"
)

// Description returns a human-readable explanation of the reason.
func (r PlayerReason) Description() string {
	switch r {
	case ReasonNoPrevTrack:
		return "there is no previous track"
	case ReasonNoNextTrack:
		return "there is no next track"
	case ReasonNoSpecificTrack:
		return "the requested track does not exist"
	case ReasonAlreadyPaused:
		return "playback is paused"
	case ReasonNotPaused:
		return "playback is not paused"
	case ReasonNotPlayingLocally:
		return "playback is not on the local device"
	case ReasonNotPlayingTrack:
		return "no track is currently playing"
	case ReasonNotPlayingContext:
		return "no context is currently playing"
	case ReasonEndlessContext:
		return "the current context is endless"
	case ReasonContextDisallow:
		return "the action cannot be performed on the current context"
	case ReasonAlreadyPlaying:
		return "the same track is already playing"
	case ReasonRateLimited:
		return "too frequent track play"
	case ReasonRemoteControlDisallow:
		return "the context cannot be remote controlled"
	case ReasonDeviceNotControllable:
		return "it is not possible to control the device"
	case ReasonVolumeControlDisallow:
		return "it is not possible to control the device's volume"
	case ReasonNoActiveDevice:
		return "the user does not have an active device"
	case ReasonPremiumRequired:
		return "the action requires premium"
	default:
		return "the action is restricted for unknown reasons"
	}
}
