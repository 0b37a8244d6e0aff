package spotr

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestErrorEnvelope(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		original := Error{Status: 404, Message: "Not found"}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if got := string(data); got != `{"error":{"status":404,"message":"Not found"}}` {
			t.Errorf("unexpected wire form: %s", got)
		}

		var decoded Error
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if decoded != original {
			t.Errorf("expected %+v after round trip, got %+v", original, decoded)
		}
	})

	t.Run("Player Error Round Trip", func(t *testing.T) {
		original := PlayerError{Status: 403, Message: "Player command failed", Reason: ReasonAlreadyPaused}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if !strings.Contains(string(data), `"reason":"ALREADY_PAUSED"`) {
			t.Errorf("expected reason in wire form, got %s", data)
		}

		var decoded PlayerError
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if decoded != original {
			t.Errorf("expected %+v after round trip, got %+v", original, decoded)
		}
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("Plain Error", func(t *testing.T) {
		err := decodeError(404, []byte(`{"error":{"status":404,"message":"Not found"}}`))
		apiErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("expected *Error, got %T", err)
		}
		if apiErr.Status != 404 || apiErr.Message != "Not found" {
			t.Errorf("unexpected contents: %+v", apiErr)
		}
	})

	t.Run("Player Error When Reason Present", func(t *testing.T) {
		err := decodeError(403, []byte(`{"error":{"status":403,"message":"Restricted","reason":"PREMIUM_REQUIRED"}}`))
		playerErr, ok := err.(*PlayerError)
		if !ok {
			t.Fatalf("expected *PlayerError, got %T", err)
		}
		if playerErr.Reason != ReasonPremiumRequired {
			t.Errorf("expected PREMIUM_REQUIRED, got %q", playerErr.Reason)
		}
	})

	t.Run("Undecodable Body", func(t *testing.T) {
		err := decodeError(502, []byte("<html>bad gateway</html>"))
		if err == nil {
			t.Fatal("expected an error")
		}
		if _, ok := err.(*Error); ok {
			t.Error("expected a generic error for a non-JSON body")
		}
	})
}

func TestPlayerReasonDescription(t *testing.T) {
	if got := ReasonNoActiveDevice.Description(); got != "the user does not have an active device" {
		t.Errorf("unexpected description: %q", got)
	}
	if got := PlayerReason("SOMETHING_NEW").Description(); got != "the action is restricted for unknown reasons" {
		t.Errorf("expected fallback description, got %q", got)
	}
}
