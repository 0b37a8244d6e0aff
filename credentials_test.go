package spotr

import (
	"errors"
	"testing"
)

func TestCredentials(t *testing.T) {
	t.Run("Explicit Values", func(t *testing.T) {
		creds, err := NewCredentials("id", "secret")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if creds.ID != "id" || creds.Secret != "secret" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("Rejects Empty Values", func(t *testing.T) {
		for name, pair := range map[string][2]string{
			"No ID":     {"", "secret"},
			"No Secret": {"id", ""},
			"Neither":   {"", ""},
		} {
			t.Run(name, func(t *testing.T) {
				_, err := NewCredentials(pair[0], pair[1])
				if !errors.Is(err, ErrMissingCredentials) {
					t.Errorf("expected ErrMissingCredentials, got %v", err)
				}
			})
		}
	})

	t.Run("From Environment", func(t *testing.T) {
		t.Setenv("SPOTR_TEST_ID", "env-id")
		t.Setenv("SPOTR_TEST_SECRET", "env-secret")

		creds, err := CredentialsFromEnvVars("SPOTR_TEST_ID", "SPOTR_TEST_SECRET")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if creds.ID != "env-id" || creds.Secret != "env-secret" {
			t.Errorf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("From Environment Missing Variable", func(t *testing.T) {
		_, err := CredentialsFromEnvVars("SPOTR_TEST_UNSET_ID", "SPOTR_TEST_UNSET_SECRET")
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}
