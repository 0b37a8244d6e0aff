package spotr

import (
	"fmt"
	"os"
)

// Credentials holds a Spotify application's client ID and secret.
// Constructed once at startup and immutable afterwards.
type Credentials struct {
	ID     string
	Secret string
}

// NewCredentials creates Credentials from explicit values.
func NewCredentials(id, secret string) (Credentials, error) {
	if id == "" || secret == "" {
		return Credentials{}, fmt.Errorf("%w: client id and secret are required", ErrMissingCredentials)
	}
	return Credentials{ID: id, Secret: secret}, nil
}

// CredentialsFromEnv reads the CLIENT_ID and CLIENT_SECRET environment variables.
func CredentialsFromEnv() (Credentials, error) {
	return CredentialsFromEnvVars("CLIENT_ID", "CLIENT_SECRET")
}

// CredentialsFromEnvVars reads the client ID and secret from the named
// environment variables.
func CredentialsFromEnvVars(idVar, secretVar string) (Credentials, error) {
	id, ok := os.LookupEnv(idVar)
	if !ok {
		return Credentials{}, fmt.Errorf("%w: %s not set", ErrMissingCredentials, idVar)
	}
	secret, ok := os.LookupEnv(secretVar)
	if !ok {
		return Credentials{}, fmt.Errorf("%w: %s not set", ErrMissingCredentials, secretVar)
	}
	return NewCredentials(id, secret)
}
