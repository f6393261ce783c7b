// Package auth keeps the API key and the login credentials in the system keyring.
package auth

import (
	"encoding/json"
	"errors"

	"github.com/Ceeox/proxer-go/user"
	"github.com/zalando/go-keyring"
)

const (
	service        = "proxer-go"
	apiKeyUser     = "api-key"
	credentialUser = "login"
)

// ErrNotFound is returned when nothing is stored under the requested entry.
var ErrNotFound = keyring.ErrNotFound

func SetAPIKey(apiKey string) error {
	return keyring.Set(service, apiKeyUser, apiKey)
}

func GetAPIKey() (string, error) {
	return keyring.Get(service, apiKeyUser)
}

func DeleteAPIKey() error {
	return ignoreMissing(keyring.Delete(service, apiKeyUser))
}

// SaveCredentials stores the login triple as JSON.
func SaveCredentials(credentials user.Credentials) error {
	bytes, err := json.Marshal(credentials)
	if err != nil {
		return err
	}
	return keyring.Set(service, credentialUser, string(bytes))
}

func LoadCredentials() (user.Credentials, error) {
	var credentials user.Credentials

	str, err := keyring.Get(service, credentialUser)
	if err != nil {
		return credentials, err
	}

	if err := json.Unmarshal([]byte(str), &credentials); err != nil {
		return credentials, err
	}
	return credentials, nil
}

// DeleteCredentials forgets the login. Deleting a missing login is not an error.
func DeleteCredentials() error {
	return ignoreMissing(keyring.Delete(service, credentialUser))
}

func ignoreMissing(err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
