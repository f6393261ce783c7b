package cmd

import (
	"errors"
	"net/http"

	"github.com/Ceeox/proxer-go/api"
	"github.com/Ceeox/proxer-go/auth"
	"github.com/Ceeox/proxer-go/key"
	"github.com/Ceeox/proxer-go/log"
	"github.com/Ceeox/proxer-go/network"
	"github.com/Ceeox/proxer-go/user"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	errNoAPIKey    = errors.New(`no API key, set one with "proxer config key set" or PROXER_API_KEY`)
	errNotLoggedIn = errors.New(`not logged in, run "proxer user login" first`)
)

func httpClient() (*http.Client, error) {
	return network.New(viper.GetString(key.NetworkTransport))
}

// apiKey prefers the configured key and falls back to the keyring.
func apiKey() (string, error) {
	if k := viper.GetString(key.APIKey); k != "" {
		return k, nil
	}

	k, err := auth.GetAPIKey()
	switch {
	case errors.Is(err, auth.ErrNotFound):
		return "", errNoAPIKey
	case err != nil:
		return "", err
	case k == "":
		return "", errNoAPIKey
	}

	return k, nil
}

// newSession builds an anonymous session from the configuration.
func newSession() (*api.Session, error) {
	k, err := apiKey()
	if err != nil {
		return nil, err
	}

	client, err := httpClient()
	if err != nil {
		return nil, err
	}

	return api.New(k,
		api.WithBaseURL(viper.GetString(key.APIBaseURL)),
		api.WithVersion(viper.GetString(key.APIVersion)),
		api.WithRawParams(viper.GetBool(key.APIRawParams)),
		api.WithNewsURL(viper.GetString(key.NewsURL)),
		api.WithDoer(client),
		api.WithLogger(log.Component("api")),
	), nil
}

// storedUser restores the login kept in the keyring.
func storedUser(s *api.Session) (*user.User, error) {
	credentials, err := auth.LoadCredentials()
	if errors.Is(err, auth.ErrNotFound) || (err == nil && credentials.Token == "") {
		return nil, errNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	return user.Restore(s, credentials.UID, credentials.Avatar, credentials.Token), nil
}

// session returns the session commands run with. It carries the stored login, if any.
func session() *api.Session {
	s, err := newSession()
	handleErr(err)

	u, err := storedUser(s)
	if err != nil {
		if !errors.Is(err, errNotLoggedIn) {
			log.Warn(err)
		}
		return s
	}

	return lo.Must(u.Session())
}
