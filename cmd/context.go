package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/webmux/wacloud/cloud"
	"github.com/webmux/wacloud/config"
	"github.com/webmux/wacloud/log"
)

// console builds the CLI logger from global flags.
func console(c *cli.Context) (*zerolog.Logger, error) {
	color := !c.Bool("no-color") &&
		isatty.IsTerminal(os.Stdout.Fd())
	return log.Console(c.String("log-level"), color)
}

// profilePath resolves the profile file location.
func profilePath(c *cli.Context) (string, error) {
	if path := c.String("profile"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

// loadProfile decrypts the stored profile.
func loadProfile(c *cli.Context) (*config.Profile, error) {
	path, err := profilePath(c)
	if err != nil {
		return nil, err
	}
	passphrase := c.String("passphrase")
	if passphrase == "" {
		return nil, errors.New("passphrase required; set --passphrase or WACLOUD_PASSPHRASE")
	}
	return config.Load(path, passphrase)
}

// newClient builds the Cloud API client from flags,
// falling back to the stored profile for missing credentials.
func newClient(c *cli.Context) (*cloud.Client, *config.Profile, error) {

	log, err := console(c)
	if err != nil {
		return nil, nil, err
	}

	var (
		accessToken   = c.String("access-token")
		phoneNumberID = c.String("phone-number-id")
		apiVersion    = c.String("api-version")
		profile       *config.Profile
	)

	if accessToken == "" || phoneNumberID == "" {
		profile, err = loadProfile(c)
		if err != nil {
			return nil, nil, err
		}
		if accessToken == "" {
			accessToken = profile.AccessToken
		}
		if phoneNumberID == "" {
			phoneNumberID = profile.PhoneNumberID
		}
		if apiVersion == "" {
			apiVersion = profile.Version
		}
	}

	if accessToken == "" {
		return nil, nil, errors.New("access token required; run `wacloud config init` or set --access-token")
	}

	opts := []cloud.Option{
		cloud.WithPhoneNumberID(phoneNumberID),
		cloud.WithLogger(*log),
	}
	if apiVersion != "" {
		opts = append(opts, cloud.WithVersion(apiVersion))
	}

	return cloud.New(accessToken, opts...), profile, nil
}
