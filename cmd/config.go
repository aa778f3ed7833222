package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/webmux/wacloud/config"
)

func init() {
	Register(&cli.Command{
		Name:  "config",
		Usage: "Manage the encrypted credentials profile",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create or replace the profile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Usage:    "System User access `token`",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "phone-number",
						Usage:    "business phone number `id`",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "waba",
						Usage: "WhatsApp Business Account `id`",
					},
					&cli.StringFlag{
						Name:  "app-secret",
						Usage: "Meta App `secret`; signs webhook payloads",
					},
					&cli.StringFlag{
						Name:  "verify-token",
						Usage: "webhook subscription verify `token`",
					},
					&cli.StringFlag{
						Name:  "version",
						Usage: "Graph API `version`",
					},
				},
				Action: configInit,
			},
			{
				Name:   "show",
				Usage:  "Print the profile; secrets redacted",
				Action: configShow,
			},
		},
	})
}

func configInit(c *cli.Context) error {

	passphrase := c.String("passphrase")
	if passphrase == "" {
		return errors.New("passphrase required; set --passphrase or WACLOUD_PASSPHRASE")
	}

	path, err := profilePath(c)
	if err != nil {
		return err
	}

	profile := &config.Profile{
		Version:           c.String("version"),
		PhoneNumberID:     c.String("phone-number"),
		BusinessAccountID: c.String("waba"),
		AccessToken:       c.String("token"),
		AppSecret:         c.String("app-secret"),
		VerifyToken:       c.String("verify-token"),
	}

	if err = config.Save(path, passphrase, profile); err != nil {
		return err
	}

	fmt.Println("profile saved:", path)
	return nil
}

func configShow(c *cli.Context) error {

	profile, err := loadProfile(c)
	if err != nil {
		return err
	}

	redact := func(s string) string {
		if s == "" {
			return "(unset)"
		}
		if len(s) <= 8 {
			return "********"
		}
		return s[:4] + "..." + s[len(s)-4:]
	}

	fmt.Println("version:         ", profile.Version)
	fmt.Println("phone_number_id: ", profile.PhoneNumberID)
	fmt.Println("waba_id:         ", profile.BusinessAccountID)
	fmt.Println("access_token:    ", redact(profile.AccessToken))
	fmt.Println("app_secret:      ", redact(profile.AppSecret))
	fmt.Println("verify_token:    ", redact(profile.VerifyToken))
	return nil
}
