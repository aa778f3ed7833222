package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"
)

var app = &cli.App{
	Name:    "wacloud",
	Usage:   "WhatsApp Business Cloud API toolkit",
	Version: Version(),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "console log `level` (trace, debug, info, warn, error)",
			Value:   "info",
			EnvVars: []string{"WACLOUD_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable console colors",
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "encrypted profile `file` path",
			EnvVars: []string{"WACLOUD_PROFILE"},
		},
		&cli.StringFlag{
			Name:    "passphrase",
			Usage:   "profile encryption passphrase",
			EnvVars: []string{"WACLOUD_PASSPHRASE"},
		},
		&cli.StringFlag{
			Name:    "access-token",
			Usage:   "System User access `token`; overrides the profile",
			EnvVars: []string{"WACLOUD_ACCESS_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "phone-number-id",
			Usage:   "business phone number `id`; overrides the profile",
			EnvVars: []string{"WACLOUD_PHONE_NUMBER_ID"},
		},
		&cli.StringFlag{
			Name:    "api-version",
			Usage:   "Graph API `version`; overrides the profile",
			EnvVars: []string{"WACLOUD_API_VERSION"},
		},
	},
}

// Register CLI commands
func Register(cmds ...*cli.Command) {
	app.Commands = append(app.Commands, cmds...)

	// sort the commands so they're listed in order on the cli
	sort.Slice(app.Commands, func(i, j int) bool {
		return app.Commands[i].Name < app.Commands[j].Name
	})
}

// Run the application
func Run() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
