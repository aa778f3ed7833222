package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/webmux/wacloud/whatsapp"
)

func init() {
	Register(&cli.Command{
		Name:  "send",
		Usage: "Send a message to a WhatsApp ID",
		Subcommands: []*cli.Command{
			{
				Name:      "text",
				Usage:     "Send a plain text message",
				ArgsUsage: "<to> <text>",
				Action:    sendText,
			},
			{
				Name:      "template",
				Usage:     "Send a pre-approved message template",
				ArgsUsage: "<to> <name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "lang",
						Usage: "template language `code`",
						Value: "en_US",
					},
					&cli.StringSliceFlag{
						Name:  "param",
						Usage: "template body text parameter; repeatable",
					},
				},
				Action: sendTemplate,
			},
			{
				Name:      "reaction",
				Usage:     "React to a message; empty emoji removes",
				ArgsUsage: "<to> <wamid> [emoji]",
				Action:    sendReaction,
			},
			{
				Name:      "read",
				Usage:     "Mark an incoming message as read",
				ArgsUsage: "<wamid>",
				Action:    sendRead,
			},
		},
	})
}

func sendText(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}
	res, err := client.SendText(
		c.Context, c.Args().Get(0), c.Args().Get(1),
	)
	if err != nil {
		return err
	}
	fmt.Println(res.WAMID())
	return nil
}

func sendTemplate(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}

	template := &whatsapp.Template{
		Name: c.Args().Get(1),
		Language: &whatsapp.TemplateLanguage{
			Code: c.String("lang"),
		},
	}
	if params := c.StringSlice("param"); len(params) != 0 {
		body := &whatsapp.TemplateComponent{
			Type: "body",
		}
		for _, text := range params {
			body.Parameters = append(body.Parameters,
				&whatsapp.TemplateParameter{
					Type: "text",
					Text: text,
				},
			)
		}
		template.Components = []*whatsapp.TemplateComponent{body}
	}

	res, err := client.SendTemplate(
		c.Context, c.Args().Get(0), template,
	)
	if err != nil {
		return err
	}
	fmt.Println(res.WAMID())
	return nil
}

func sendReaction(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}
	res, err := client.SendReaction(
		c.Context, c.Args().Get(0), c.Args().Get(1), c.Args().Get(2),
	)
	if err != nil {
		return err
	}
	fmt.Println(res.WAMID())
	return nil
}

func sendRead(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}
	return client.MarkRead(c.Context, c.Args().Get(0))
}
