package cmd

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func init() {
	Register(&cli.Command{
		Name:  "media",
		Usage: "Retrieve, upload and delete media assets",
		Subcommands: []*cli.Command{
			{
				Name:      "url",
				Usage:     "Resolve a media ID to its temporary URL",
				ArgsUsage: "<media-id>",
				Action:    mediaURL,
			},
			{
				Name:      "get",
				Usage:     "Download a media file",
				ArgsUsage: "<media-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output `file`; derived from the media when omitted",
					},
				},
				Action: mediaGet,
			},
			{
				Name:      "upload",
				Usage:     "Upload a media file; prints the media ID",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "media MIME `type`; derived from the file extension when omitted",
					},
				},
				Action: mediaUpload,
			},
			{
				Name:      "delete",
				Usage:     "Delete an uploaded media asset",
				ArgsUsage: "<media-id>",
				Action:    mediaDelete,
			},
		},
	})
}

func mediaURL(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}
	media, err := client.GetMediaURL(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Println("id:       ", media.ID)
	fmt.Println("mime_type:", media.MIMEType)
	fmt.Println("sha256:   ", media.SHA256)
	fmt.Println("file_size:", int64(media.FileSize))
	fmt.Println("url:      ", media.URL, "(valid ~5 minutes)")
	return nil
}

func mediaGet(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}

	doc, err := client.DownloadMedia(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer doc.Body.Close()

	filename := c.String("output")
	if filename == "" {
		filename = doc.Filename
	}
	if filename == "" {
		filename = doc.ID
		if ext, _ := mime.ExtensionsByType(doc.ContentType); len(ext) != 0 {
			filename += ext[len(ext)-1]
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	n, err := io.Copy(file, doc.Body)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d bytes)\n", filename, n)
	return nil
}

func mediaUpload(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}

	filename := c.Args().Get(0)
	mediaType := c.String("type")
	if mediaType == "" {
		mediaType = mime.TypeByExtension(filepath.Ext(filename))
	}

	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	mediaID, err := client.UploadMedia(
		c.Context, mediaType, filepath.Base(filename), file,
	)
	if err != nil {
		return err
	}

	fmt.Println(mediaID)
	return nil
}

func mediaDelete(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.ShowSubcommandHelp(c)
	}
	client, _, err := newClient(c)
	if err != nil {
		return err
	}
	return client.DeleteMedia(c.Context, c.Args().Get(0))
}
