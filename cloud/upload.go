package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/webmux/wacloud/graph"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// UploadMedia uploads the file content to the business phone number's
// media endpoint and returns the assigned media ID, to be referenced
// in outbound media messages.
//
// mediaType must be one of the types the platform accepts for upload;
// filename is optional and gets a generated name when empty.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#upload-media
func (c *Client) UploadMedia(ctx context.Context, mediaType, filename string, content io.Reader) (mediaID string, err error) {

	if c.PhoneNumberID == "" {
		return "", errors.New("whatsapp: sender phone_number_id required but missing")
	}
	if mediaType == "" {
		return "", errors.New("whatsapp: media content type required but missing")
	}

	if filename == "" {
		filename = uuid.NewString()
		if ext, _ := mime.ExtensionsByType(mediaType); len(ext) != 0 {
			filename += ext[len(ext)-1]
		}
	}

	var (
		formReader, formWriter = io.Pipe()
		formData               = multipart.NewWriter(formWriter)
	)

	// ASYNC Drain Media source
	go func() {

		defer formWriter.Close()
		defer formData.Close()

		err := formData.WriteField("messaging_product", "whatsapp")
		if err != nil {
			formWriter.CloseWithError(err)
			return
		}

		err = formData.WriteField("type", mediaType)
		if err != nil {
			formWriter.CloseWithError(err)
			return
		}

		fieldname := "file"
		fileHeader := make(textproto.MIMEHeader, 2)
		fileHeader.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
				escapeQuotes(fieldname), escapeQuotes(filename)),
		)
		fileHeader.Set("Content-Type", mediaType)
		fileData, err := formData.CreatePart(fileHeader)
		if err != nil {
			formWriter.CloseWithError(err)
			return
		}
		// Proxy Media content source ...
		_, err = io.Copy(fileData, content)
		if err != nil {
			formWriter.CloseWithError(err)
			return
		}
	}()

	// AWAIT Proxy Media source
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.BaseURL+path.Join("/", c.Version, c.PhoneNumberID, "media"),
		formReader,
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", formData.FormDataContentType())

	res, err := c.mediaClient().Do(req)
	if err != nil {
		return "", errors.Wrap(err, "whatsapp: upload media")
	}
	defer res.Body.Close()

	var rpc struct {
		Error *graph.Error `json:"error,omitempty"`
		// Uploaded Media {id}
		ID string `json:"id,omitempty"`
	}

	err = json.NewDecoder(res.Body).Decode(&rpc)
	if err == nil && rpc.Error != nil {
		err = rpc.Error
	}
	if err != nil {
		return "", err
	}

	return rpc.ID, nil
}
