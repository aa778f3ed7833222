package cloud

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/webmux/wacloud/graph"
	"github.com/webmux/wacloud/whatsapp"
)

// MediaResult describes a media asset resolved by its ID.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#retrieve-media-url
type MediaResult struct {
	// The media object ID.
	ID string `json:"id,omitempty"`
	// Temporary download URL.
	// Valid for 5 minutes; never cache it.
	URL string `json:"url,omitempty"`
	// MIME type of the media file.
	MIMEType string `json:"mime_type,omitempty"`
	// SHA-256 hash of the media file, hex-encoded.
	SHA256 string `json:"sha256,omitempty"`
	// Size of the media file in bytes.
	// The platform serves it as either a number or a quoted string.
	FileSize whatsapp.FileSize `json:"file_size,omitempty"`
	// Set to "whatsapp".
	Product string `json:"messaging_product,omitempty"`
}

// MediaContent is an open media download stream.
type MediaContent struct {
	// Resolved media asset details.
	*MediaResult
	// Content-Type as served.
	ContentType string
	// Content-Length as served; -1 if unknown.
	ContentLength int64
	// Filename from Content-Disposition, if any.
	Filename string
	// Body stream of the media file content.
	// The caller is responsible to Close it.
	Body io.ReadCloser
}

// GetMediaURL resolves mediaID to a temporary download URL
// along with the file's MIME type, hash and size.
//
// The URL is valid for 5 minutes from issuance; it is resolved
// fresh on every call and must not be persisted.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#retrieve-media-url
func (c *Client) GetMediaURL(ctx context.Context, mediaID string) (*MediaResult, error) {

	if mediaID == "" {
		return nil, errors.New("whatsapp: media.id required but missing")
	}

	uri := c.BaseURL + path.Join("/", c.Version, mediaID)
	if oid := c.PhoneNumberID; oid != "" {
		// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#parameters-2
		uri += "?phone_number_id=" + url.QueryEscape(oid)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, uri, nil,
	)
	if err != nil {
		return nil, err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "retrieve media url", Cause: err}
	}
	defer res.Body.Close()

	rpc := struct {
		Error *graph.Error `json:"error,omitempty"`
		*MediaResult
	}{
		MediaResult: &MediaResult{ID: mediaID},
	}

	err = json.NewDecoder(res.Body).Decode(&rpc)
	if res.StatusCode != http.StatusOK {
		re := &MediaError{
			MediaID:    mediaID,
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
		if err == nil && rpc.Error != nil {
			// keep the Graph error detail within the refusal
			re.Cause = rpc.Error
		}
		return nil, re
	}
	if err != nil {
		return nil, err
	}
	if rpc.Error != nil {
		return nil, rpc.Error
	}

	return rpc.MediaResult, nil
}

// DownloadMedia resolves mediaID to its temporary URL and opens
// a download stream for the file content. Both steps run fresh
// on every call. The caller is responsible to Close the result Body.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#download-media
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) (*MediaContent, error) {

	media, err := c.GetMediaURL(ctx, mediaID)
	if err != nil {
		return nil, err
	}
	if media.URL == "" {
		return nil, ErrNoMediaLink
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, media.URL, nil,
	)
	if err != nil {
		return nil, err
	}

	res, err := c.mediaClient().Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "download media", Cause: err}
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, &MediaError{
			MediaID:    mediaID,
			StatusCode: res.StatusCode,
			Status:     res.Status,
		}
	}

	doc := &MediaContent{
		MediaResult:   media,
		ContentType:   media.MIMEType,
		ContentLength: res.ContentLength,
		Body:          res.Body,
	}

	// Content-Type
	if mediaType := res.Header.Get("Content-Type"); mediaType != "" {
		// Split: mediatype/subtype[;opt=param]
		if mediaType, _, re := mime.ParseMediaType(mediaType); re == nil {
			doc.ContentType = mediaType
		}
	}
	// Content-Disposition
	if disposition := res.Header.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if filename := params["filename"]; filename != "" {
				// RFC 7578, Section 4.2 requires that if a filename is provided, the
				// directory path information must not be used.
				switch filename = filepath.Base(filename); filename {
				case ".", string(filepath.Separator):
					// invalid
				default:
					doc.Filename = filename
				}
			}
		}
	}

	return doc, nil
}

// GetMediaBytes downloads the whole media file content into memory.
// Use DownloadMedia to stream large files instead.
func (c *Client) GetMediaBytes(ctx context.Context, mediaID string) ([]byte, *MediaResult, error) {

	doc, err := c.DownloadMedia(ctx, mediaID)
	if err != nil {
		return nil, nil, err
	}
	defer doc.Body.Close()

	data, err := io.ReadAll(doc.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "whatsapp: download media")
	}

	return data, doc.MediaResult, nil
}

// DeleteMedia removes an uploaded media asset by its ID.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/media#delete-media
func (c *Client) DeleteMedia(ctx context.Context, mediaID string) error {

	if mediaID == "" {
		return errors.New("whatsapp: media.id required but missing")
	}

	uri := c.BaseURL + path.Join("/", c.Version, mediaID)
	if oid := c.PhoneNumberID; oid != "" {
		uri += "?phone_number_id=" + url.QueryEscape(oid)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, uri, nil,
	)
	if err != nil {
		return err
	}

	res, err := c.Client.Do(req)
	if err != nil {
		return errors.Wrap(err, "whatsapp: delete media")
	}
	defer res.Body.Close()

	var ret struct {
		Error   *graph.Error `json:"error,omitempty"`
		Success bool         `json:"success,omitempty"`
	}

	err = json.NewDecoder(res.Body).Decode(&ret)
	if err == nil && ret.Error != nil {
		err = ret.Error
	}
	return err
}
