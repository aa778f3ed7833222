package whatsapp

import (
	"bytes"
	"strconv"
)

// Media reference for outbound message content.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#media-object
type Media struct {

	// The media object ID.
	// Required when type is one of audio, document, image, sticker, video
	// and you are not using a link.
	ID string `json:"id,omitempty"`

	// The protocol and URL of the media to be sent.
	// Use only with HTTP/HTTPS URLs, when you are not using an uploaded media ID.
	Link string `json:"link,omitempty"`

	// Optional. Describes the specified image, document, or video media.
	// Do not use with audio or sticker media.
	Caption string `json:"caption,omitempty"`

	// Optional. Describes the filename for the specific document.
	// Use only with document media.
	Filename string `json:"filename,omitempty"`
}

// FileSize is the media content byte length.
// The Cloud API emits it as a JSON number on media nodes
// but as a string on some webhook payload versions; accept both.
type FileSize int64

func (n *FileSize) Int64() int64 {
	if n == nil {
		return 0
	}
	return (int64)(*n)
}

func (n *FileSize) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	size, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*(n) = FileSize(size)
	return nil
}

// Document media received by the business.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type Document struct {
	// Media Document
	Media

	// Document file hash.
	SHA256 string `json:"sha256,omitempty"`

	// MIME type of the media file.
	MIMEType string `json:"mime_type,omitempty"`

	// Size of the Media Document.
	FileSize FileSize `json:"file_size,omitempty"`
}

type Image struct {
	// Image Media Document
	Document
}

type Sticker struct {
	// Sticker Media Document
	Image

	// Set to true if the sticker is animated; false otherwise.
	Animated bool `json:"animated,omitempty"`
}

type Audio struct {
	// Audio Media Document
	Document

	// Set to true for push-to-talk voice notes; false for audio files.
	Voice bool `json:"voice,omitempty"`
}

type Video struct {
	// Video Media Document
	Document
}
