package cloud

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNoMediaLink indicates the platform resolved the media ID
// but returned no temporary download URL for it.
var ErrNoMediaLink = errors.New("whatsapp: media download link is missing")

// MediaError indicates the media endpoint refused a request.
// Typically the temporary URL has expired; retrieve a fresh one.
type MediaError struct {
	// ID of the media asset requested.
	MediaID string
	// HTTP status code of the refusal.
	StatusCode int
	// HTTP status line, e.g. "404 Not Found".
	Status string
	// Cause carries the Graph error envelope, if the platform sent one.
	Cause error
}

// NetworkError indicates a transport-level failure:
// unreachable host, connection reset, cancellation, timeout.
type NetworkError struct {
	// Op names the failed operation.
	Op string
	// Cause of the failure.
	Cause error
}

func (err *NetworkError) Error() string {
	return "whatsapp: " + err.Op + ": " + err.Cause.Error()
}

func (err *NetworkError) Unwrap() error {
	return err.Cause
}

func (err *MediaError) Error() string {
	text := "whatsapp: media"
	if err.MediaID != "" {
		text += " " + err.MediaID
	}
	text += "; refused: (" + strconv.Itoa(err.StatusCode) + ")"
	if err.Status != "" {
		text += " " + err.Status
	}
	if err.Cause != nil {
		text += "; " + err.Cause.Error()
	}
	return text
}

func (err *MediaError) Unwrap() error {
	return err.Cause
}
