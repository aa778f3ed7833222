package whatsapp

import "fmt"

// ErrorData describes the error.
type ErrorData struct {
	// Describes the error. Example:
	// -----------------------------
	// Message failed to send because there were too many messages
	// sent from this phone number in a short period of time.
	Details string `json:"details"`
}

// MessageError is the error information when a message failed.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#value-object
type MessageError struct {

	// Error code.
	// Build your app's error handling around error codes
	// instead of subcodes or HTTP response status codes.
	Code int `json:"code"`

	// Combination of the error code and its title.
	Title string `json:"title,omitempty"`

	// Error code message. This value is the same as the title value.
	// For example: Rate limit hit.
	Message string `json:"message,omitempty"`

	// An error data object.
	*ErrorData `json:"error_data,omitempty"`
}

func (e *MessageError) IsCode(code int) (is bool) {
	if e != nil {
		is = (e.Code == code)
	}
	return // is
}

func (e *MessageError) Error() string {
	if e == nil {
		return "!ERR<nil>"
	}
	err := fmt.Sprintf("(#%d) %s", e.Code, e.Title)
	more := e.ErrorData
	if more != nil && more.Details != "" {
		err += "; " + more.Details
	}
	return err
}
