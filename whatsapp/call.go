package whatsapp

// Call event notification delivered within the value object
// when a customer places or terminates a WhatsApp call to the business.
// https://developers.facebook.com/docs/whatsapp/cloud-api/calling
type Call struct {

	// The ID for the call. Prefixed with "wacid.".
	ID string `json:"id,omitempty"`

	// The customer's phone number who placed the call.
	From string `json:"from,omitempty"`

	// The business phone number that received the call.
	TO string `json:"to,omitempty"`

	// The call lifecycle event. One of:
	// – connect; The call has been initiated
	// – terminate; The call has ended
	Event string `json:"event,omitempty"`

	// Whether the call was placed by the business or the customer.
	// One of BUSINESS_INITIATED, USER_INITIATED.
	Direction string `json:"direction,omitempty"`

	// The time when the call event occurred.
	Date *Timestamp `json:"timestamp,omitempty"`

	// Call state for terminate events; e.g. "completed", "missed".
	Status string `json:"status,omitempty"`

	// Call length in seconds. Present on terminate of completed calls.
	Duration int `json:"duration,omitempty"`

	// Session description for the call media offer, when present.
	Session *CallSession `json:"session,omitempty"`
}

// CallSession carries the SDP payload exchanged on call connect.
type CallSession struct {
	// The session description type; "offer" or "answer".
	Type string `json:"sdp_type,omitempty"`
	// RFC 8866 session description protocol body.
	SDP string `json:"sdp,omitempty"`
}
