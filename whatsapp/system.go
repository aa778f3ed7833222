package whatsapp

// When messages type is set to system, a customer has updated
// their phone number or profile information,
// this object is included in the messages object.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type System struct {

	// Describes the change to the customer's identity or phone number.
	Body string `json:"body,omitempty"`

	// Hash for the identity fetched from server.
	Identity string `json:"identity,omitempty"`

	// New WhatsApp ID for the customer when their phone number is updated.
	// Available on webhook versions v12 and above.
	WAID string `json:"wa_id,omitempty"`

	// New WhatsApp ID for the customer when their phone number is updated.
	// Available on webhook versions v11 and below.
	NewWAID string `json:"new_wa_id,omitempty"`

	// Type of system update. Will be one of the following:
	//
	// – customer_changed_number; A customer changed their phone number
	// – customer_identity_changed; A customer changed their profile information
	//
	Type string `json:"type,omitempty"`

	// The WhatsApp ID for the customer prior to the update.
	Customer string `json:"customer,omitempty"`
}
