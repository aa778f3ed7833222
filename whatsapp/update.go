package whatsapp

// Update is the change value that triggered the webhook.
// This object is nested within the changes array of the entry array.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#value-object
type Update struct {

	// The [W]hats[A]pp [B]usiness [A]ccount ID.
	// Populated from entry.id; never present on the wire itself.
	ID string `json:"-"`

	// The value is "whatsapp".
	Product string `json:"messaging_product,omitempty"`

	// Metadata for the business phone number that is subscribed to the webhook.
	Metadata *Metadata `json:"metadata,omitempty"`

	// Array of contacts objects with information for the customer
	// who sent a message to the business.
	Contacts []*Sender `json:"contacts,omitempty"`

	// Information about message(s) received by the business.
	Messages []*Message `json:"messages,omitempty"`

	// Call event notification(s) delivered to the business.
	// https://developers.facebook.com/docs/whatsapp/cloud-api/calling
	Calls []*Call `json:"calls,omitempty"`

	// Status for a message that was sent by the business.
	Statuses []*Status `json:"statuses,omitempty"`

	// Array of error objects with information received when a message failed.
	Errors []*MessageError `json:"errors,omitempty"`
}

// GetContact finds the contact record for the given customer WhatsApp ID.
func (e *Update) GetContact(waid string) *Sender {
	if e != nil {
		for _, sender := range e.Contacts {
			if sender.WAID == waid {
				return sender
			}
		}
	}
	return nil
}

// Metadata for the business that is subscribed to the webhook.
type Metadata struct {
	// The phone number that is displayed for a business.
	DisplayPhoneNumber string `json:"display_phone_number"`
	// ID for the phone number. A business can respond to a message using this ID.
	PhoneNumberID string `json:"phone_number_id"`
}
