package whatsapp

// StatusText is the delivery state of a sent message.
type StatusText string

const (
	// A business sends a message to a customer.
	StatusSent = StatusText("sent")
	// A message sent by a business has been delivered.
	StatusDelivered = StatusText("delivered")
	// A message sent by a business has been read.
	StatusRead = StatusText("read")
	// A message sent by a business could not be delivered.
	StatusFailed = StatusText("failed")
)

// The statuses object is nested within the value object and is triggered when
// a message is sent or delivered to a customer or the customer reads the
// delivered message sent by a business that is subscribed to the Webhooks.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#statuses-object
type Status struct {

	// The ID for the message that the business sent to a customer.
	MessageID string `json:"id,omitempty"`

	// The WhatsApp ID for the customer the business sent the message to.
	RecipientID string `json:"recipient_id,omitempty"`

	// * sent; A business sent the message to a customer
	// * delivered; The message has been delivered
	// * read; The message has been read
	// * failed; The message could not be delivered
	Status StatusText `json:"status,omitempty"`

	// Date for the status message.
	Date *Timestamp `json:"timestamp,omitempty"`

	// Information about the conversation the status notification belongs to.
	Conversation *Conversation `json:"conversation,omitempty"`

	// An object containing billing information.
	Pricing *Pricing `json:"pricing,omitempty"`

	// An array of error objects describing the delivery failure(s).
	// Present when status is failed.
	Errors []*MessageError `json:"errors,omitempty"`
}

// Pricing is the billing information.
type Pricing struct {

	// Indicates if the given message or conversation is billable.
	//
	// Deprecated. Visit the WhatsApp Changelog for more information.
	// https://developers.facebook.com/docs/whatsapp/business-platform/changelog
	Billable bool `json:"billable,omitempty"`

	// The conversation pricing category.
	Category OriginType `json:"category,omitempty"`

	// Type of pricing model used by the business.
	// Current supported value is "CBP".
	Model string `json:"pricing_model,omitempty"`
}
