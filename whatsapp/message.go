package whatsapp

import "time"

// Kind of an incoming message, discriminated by its "type" tag.
type MessageKind string

const (
	KindText        MessageKind = "text"
	KindImage       MessageKind = "image"
	KindAudio       MessageKind = "audio"
	KindVideo       MessageKind = "video"
	KindDocument    MessageKind = "document"
	KindSticker     MessageKind = "sticker"
	KindLocation    MessageKind = "location"
	KindContacts    MessageKind = "contacts"
	KindInteractive MessageKind = "interactive"
	KindReaction    MessageKind = "reaction"
	KindButton      MessageKind = "button"
	KindOrder       MessageKind = "order"
	KindSystem      MessageKind = "system"
	KindReferral    MessageKind = "referral"
	// Any tag not recognized above, including
	// kinds introduced by the platform later on.
	KindUnsupported MessageKind = "unsupported"
)

// messageKinds indexes the recognized "type" tags.
var messageKinds = map[string]MessageKind{
	"text":        KindText,
	"image":       KindImage,
	"audio":       KindAudio,
	"video":       KindVideo,
	"document":    KindDocument,
	"sticker":     KindSticker,
	"location":    KindLocation,
	"contacts":    KindContacts,
	"interactive": KindInteractive,
	"reaction":    KindReaction,
	"button":      KindButton,
	"order":       KindOrder,
	"system":      KindSystem,
	"referral":    KindReferral,
}

// The messages array of objects is nested within the value object and is triggered when a customer updates their profile information
// or a customer sends a message to the business that is subscribed to the webhook.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type Message struct {

	// The ID for the message that was received by the business.
	// You could use messages endpoint to mark this specific message as read.
	ID string `json:"id,omitempty"`

	// The time when the WhatsApp server received the message from the customer.
	Date *Timestamp `json:"timestamp,omitempty"`

	// The customer's phone number who sent the message to the business.
	From string `json:"from,omitempty"`

	// The type of message that has been received by the business that has subscribed to Webhooks.
	// Possible value can be one of the following:
	//
	// – audio
	// – button
	// – contacts
	// – document
	// – text
	// – image
	// – interactive
	// – location
	// – order
	// – referral
	// – sticker
	// – system – for customer number change messages
	// – video
	// – reaction
	// – unknown
	//
	Type string `json:"type,omitempty"`

	// When messages type is set to text, this object is included.
	// This object includes the following field:
	//
	// – body; The text of the message.
	//
	Text *Text `json:"text,omitempty"`

	// When messages type is set to image,
	// this object is included in the messages object.
	//
	// – caption; Caption for the image, if provided
	// – sha256; Image hash
	// – id; ID for the image
	// – mime_type; Mime type for the image
	//
	Image *Image `json:"image,omitempty"`

	// When messages type is set to sticker,
	// this object is included in the messages object.
	//
	// – mime_type; image/webp
	// – sha256; Hash for the sticker
	// – id; ID for the sticker
	// – animated; Set to true if the sticker is animated; false otherwise.
	//
	Sticker *Sticker `json:"sticker,omitempty"`

	// When the messages type is set to audio, including voice messages,
	// this object is included in the messages object:
	//
	// – id; ID for the audio file
	// – mime_type; Mime type of the audio file
	// – voice; Set to true if it is a voice note recording
	//
	Audio *Audio `json:"audio,omitempty"`

	// When messages type is set to video,
	// this object is included in messages object.
	//
	// – caption; The caption for the video, if provided
	// – filename; The name for the file on the sender's device
	// – sha256; The hash for the video
	// – id; The ID for the video
	// – mime_type; The mime type for the video file
	Video *Video `json:"video,omitempty"`

	// When messages type is set to document,
	// this object is included in the messages object.
	//
	// – caption; Caption for the document, if provided
	// – filename; Name for the file on the sender's device
	// – sha256; Hash
	// – mime_type; Mime type of the document file
	// – id; ID for the document
	//
	Document *Document `json:"document,omitempty"`

	// Reaction message you received from a customer.
	// You will not receive this webbook if the message the customer is reacting to is more than 30 days old.
	Reaction *Reaction `json:"reaction,omitempty"`

	// When the messages type field is set to button,
	// this object is included in the messages object:
	//
	// – payload; The payload for a button set up by the business that a customer clicked as part of an interactive message
	// – text; Button text
	//
	Button *Postback `json:"button,omitempty"`

	// Included in the messages object when a user replies or interacts with one of your messages.
	// The context object can contain the following fields:
	//
	// – forwarded; Set to true if the message received by the business has been forwarded
	// – frequently_forwarded; Set to true if the message received by the business has been forwarded more than 5 times.
	// – from; The WhatsApp ID for the customer who replied to an inbound message
	// – id; The message ID for the sent message for an inbound reply
	// – referred_product; Required for Product Enquiry Messages.
	//
	Context *Context `json:"context,omitempty"`

	// A webhook is triggered when a customer's phone number or profile information has been updated.
	// See messages system identity
	//
	// – acknowledged; State of acknowledgment for the messages system customer_identity_changed
	// – created_timestamp; The time when the WhatsApp Business Management API detected the customer may have changed their profile information
	// – hash; The ID for the messages system customer_identity_changed
	//
	Identity any `json:"identity,omitempty"`

	// When a customer has interacted with your message,
	// this object is included in the messages object.
	Interactive *Interactive `json:"interactive,omitempty"`

	// Included in the messages object when a customer has placed an order.
	Order *Order `json:"order,omitempty"`

	// A customer clicked an ad that redirects them to WhatsApp,
	// this object is included in the messages object.
	Referral *Referral `json:"referral,omitempty"`

	// When messages type is set to system, a customer has updated
	// their phone number or profile information,
	// this object is included in the messages object.
	System *System `json:"system,omitempty"`

	// The message that a business received from a customer is not a supported type.
	Errors []*MessageError `json:"errors,omitempty"`

	// Contacts shared by customer.
	Contacts []*Contact `json:"contacts,omitempty"`

	// Location GeoPoint shared by customer.
	Location *Location `json:"location,omitempty"`
}

// Kind discriminates the message by its "type" tag.
// Any unrecognized tag, the empty string included,
// resolves to KindUnsupported; never panics.
func (m *Message) Kind() MessageKind {
	if kind, ok := messageKinds[m.Type]; ok {
		return kind
	}
	return KindUnsupported
}

// IsMedia reports whether the message carries
// a downloadable media attachment. True exactly
// when MediaID resolves an attachment ID.
func (m *Message) IsMedia() bool {
	_, is := m.MediaID()
	return is
}

// MediaID returns the attached media object ID
// and reports whether the message has one.
func (m *Message) MediaID() (id string, ok bool) {
	switch m.Kind() {
	case KindImage:
		if m.Image != nil {
			return m.Image.ID, true
		}
	case KindAudio:
		if m.Audio != nil {
			return m.Audio.ID, true
		}
	case KindVideo:
		if m.Video != nil {
			return m.Video.ID, true
		}
	case KindDocument:
		if m.Document != nil {
			return m.Document.ID, true
		}
	case KindSticker:
		if m.Sticker != nil {
			return m.Sticker.ID, true
		}
	}
	return "", false
}

// Time when the WhatsApp server received
// the message from the customer.
func (m *Message) Time() time.Time {
	return m.Date.Time()
}

// Included in the messages object when a user replies or interacts with one of your messages.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type Context struct {
	// The message ID for the sent message for an inbound reply
	MID string `json:"id,omitempty"`
	// The WhatsApp ID for the customer who replied to an inbound message
	From string `json:"from,omitempty"`
	// Set to true if the message received by the business has been forwarded
	Forwarded bool `json:"forwarded,omitempty"`
	// Set to true if the message received by the business has been forwarded more than 5 times.
	FrequentlyForwarded bool `json:"frequently_forwarded,omitempty"`
	// Required for Product Enquiry Messages. The product the user is requesting information about.
	ReferredProduct *struct {
		// Unique identifier of the Meta catalog linked to the WhatsApp Business Account
		CatalogID string `json:"catalog_id,omitempty"`
		// Unique identifier of the product in a catalog
		ProductRetailerID string `json:"product_retailer_id,omitempty"`
	} `json:"referred_product,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#text-object
type Text struct {

	// Required for text messages.
	//
	// The text of the text message which can contain URLs which begin with http:// or https:// and formatting.
	// See available formatting options https://developers.facebook.com/docs/whatsapp/on-premises/reference/messages#formatting.
	//
	// Maximum length: 4096 characters
	//
	Body string `json:"body"`

	// Optional. By default, WhatsApp recognizes URLs and makes them clickable,
	// but you can also include a preview box with more information about the link.
	// Set this field to true if you want to include a URL preview box.
	//
	// Default: false.
	//
	PreviewURL bool `json:"preview_url,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#location-object
type Location struct {

	// REQUIRED.
	// Longitude of the location.
	Longitude float64 `json:"longitude"`

	// REQUIRED.
	// Latitude of the location.
	Latitude float64 `json:"latitude"`

	// OPTIONAL.
	// Name of the location.
	Name string `json:"name,omitempty"`

	// OPTIONAL.
	// Address of the location.
	// Only displayed if name is present.
	Address string `json:"address,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#reaction-object
type Reaction struct {

	// REQUIRED.
	// The WhatsApp Message ID (wamid) of the message on which the reaction should appear.
	// The reaction will not be sent if:
	//
	// * The message is older than 30 days
	// * The message is a reaction message
	// * The message has been deleted
	WAMID string `json:"message_id"`

	// REQUIRED.
	// Emoji to appear on the message.
	//
	// Only one emoji can be sent in a reaction message.
	// Use an empty string to remove a previously sent emoji.
	Emoji string `json:"emoji"`
}

// QuickReply Button
type Postback struct {
	// Button text
	Text string `json:"text"`
	// The payload for a button set up by the business that a customer clicked as part of an interactive message
	Data string `json:"payload"`
}
