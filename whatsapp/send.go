package whatsapp

// SendMessage request
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages
type SendMessage struct {

	// Messaging service used for the request. Use "whatsapp".
	// REQUIRED.
	MessagingProduct string `json:"messaging_product,omitempty"`

	// Optional.
	// Currently, you can only send messages to individuals.
	// Set this as individual.
	//
	// Default: individual
	RecipientType string `json:"recipient_type,omitempty"`

	// A message's status.
	// You can use this field to mark a message as read.
	// See Mark Messages as Read.
	Status string `json:"status,omitempty"`

	// REQUIRED when status is "read".
	// The WhatsApp Message ID (wamid) of the incoming message
	// you want to mark as read.
	MessageID string `json:"message_id,omitempty"`

	// REQUIRED. WhatsApp ID or phone number
	// for the person you want to send a message to.
	// See Phone Numbers, Formatting for more information.
	TO string `json:"to,omitempty"`

	// The type of message you want to send.
	// Optional.	Default: text
	Type string `json:"type,omitempty"`

	// An object containing the ID of a previous message you are replying to. For example:
	// REQUIRED if replying to any message in the conversation.
	//
	// {"message_id":"MESSAGE_ID"}
	Context map[string]any `json:"context,omitempty"`

	// A text object.
	// REQUIRED for type=text messages.
	Text *Text `json:"text,omitempty"`

	// A reaction object.
	// REQUIRED when type=reaction.
	Reaction *Reaction `json:"reaction,omitempty"`

	// A media object containing an image.
	// REQUIRED when type=image.
	Image *Media `json:"image,omitempty"`

	// Required when type=sticker.
	//
	// A media object containing a sticker.
	// A static sticker needs to be 512x512 pixels and cannot exceed 100 KB.
	// An animated sticker must be 512x512 pixels and cannot exceed 500 KB.
	Sticker *Media `json:"sticker,omitempty"`

	// A media object containing audio.
	// REQUIRED when type=audio.
	Audio *Media `json:"audio,omitempty"`

	// A media object containing video.
	// REQUIRED when type=video.
	Video *Media `json:"video,omitempty"`

	// A media object containing a document.
	// REQUIRED when type=document.
	Document *Media `json:"document,omitempty"`

	// A location object.
	// REQUIRED when type=location.
	Location *Location `json:"location,omitempty"`

	// A template object.
	// REQUIRED when type=template.
	Template *Template `json:"template,omitempty"`

	// A contacts object.
	// REQUIRED when type=contacts.
	Contacts []*Contact `json:"contacts,omitempty"`

	// An interactive object.
	// The components of each interactive object generally follow
	// a consistent pattern: header, body, footer, and action.
	// REQUIRED when type=interactive.
	Interactive *Interactive `json:"interactive,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#template-object
type Template struct {

	// REQUIRED. Name of the template.
	Name string `json:"name"`

	// REQUIRED.
	// Contains a language object.
	// Specifies the language the template may be rendered in.
	Language *TemplateLanguage `json:"language,omitempty"`

	// OPTIONAL. Array of components objects containing the parameters of the message.
	Components []*TemplateComponent `json:"components,omitempty"`
}

type TemplateLanguage struct {
	// The language policy the message should follow.
	// The only supported option is deterministic.
	Policy string `json:"policy,omitempty"`
	// REQUIRED. The code of the language or locale to use.
	// Accepts both language and language_locale formats (e.g., en and en_US).
	Code string `json:"code"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#components-object
type TemplateComponent struct {
	// REQUIRED. header, body or button.
	Type string `json:"type"`
	// REQUIRED when type=button. quick_reply or url.
	SubType string `json:"sub_type,omitempty"`
	// REQUIRED when type=button.
	// Position index of the button. You can have up to 10 buttons using index values of 0 to 9.
	Index string `json:"index,omitempty"`
	// Array of parameter objects with the content of the message.
	Parameters []*TemplateParameter `json:"parameters,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#parameter-object
type TemplateParameter struct {
	// REQUIRED. Describes the parameter type:
	// text, currency, date_time, image, document, video or payload.
	Type string `json:"type"`
	// REQUIRED when type=text.
	Text string `json:"text,omitempty"`
	// REQUIRED when type=payload (quick_reply button).
	Payload string `json:"payload,omitempty"`
	// REQUIRED when type=image.
	Image *Media `json:"image,omitempty"`
	// REQUIRED when type=video.
	Video *Media `json:"video,omitempty"`
	// REQUIRED when type=document.
	Document *Media `json:"document,omitempty"`
	// REQUIRED when type=currency.
	Currency *TemplateCurrency `json:"currency,omitempty"`
	// REQUIRED when type=date_time.
	DateTime *TemplateDateTime `json:"date_time,omitempty"`
}

type TemplateCurrency struct {
	// Default text if localization fails.
	FallbackValue string `json:"fallback_value"`
	// Currency code as defined in ISO 4217.
	Code string `json:"code"`
	// Amount multiplied by 1000.
	Amount1000 int64 `json:"amount_1000"`
}

type TemplateDateTime struct {
	// Default text if localization fails.
	FallbackValue string `json:"fallback_value"`
}
