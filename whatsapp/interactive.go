package whatsapp

import "encoding/json"

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#interactive-object
type Interactive struct {

	// REQUIRED.
	// The `type` of interactive message. Supported values:
	//
	// – button;       Use it for Reply Buttons.
	// – list;         Use it for List Messages.
	// – product;      Use for Single Product Messages.
	// – product_list; Use for Multi-Product Messages.
	// – flow;         Use it for Flow Messages.
	//
	Type string `json:"type"`

	// ----- Update(RECV) Options -----

	QuickReply *Button `json:"button_reply,omitempty"`
	ListReply  *Button `json:"list_reply,omitempty"`

	// Response payload submitted from a completed Flow screen.
	NFMReply *NFMReply `json:"nfm_reply,omitempty"`

	// ----- Message(SEND) Options -----

	// REQUIRED.
	// Action you want the user
	// to perform after reading the message.
	Action *Action `json:"action,omitempty"`

	// REQUIRED for type `product_list`.
	// OPTIONAL for other types.
	//
	// Header content displayed on top of a message.
	// You cannot set a header if your interactive
	// object is of `product` type.
	Header *Header `json:"header,omitempty"`

	// OPTIONAL for type `product`.
	// REQUIRED for other message types.
	//
	// An object with the body of the message.
	//
	// – text (string)
	//   REQUIRED if body is present.
	//   Emojis and markdown are supported.
	//   Maximum length: 1024 characters.
	//
	Body *Content `json:"body,omitempty"`

	// OPTIONAL.
	// An object with the footer of the message.
	//
	// – text (string)
	//   REQUIRED if footer is present.
	//   Emojis, markdown, and links are supported.
	//   Maximum length: 60 characters.
	Footer *Content `json:"footer,omitempty"`
}

// NFMReply is the customer's submission of a Flow (Native Flow Message).
// https://developers.facebook.com/docs/whatsapp/flows/reference/responsemsgwebhook
type NFMReply struct {
	// Set to "flow".
	Name string `json:"name,omitempty"`
	// Fixed "Sent" body marker.
	Body string `json:"body,omitempty"`
	// Flow-specific data submitted by the customer, JSON-encoded.
	ResponseJSON json.RawMessage `json:"response_json,omitempty"`
}

// Content body
type Content struct {
	// Text of the content body.
	Text string `json:"text"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#action-object
type Action struct {

	// Required for List Messages.
	//
	// Button content.
	// It cannot be an empty string and must be unique within the message.
	// Emojis are supported, markdown is not.
	//
	// Maximum length: 20 characters.
	Button string `json:"button,omitempty"`

	// Required for Reply Buttons.
	//
	// You can have up to 3 buttons.
	// You cannot have leading or trailing spaces when setting the ID.
	Buttons []*QuickReply `json:"buttons,omitempty"`

	// Required for Single Product Messages and Multi-Product Messages.
	// Unique identifier of the Facebook catalog linked to your
	// WhatsApp Business Account.
	CatalogID string `json:"catalog_id,omitempty"`

	// Required for Single Product Messages and Multi-Product Messages.
	// Unique identifier of the product in a catalog.
	ProductRetailerID string `json:"product_retailer_id,omitempty"`

	// Required for List Messages and Multi-Product Messages.
	// Array of section objects. Minimum of 1, maximum of 10.
	Sections []*Section `json:"sections,omitempty"`

	// Required for Flow Messages. Set to "flow".
	Name string `json:"name,omitempty"`

	// Required for Flow Messages.
	Parameters *FlowParameters `json:"parameters,omitempty"`
}

// FlowParameters configure an interactive Flow Message action.
// https://developers.facebook.com/docs/whatsapp/flows/gettingstarted/sendingaflow
type FlowParameters struct {

	// REQUIRED. Value must be "3".
	FlowMessageVersion string `json:"flow_message_version"`

	// REQUIRED. Unique identifier of the Flow provided by WhatsApp.
	FlowID string `json:"flow_id"`

	// REQUIRED. Text on the CTA button. Maximum length: 20 characters.
	FlowCTA string `json:"flow_cta"`

	// OPTIONAL. Generated by the business to serve as an identifier
	// for the flow response. Echoed back within the nfm_reply webhook.
	FlowToken string `json:"flow_token,omitempty"`

	// OPTIONAL. navigate or data_exchange. Default: navigate.
	FlowAction string `json:"flow_action,omitempty"`

	// OPTIONAL. Required if flow_action is navigate.
	// The first screen of the Flow and its input data.
	FlowActionPayload *FlowActionPayload `json:"flow_action_payload,omitempty"`
}

// FlowActionPayload selects the entry screen of a Flow.
type FlowActionPayload struct {
	// The id of the first screen of the Flow.
	Screen string `json:"screen"`
	// OPTIONAL. The input data for the first screen.
	Data map[string]any `json:"data,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#header-object
type Header struct {

	// REQUIRED.
	// The header type you would like to use. Supported values:
	//
	// text: Used for List Messages, Reply Buttons, and Multi-Product Messages.
	// video: Used for Reply Buttons.
	// image: Used for Reply Buttons.
	// document: Used for Reply Buttons.
	//
	Type string `json:"type"`

	// REQUIRED if type is set to text.
	// Text for the header. Formatting allows emojis, but not markdown.
	//
	// Maximum length: 60 characters.
	Text string `json:"text,omitempty"`

	// REQUIRED if type is set to image.
	Image *Image `json:"image,omitempty"`

	// REQUIRED if type is set to video.
	Video *Video `json:"video,omitempty"`

	// REQUIRED if type is set to document.
	Document *Document `json:"document,omitempty"`
}

// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages#section-object
type Section struct {

	// Title of the section.
	// Required if the message has more than one section.
	//
	// Maximum length: 24 characters.
	Title string `json:"title,omitempty"`

	// Required for Multi-Product Messages.
	// Array of product objects.
	// There is a minimum of 1 product per section
	// and a maximum of 30 products across all sections.
	Products []any `json:"product_items,omitempty"`

	// Required for List Messages.
	// Contains a list of rows.
	// You can have a total of 10 rows across your sections.
	Rows []*Button `json:"rows,omitempty"`
}

// Unified Button
// Description from interactive.action.row[s]
type Button struct {
	// Unique identifier for your button.
	// This ID is returned in the webhook when the button is clicked by the user.
	// Maximum length: 200~256 characters.
	ID string `json:"id"`

	// Button title.
	// It cannot be an empty string and must be unique within the message.
	// Emojis are supported, markdown is not.
	// Maximum length: 20~24 characters.
	Title string `json:"title"`

	// OPTIONAL. Maximum length: 72 characters.
	Description string `json:"description,omitempty"`
}

type QuickReply struct {

	// Button type.
	// Only supported type is "reply" (for Reply Button)
	Type string `json:"type"`

	// Button definition.
	Button `json:"reply"`
}

func NewReplyButton(text, data string) *QuickReply {
	return &QuickReply{
		Type: "reply",
		Button: Button{
			ID:    data,
			Title: text,
		},
	}
}
