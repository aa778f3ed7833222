package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path"

	"github.com/pkg/errors"

	"github.com/webmux/wacloud/graph"
	"github.com/webmux/wacloud/whatsapp"
)

// SendResult of a messages endpoint call.
// https://developers.facebook.com/docs/whatsapp/cloud-api/reference/messages
type SendResult struct {
	// Set to "whatsapp".
	Product string `json:"messaging_product,omitempty"`
	// Recipient(s) the message was accepted for.
	Contacts []*struct {
		WAID        string `json:"wa_id"` // WHATSAPP_ID
		PhoneNumber string `json:"input"` // PHONE_NUMBER
	} `json:"contacts,omitempty"`
	// Accepted message(s).
	Messages []*struct {
		ID string `json:"id"` // WAMID
		// accepted | held_for_quality_assessment
		Status string `json:"message_status,omitempty"`
	} `json:"messages,omitempty"`
}

// WAMID of the first accepted message, if any.
func (res *SendResult) WAMID() string {
	if res != nil && len(res.Messages) != 0 {
		return res.Messages[0].ID
	}
	return ""
}

// SendMessage posts the message to the business phone number's
// messages endpoint. Acceptance is not delivery: track the final
// state via status webhook notifications.
// The call performs no internal retry.
func (c *Client) SendMessage(ctx context.Context, message *whatsapp.SendMessage) (*SendResult, error) {

	if c.PhoneNumberID == "" {
		return nil, errors.New("whatsapp: sender phone_number_id required but missing")
	}

	if message.MessagingProduct == "" {
		message.MessagingProduct = "whatsapp"
	}
	if message.RecipientType == "" && message.TO != "" {
		message.RecipientType = "individual"
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(message)
	if err != nil {
		// ERR: Failed to encode JSON request
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.BaseURL+path.Join("/", c.Version, c.PhoneNumberID, "messages"),
		&buf,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "send message", Cause: err}
	}
	defer res.Body.Close()

	var ret struct {
		Error *graph.Error `json:"error,omitempty"`
		*SendResult
	}

	err = json.NewDecoder(res.Body).Decode(&ret)
	if err == nil && ret.Error != nil {
		err = ret.Error
	}
	if err != nil {
		return nil, err
	}

	return ret.SendResult, nil
}

// SendText sends a plain text message to the given WhatsApp ID.
func (c *Client) SendText(ctx context.Context, to, text string) (*SendResult, error) {
	return c.SendMessage(ctx, &whatsapp.SendMessage{
		TO:   to,
		Type: "text",
		Text: &whatsapp.Text{
			Body: text,
		},
	})
}

// SendReaction sets emoji as the reaction on the message wamid.
// An empty emoji removes a previously sent reaction.
func (c *Client) SendReaction(ctx context.Context, to, wamid, emoji string) (*SendResult, error) {
	return c.SendMessage(ctx, &whatsapp.SendMessage{
		TO:   to,
		Type: "reaction",
		Reaction: &whatsapp.Reaction{
			WAMID: wamid,
			Emoji: emoji,
		},
	})
}

// SendTemplate sends a pre-approved message template.
// Templates are the only way to open a conversation
// outside the 24-hour customer service window.
func (c *Client) SendTemplate(ctx context.Context, to string, template *whatsapp.Template) (*SendResult, error) {
	return c.SendMessage(ctx, &whatsapp.SendMessage{
		TO:       to,
		Type:     "template",
		Template: template,
	})
}

// SendInteractive sends a reply-buttons, list, product or flow message.
func (c *Client) SendInteractive(ctx context.Context, to string, interactive *whatsapp.Interactive) (*SendResult, error) {
	return c.SendMessage(ctx, &whatsapp.SendMessage{
		TO:          to,
		Type:        "interactive",
		Interactive: interactive,
	})
}

// SendFlow sends an interactive Flow message with the given CTA button
// and entry parameters. The customer's submission comes back within an
// interactive.nfm_reply webhook carrying params.FlowToken.
func (c *Client) SendFlow(ctx context.Context, to, body string, params *whatsapp.FlowParameters) (*SendResult, error) {
	if params.FlowMessageVersion == "" {
		params.FlowMessageVersion = "3"
	}
	return c.SendInteractive(ctx, to, &whatsapp.Interactive{
		Type: "flow",
		Body: &whatsapp.Content{
			Text: body,
		},
		Action: &whatsapp.Action{
			Name:       "flow",
			Parameters: params,
		},
	})
}

// MarkRead marks the incoming message wamid as read.
// The customer sees the double blue tick.
func (c *Client) MarkRead(ctx context.Context, wamid string) error {
	_, err := c.SendMessage(ctx, &whatsapp.SendMessage{
		Status:    "read",
		MessageID: wamid,
	})
	return err
}
