package cloud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"

	"github.com/webmux/wacloud/graph"
)

// TemplateDefinition is a message template registered
// with the WhatsApp Business Account.
// https://developers.facebook.com/docs/graph-api/reference/whats-app-business-account/message_templates
type TemplateDefinition struct {
	// Template ID.
	ID string `json:"id,omitempty"`
	// Template name.
	Name string `json:"name,omitempty"`
	// Template language and locale code, e.g. en_US.
	Language string `json:"language,omitempty"`
	// APPROVED, PENDING or REJECTED.
	Status string `json:"status,omitempty"`
	// MARKETING, UTILITY or AUTHENTICATION.
	Category string `json:"category,omitempty"`
	// Components that make up the template.
	Components []json.RawMessage `json:"components,omitempty"`
}

// GetTemplates returns the message templates registered with
// the given WhatsApp Business Account.
//
// Results are cached for a short period; template definitions
// change rarely but are consulted before every template send.
func (c *Client) GetTemplates(ctx context.Context, wabaID string) ([]*TemplateDefinition, error) {

	if wabaID == "" {
		return nil, errors.New("whatsapp: business account id required but missing")
	}

	if list, ok := c.templates.Get(wabaID); ok {
		return list, nil
	}

	var (
		list []*TemplateDefinition
		next = c.BaseURL + path.Join("/", c.Version, wabaID, "message_templates") +
			"?" + url.Values{"limit": {"100"}}.Encode()
	)
	// Page thru ALL the results ...
	for next != "" {

		req, err := http.NewRequestWithContext(
			ctx, http.MethodGet, next, nil,
		)
		if err != nil {
			return nil, err
		}

		res, err := c.Client.Do(req)
		if err != nil {
			return nil, errors.Wrap(err, "whatsapp: get templates")
		}

		var page struct {
			Error  *graph.Error          `json:"error,omitempty"`
			Data   []*TemplateDefinition `json:"data,omitempty"`
			Paging *struct {
				Next string `json:"next,omitempty"`
			} `json:"paging,omitempty"`
		}

		err = json.NewDecoder(res.Body).Decode(&page)
		res.Body.Close()

		if err == nil && page.Error != nil {
			err = page.Error
		}
		if err != nil {
			return nil, err
		}

		list = append(list, page.Data...)
		next = ""
		if page.Paging != nil {
			next = page.Paging.Next
		}
	}

	c.templates.Add(wabaID, list)
	return list, nil
}
