// Package cloud implements the WhatsApp Business Cloud API client:
// sending messages, retrieving media and managing message templates.
// https://developers.facebook.com/docs/whatsapp/cloud-api
package cloud

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	// Latest supported Graph API version.
	Latest = "v23.0"
	// Graph API base URL.
	GraphURL = "https://graph.facebook.com"
)

// Client of the WhatsApp Business Cloud API.
type Client struct {

	// Graph API version, e.g. "v23.0".
	Version string

	// Graph API base URL. Defaults to GraphURL.
	BaseURL string

	// ID for the business phone number messages are sent from.
	PhoneNumberID string

	// HTTP Client used for Graph API calls.
	// Authorization is handled by its Transport.
	Client *http.Client

	// Media download client; body-less trace.
	media *http.Client

	// Log for request tracing.
	Log zerolog.Logger

	// Registered message template definitions, by WABA ID.
	templates *expirable.LRU[string, []*TemplateDefinition]
}

// Option configures a Client.
type Option func(*Client)

// WithVersion sets the Graph API version to use.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.Version = version
	}
}

// WithBaseURL overrides the Graph API base URL.
func WithBaseURL(rawurl string) Option {
	return func(c *Client) {
		c.BaseURL = rawurl
	}
}

// WithPhoneNumberID sets the default sender business phone number.
func WithPhoneNumberID(oid string) Option {
	return func(c *Client) {
		c.PhoneNumberID = oid
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
// The caller is responsible for request authorization.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.Client = client
	}
}

// WithLogger sets the request trace logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.Log = log
	}
}

// New returns the Cloud API Client authorized with
// the given System User access token.
func New(accessToken string, opts ...Option) *Client {

	c := &Client{
		Version: Latest,
		BaseURL: GraphURL,
		Log:     zerolog.Nop(),
		templates: expirable.NewLRU[string, []*TemplateDefinition](
			100, nil, time.Minute*15,
		),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.Client == nil {
		client := *(http.DefaultClient) // shallowcopy
		transport := client.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		// Authorization: Bearer
		transport = &oauth2.Transport{
			Base: transport,
			Source: oauth2.StaticTokenSource(
				&oauth2.Token{
					TokenType:   "Bearer",
					AccessToken: accessToken,
				},
			),
		}
		// Trace(!)
		client.Transport = &TransportDump{
			Transport: transport,
			WithBody:  true,
			Log:       c.Log,
		}
		client.Timeout = time.Second * 15
		c.Client = &client
	}
	// Derive now; concurrent calls share the Client read-only.
	c.media = newMediaClient(c)

	return c
}

// mediaClient returns the media download client:
// same transport chain, but never dumps (binary) body content.
func (c *Client) mediaClient() *http.Client {
	if c.media != nil {
		return c.media
	}
	return newMediaClient(c)
}

func newMediaClient(c *Client) (client *http.Client) {
	media := *(c.Client) // shallowcopy
	transport := media.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	switch tr := transport.(type) {
	case *TransportDump:
		if tr.WithBody {
			tr = &TransportDump{
				Transport: tr.Transport,
				WithBody:  false,
				Log:       tr.Log,
			}
			transport = tr
		}
	default:
		transport = &TransportDump{
			Transport: transport,
			WithBody:  false,
			Log:       c.Log,
		}
	}
	media.Transport = transport
	client = &media
	return // client
}
