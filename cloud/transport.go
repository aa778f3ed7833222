package cloud

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

// TransportDump is an http.RoundTripper that dumps
// the request and response wire content to Log
// at trace level before delegating to Transport.
type TransportDump struct {
	// Transport to delegate to.
	// Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	// WithBody includes body content in the dump.
	// Disable for binary payloads.
	WithBody bool
	// Log destination.
	Log zerolog.Logger
}

var _ http.RoundTripper = (*TransportDump)(nil)

func (c *TransportDump) RoundTrip(req *http.Request) (*http.Response, error) {

	next := c.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	trace := c.Log.GetLevel() <= zerolog.TraceLevel

	if trace {
		if dump, err := httputil.DumpRequestOut(req, c.WithBody); err == nil {
			c.Log.Trace().Msg("\n\n" + string(dump) + "\n")
		}
	}

	res, err := next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if trace {
		if dump, err := httputil.DumpResponse(res, c.WithBody); err == nil {
			c.Log.Trace().Msg("\n\n" + string(dump) + "\n")
		}
	}

	return res, nil
}
