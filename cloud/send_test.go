package cloud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/webmux/wacloud/graph"
	"github.com/webmux/wacloud/whatsapp"
)

func newSendServer(t *testing.T, capture *whatsapp.SendMessage) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			if r.URL.Path != "/v23.0/106540352242922/messages" {
				t.Errorf("path = %s, want /v23.0/106540352242922/messages", r.URL.Path)
			}
			if capture != nil {
				if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
					t.Errorf("decode request: %v", err)
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"messaging_product": "whatsapp",
				"contacts": [{"input": "+16505551234", "wa_id": "16505551234"}],
				"messages": [{"id": "wamid.HBgLMTY1MDU1NTEyMzQVAgARGBI5QTNDQTVCM0Q0Q0Q2RTY3RTcA"}]
			}`))
		},
	))
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server) *Client {
	return New("test-token",
		WithBaseURL(server.URL),
		WithPhoneNumberID("106540352242922"),
	)
}

func TestClient_SendText(t *testing.T) {

	var sent whatsapp.SendMessage
	client := newTestClient(newSendServer(t, &sent))

	res, err := client.SendText(context.Background(), "16505551234", "Hello")
	if err != nil {
		t.Fatalf("SendText() error = %v", err)
	}

	assert.Equal(t, "wamid.HBgLMTY1MDU1NTEyMzQVAgARGBI5QTNDQTVCM0Q0Q0Q2RTY3RTcA", res.WAMID())
	assert.Equal(t, "whatsapp", sent.MessagingProduct)
	assert.Equal(t, "individual", sent.RecipientType)
	assert.Equal(t, "16505551234", sent.TO)
	assert.Equal(t, "text", sent.Type)
	if assert.NotNil(t, sent.Text) {
		assert.Equal(t, "Hello", sent.Text.Body)
	}
}

func TestClient_SendTemplate(t *testing.T) {

	var sent whatsapp.SendMessage
	client := newTestClient(newSendServer(t, &sent))

	_, err := client.SendTemplate(context.Background(), "16505551234",
		&whatsapp.Template{
			Name: "order_update",
			Language: &whatsapp.TemplateLanguage{
				Code: "en_US",
			},
		},
	)
	if err != nil {
		t.Fatalf("SendTemplate() error = %v", err)
	}

	assert.Equal(t, "template", sent.Type)
	if assert.NotNil(t, sent.Template) {
		assert.Equal(t, "order_update", sent.Template.Name)
		assert.Equal(t, "en_US", sent.Template.Language.Code)
	}
}

func TestClient_SendFlow(t *testing.T) {

	var sent whatsapp.SendMessage
	client := newTestClient(newSendServer(t, &sent))

	_, err := client.SendFlow(context.Background(), "16505551234",
		"Book your appointment",
		&whatsapp.FlowParameters{
			FlowID:    "550118246179399",
			FlowCTA:   "Book now",
			FlowToken: "ticket-8431",
		},
	)
	if err != nil {
		t.Fatalf("SendFlow() error = %v", err)
	}

	assert.Equal(t, "interactive", sent.Type)
	if !assert.NotNil(t, sent.Interactive) {
		return
	}
	assert.Equal(t, "flow", sent.Interactive.Type)
	assert.Equal(t, "Book your appointment", sent.Interactive.Body.Text)
	if assert.NotNil(t, sent.Interactive.Action) {
		assert.Equal(t, "flow", sent.Interactive.Action.Name)
		params := sent.Interactive.Action.Parameters
		if assert.NotNil(t, params) {
			assert.Equal(t, "3", params.FlowMessageVersion)
			assert.Equal(t, "550118246179399", params.FlowID)
			assert.Equal(t, "ticket-8431", params.FlowToken)
		}
	}
}

func TestClient_MarkRead(t *testing.T) {

	var sent whatsapp.SendMessage
	client := newTestClient(newSendServer(t, &sent))

	err := client.MarkRead(context.Background(), "wamid.incoming")
	if err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	assert.Equal(t, "read", sent.Status)
	assert.Equal(t, "wamid.incoming", sent.MessageID)
	assert.Empty(t, sent.TO)
}

func TestClient_SendMessage_GraphError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error": {
				"code": 190,
				"type": "OAuthException",
				"message": "Invalid OAuth access token.",
				"fbtrace_id": "A6qVpK3sQyZ"
			}}`))
		},
	))
	defer server.Close()

	client := New("bad-token",
		WithBaseURL(server.URL),
		WithPhoneNumberID("106540352242922"),
	)

	_, err := client.SendText(context.Background(), "16505551234", "Hello")
	var graphErr *graph.Error
	if !errors.As(err, &graphErr) {
		t.Fatalf("SendText() error = %v, want *graph.Error", err)
	}
	assert.Equal(t, 190, graphErr.Code)
	assert.Equal(t, "OAuthException", graphErr.Type)
}

func TestClient_SendMessage_NoSender(t *testing.T) {
	client := New("test-token") // no phone_number_id
	_, err := client.SendText(context.Background(), "16505551234", "Hello")
	if err == nil {
		t.Error("SendText() error = nil, want error")
	}
}

func TestClient_GetTemplates_Cached(t *testing.T) {

	var hits int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			hits++
			if r.URL.Path != "/v23.0/102290129340398/message_templates" {
				t.Errorf("path = %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [
				{"id": "1", "name": "order_update", "language": "en_US", "status": "APPROVED", "category": "UTILITY"}
			]}`))
		},
	))
	defer server.Close()

	client := New("test-token", WithBaseURL(server.URL))

	for i := 0; i < 3; i++ {
		list, err := client.GetTemplates(context.Background(), "102290129340398")
		if err != nil {
			t.Fatalf("GetTemplates() #%d error = %v", i, err)
		}
		if assert.Len(t, list, 1) {
			assert.Equal(t, "order_update", list[0].Name)
		}
	}

	// template definitions change rarely; served from cache after the first call
	assert.Equal(t, 1, hits)
}
