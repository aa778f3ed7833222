package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/webmux/wacloud/graph"
)

// newMediaServer mocks the two-step media retrieval:
// GET /{version}/{media-id} resolves the temporary URL,
// GET /download/{media-id} serves the file content.
func newMediaServer(t *testing.T, content []byte, lookups *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/v23.0/184232928", func(w http.ResponseWriter, r *http.Request) {
		if lookups != nil {
			*lookups++
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q, want %q", auth, "Bearer test-token")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"url": %q,
			"mime_type": "image/jpeg",
			"sha256": "838ec83e79a72b51f8d927b7af0265d5fea751692d305b1f916efeb202633ba0",
			"file_size": "2048",
			"id": "184232928",
			"messaging_product": "whatsapp"
		}`, server.URL+"/download/184232928")
	})
	mux.HandleFunc("/download/184232928", func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q, want %q", auth, "Bearer test-token")
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Disposition", `attachment; filename="photo.jpg"`)
		_, _ = w.Write(content)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_GetMediaURL(t *testing.T) {

	server := newMediaServer(t, []byte("JFIF..."), nil)
	client := New("test-token", WithBaseURL(server.URL))

	media, err := client.GetMediaURL(context.Background(), "184232928")
	if err != nil {
		t.Fatalf("GetMediaURL() error = %v", err)
	}

	assert.Equal(t, "184232928", media.ID)
	assert.Equal(t, "image/jpeg", media.MIMEType)
	// quoted file_size normalizes to an integer
	assert.Equal(t, int64(2048), int64(media.FileSize))
	assert.NotEmpty(t, media.URL)
	assert.Equal(t, "whatsapp", media.Product)
}

func TestClient_GetMediaBytes(t *testing.T) {

	content := []byte("JFIF-image-bytes")
	server := newMediaServer(t, content, nil)
	client := New("test-token", WithBaseURL(server.URL))

	data, media, err := client.GetMediaBytes(context.Background(), "184232928")
	if err != nil {
		t.Fatalf("GetMediaBytes() error = %v", err)
	}

	assert.Equal(t, content, data)
	assert.Equal(t, "image/jpeg", media.MIMEType)
}

func TestClient_DownloadMedia_Filename(t *testing.T) {

	server := newMediaServer(t, []byte("JFIF..."), nil)
	client := New("test-token", WithBaseURL(server.URL))

	doc, err := client.DownloadMedia(context.Background(), "184232928")
	if err != nil {
		t.Fatalf("DownloadMedia() error = %v", err)
	}
	defer doc.Body.Close()

	assert.Equal(t, "photo.jpg", doc.Filename)
	assert.Equal(t, "image/jpeg", doc.ContentType)
}

// The temporary URL is valid 5 minutes; every retrieval
// resolves it fresh, nothing is cached.
func TestClient_DownloadMedia_NoURLCache(t *testing.T) {

	var lookups int
	server := newMediaServer(t, []byte("JFIF..."), &lookups)
	client := New("test-token", WithBaseURL(server.URL))

	for i := 0; i < 2; i++ {
		doc, err := client.DownloadMedia(context.Background(), "184232928")
		if err != nil {
			t.Fatalf("DownloadMedia() #%d error = %v", i, err)
		}
		doc.Body.Close()
	}

	assert.Equal(t, 2, lookups, "expected a fresh URL lookup per call")
}

// Concurrent downloads share one configured client;
// the body-less media client is derived up front.
func TestClient_DownloadMedia_Concurrent(t *testing.T) {

	server := newMediaServer(t, []byte("JFIF..."), nil)
	client := New("test-token", WithBaseURL(server.URL))

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := client.DownloadMedia(context.Background(), "184232928")
			if err == nil {
				doc.Body.Close()
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("DownloadMedia() error = %v", err)
		}
	}
}

func TestClient_DownloadMedia_Expired(t *testing.T) {

	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/v23.0/184232928", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"url": %q, "id": "184232928"}`, server.URL+"/download/184232928")
	})
	mux.HandleFunc("/download/184232928", func(w http.ResponseWriter, r *http.Request) {
		// URL past its 5 minute validity window
		http.Error(w, "Not Found", http.StatusNotFound)
	})
	server = httptest.NewServer(mux)
	defer server.Close()

	client := New("test-token", WithBaseURL(server.URL))

	_, err := client.DownloadMedia(context.Background(), "184232928")
	var mediaErr *MediaError
	if !errors.As(err, &mediaErr) {
		t.Fatalf("DownloadMedia() error = %v, want *MediaError", err)
	}
	assert.Equal(t, http.StatusNotFound, mediaErr.StatusCode)
	assert.Equal(t, "184232928", mediaErr.MediaID)
}

func TestClient_GetMediaURL_GraphError(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"code":    100,
					"type":    "GraphMethodException",
					"message": "Unsupported get request.",
				},
			})
		},
	))
	defer server.Close()

	client := New("test-token", WithBaseURL(server.URL))

	_, err := client.GetMediaURL(context.Background(), "no-such-media")
	var mediaErr *MediaError
	if !errors.As(err, &mediaErr) {
		t.Fatalf("GetMediaURL() error = %v, want *MediaError", err)
	}
	assert.Equal(t, "no-such-media", mediaErr.MediaID)
	assert.Equal(t, http.StatusBadRequest, mediaErr.StatusCode)
	// the Graph error envelope stays reachable behind the refusal
	var graphErr *graph.Error
	if !errors.As(err, &graphErr) {
		t.Fatalf("GetMediaURL() error = %v, want wrapped *graph.Error", err)
	}
	assert.Equal(t, 100, graphErr.Code)
}

func TestClient_GetMediaURL_NotFound(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{
					"code":    100,
					"type":    "GraphMethodException",
					"message": "Unsupported get request.",
				},
			})
		},
	))
	defer server.Close()

	client := New("test-token", WithBaseURL(server.URL))

	_, err := client.GetMediaURL(context.Background(), "184232928")
	var mediaErr *MediaError
	if !errors.As(err, &mediaErr) {
		t.Fatalf("GetMediaURL() error = %v, want *MediaError", err)
	}
	assert.Equal(t, "184232928", mediaErr.MediaID)
	assert.Equal(t, http.StatusNotFound, mediaErr.StatusCode)
}

func TestClient_DownloadMedia_NoLink(t *testing.T) {

	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": "184232928", "mime_type": "image/jpeg"}`)
		},
	))
	defer server.Close()

	client := New("test-token", WithBaseURL(server.URL))

	_, err := client.DownloadMedia(context.Background(), "184232928")
	if !errors.Is(err, ErrNoMediaLink) {
		t.Errorf("DownloadMedia() error = %v, want %v", err, ErrNoMediaLink)
	}
}

func TestClient_GetMediaURL_NetworkError(t *testing.T) {

	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from now on

	client := New("test-token", WithBaseURL(server.URL))

	_, err := client.GetMediaURL(context.Background(), "184232928")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("GetMediaURL() error = %v, want *NetworkError", err)
	}
	assert.Error(t, netErr.Unwrap())
}

func TestClient_GetMediaURL_MissingID(t *testing.T) {
	client := New("test-token")
	if _, err := client.GetMediaURL(context.Background(), ""); err == nil {
		t.Error("GetMediaURL(\"\") error = nil, want error")
	}
}
