package whatsapp

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMessage_Kind(t *testing.T) {

	known := []string{
		"text", "image", "audio", "video", "document",
		"sticker", "location", "contacts", "interactive",
		"reaction", "button", "order", "system", "referral",
	}
	for _, tag := range known {
		m := &Message{Type: tag}
		if got := m.Kind(); string(got) != tag {
			t.Errorf("Kind(%q) = %q, want %q", tag, got, tag)
		}
	}

	unknown := []string{
		"", "unknown", "TEXT", "Text", "ephemeral", "poll", "42",
	}
	for _, tag := range unknown {
		m := &Message{Type: tag}
		if got := m.Kind(); got != KindUnsupported {
			t.Errorf("Kind(%q) = %q, want %q", tag, got, KindUnsupported)
		}
	}
}

func TestMessage_MediaID(t *testing.T) {

	media := func(id string) Media {
		return Media{ID: id}
	}

	tests := []struct {
		name    string
		message *Message
		want    string
		wantOK  bool
	}{
		{
			name:    "image",
			message: &Message{Type: "image", Image: &Image{Document{Media: media("184232928")}}},
			want:    "184232928",
			wantOK:  true,
		},
		{
			name:    "audio",
			message: &Message{Type: "audio", Audio: &Audio{Document: Document{Media: media("184232929")}}},
			want:    "184232929",
			wantOK:  true,
		},
		{
			name:    "video",
			message: &Message{Type: "video", Video: &Video{Document{Media: media("184232930")}}},
			want:    "184232930",
			wantOK:  true,
		},
		{
			name:    "document",
			message: &Message{Type: "document", Document: &Document{Media: media("184232931")}},
			want:    "184232931",
			wantOK:  true,
		},
		{
			name:    "sticker",
			message: &Message{Type: "sticker", Sticker: &Sticker{Image: Image{Document{Media: media("184232932")}}}},
			want:    "184232932",
			wantOK:  true,
		},
		{
			name:    "text",
			message: &Message{Type: "text", Text: &Text{Body: "hi"}},
			wantOK:  false,
		},
		{
			name:    "location",
			message: &Message{Type: "location", Location: &Location{Latitude: 1, Longitude: 2}},
			wantOK:  false,
		},
		{
			name:    "unsupported",
			message: &Message{Type: "ephemeral"},
			wantOK:  false,
		},
		{
			// tag says media but the payload is absent
			name:    "image without payload",
			message: &Message{Type: "image"},
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := tt.message.MediaID()
			if ok != tt.wantOK {
				t.Fatalf("MediaID() ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.want {
				t.Errorf("MediaID() = %q, want %q", id, tt.want)
			}
			// IsMedia and MediaID agree on every message
			if is := tt.message.IsMedia(); is != tt.wantOK {
				t.Errorf("IsMedia() = %v, want %v", is, tt.wantOK)
			}
		})
	}
}

func TestTimestamp(t *testing.T) {

	var m Message
	data := []byte(`{"id":"wamid.test","timestamp":"1704067200","type":"text","text":{"body":"hi"}}`)
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := m.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}

	// round-trip keeps the epoch-seconds string encoding
	out, err := json.Marshal(m.Date)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `"1704067200"` {
		t.Errorf("Marshal(Date) = %s, want %q", out, "1704067200")
	}
}

func TestTimestamp_Absent(t *testing.T) {
	var m Message
	if err := json.Unmarshal([]byte(`{"id":"wamid.test","type":"text"}`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !m.Time().IsZero() {
		t.Errorf("Time() = %v, want zero", m.Time())
	}
}

func TestFileSize(t *testing.T) {

	tests := []struct {
		name string
		data string
		want int64
	}{
		{name: "number", data: `{"id":"1","file_size":93895}`, want: 93895},
		{name: "string", data: `{"id":"1","file_size":"2048"}`, want: 2048},
		{name: "absent", data: `{"id":"1"}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc Document
			if err := json.Unmarshal([]byte(tt.data), &doc); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := int64(doc.FileSize); got != tt.want {
				t.Errorf("FileSize = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMessage_Variants(t *testing.T) {

	// Unrecognized variants keep the raw record decodable.
	data := []byte(`{
		"from": "16505551234",
		"id": "wamid.test",
		"timestamp": "1704067200",
		"type": "knock_knock",
		"knock_knock": {"who": "there"}
	}`)

	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if m.Kind() != KindUnsupported {
		t.Errorf("Kind() = %q, want %q", m.Kind(), KindUnsupported)
	}
	if m.ID != "wamid.test" || m.From != "16505551234" {
		t.Error("base attributes lost on unsupported variant")
	}
}
