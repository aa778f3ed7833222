package webhooks

import (
	"testing"
)

func TestGetContactInfo(t *testing.T) {

	info, ok := GetContactInfo(mustEvent(t, notifyMessage))
	if !ok {
		t.Fatal("GetContactInfo() ok = false, want true")
	}
	if info.WAID != "16505551234" {
		t.Errorf("WAID = %q, want %q", info.WAID, "16505551234")
	}
	if info.Name != "Kerry Fisher" {
		t.Errorf("Name = %q, want %q", info.Name, "Kerry Fisher")
	}
	if info.PhoneNumberID != "106540352242922" {
		t.Errorf("PhoneNumberID = %q, want %q", info.PhoneNumberID, "106540352242922")
	}

	// Status notifications carry no contacts array.
	if _, ok = GetContactInfo(mustEvent(t, notifyStatus)); ok {
		t.Error("GetContactInfo(status) ok = true, want false")
	}
	if _, ok = GetContactInfo(mustEvent(t, `{"object":"whatsapp_business_account","entry":[]}`)); ok {
		t.Error("GetContactInfo(empty) ok = true, want false")
	}
}

func TestGetMessageID(t *testing.T) {

	tests := []struct {
		name    string
		payload string
		want    string
		wantOK  bool
	}{
		{
			name:    "message",
			payload: notifyMessage,
			want:    "wamid.HBgLMTY1MDM4Nzk0MzkVAgASGBQzQTRBRDVDQ0E5RjYwRkNFMjg1NwA=",
			wantOK:  true,
		},
		{
			name:    "status",
			payload: notifyStatus,
			want:    "wamid.HBgLMTY1MDM4Nzk0MzkVAgARGBI5QUYxQ0I1Qjk1ODkyMEE1MjEC",
			wantOK:  true,
		},
		{
			name:    "call",
			payload: notifyCall,
			wantOK:  false,
		},
		{
			name:    "empty",
			payload: `{"object":"whatsapp_business_account","entry":[]}`,
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetMessageID(mustEvent(t, tt.payload))
			if ok != tt.wantOK {
				t.Fatalf("GetMessageID() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("GetMessageID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetCallID(t *testing.T) {

	wacid, ok := GetCallID(mustEvent(t, notifyCall))
	if !ok {
		t.Fatal("GetCallID() ok = false, want true")
	}
	if want := "wacid.ABGGFjFVU2AfAgo6V-Hc5eCgK5Gh"; wacid != want {
		t.Errorf("GetCallID() = %q, want %q", wacid, want)
	}

	if _, ok = GetCallID(mustEvent(t, notifyMessage)); ok {
		t.Error("GetCallID(message) ok = true, want false")
	}
	if _, ok = GetCallID(mustEvent(t, `{"object":"whatsapp_business_account","entry":[]}`)); ok {
		t.Error("GetCallID(empty) ok = true, want false")
	}
}
