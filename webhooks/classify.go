package webhooks

import (
	"github.com/webmux/wacloud/whatsapp"
)

// Kind of a webhook notification.
type Kind string

const (
	// The value carries incoming messages.
	KindMessage Kind = "message"
	// The value carries outbound message status updates.
	KindStatus Kind = "status"
	// The value carries calling events.
	KindCall Kind = "call"
	// The envelope shape is not recognized.
	KindUnknown Kind = "unknown"
)

// Classification of a single webhook Event.
type Classification struct {
	// Kind of the notification.
	Kind Kind
	// Value decoded from the first entry's first change.
	// Nil when Kind is KindUnknown.
	Value *whatsapp.Update
	// Event is the envelope as received.
	Event *Event
}

// Classify resolves the event's first entry's first change value
// and discriminates it by the arrays it carries, checked in fixed
// priority order: calls, statuses, messages.
//
// A value with errors but no messages still classifies as KindMessage;
// the platform reports undeliverable inbound messages that way.
// Any envelope that cannot be resolved, a decode failure included,
// degrades to KindUnknown; Classify never panics.
func Classify(event *Event) Classification {
	none := Classification{Kind: KindUnknown, Event: event}
	if event == nil || len(event.Entry) == 0 {
		return none
	}
	entry := event.Entry[0]
	if entry == nil || len(entry.Changes) == 0 {
		return none
	}
	change := entry.Changes[0]
	if change == nil || len(change.Value) == 0 {
		return none
	}
	var update whatsapp.Update
	if err := change.GetValue(&update); err != nil {
		return none
	}
	update.ID = entry.ObjectID

	switch {
	case len(update.Calls) != 0:
		return Classification{Kind: KindCall, Value: &update, Event: event}
	case len(update.Statuses) != 0:
		return Classification{Kind: KindStatus, Value: &update, Event: event}
	case len(update.Messages) != 0:
		return Classification{Kind: KindMessage, Value: &update, Event: event}
	case len(update.Errors) != 0:
		// Errors without messages: the notification is still
		// about inbound messaging, e.g. an unsupported message
		// the platform could not deliver.
		return Classification{Kind: KindMessage, Value: &update, Event: event}
	}
	return none
}
