package webhooks

// ContactInfo identifies the customer a notification is about
// and the business phone number that received it.
type ContactInfo struct {
	// The customer's WhatsApp ID.
	WAID string
	// The customer's profile name, if shared.
	Name string
	// ID for the business phone number that received the notification.
	PhoneNumberID string
}

// GetContactInfo extracts the customer's contact details
// from the event and reports whether any were present.
func GetContactInfo(event *Event) (info ContactInfo, ok bool) {
	e := Classify(event)
	if e.Kind == KindUnknown {
		return // not present
	}
	update := e.Value
	if update.Metadata != nil {
		info.PhoneNumberID = update.Metadata.PhoneNumberID
	}
	if len(update.Contacts) == 0 {
		return ContactInfo{}, false
	}
	contact := update.Contacts[0]
	info.WAID = contact.WAID
	info.Name = contact.GetName()
	return info, true
}

// GetMessageID returns the WhatsApp message ID (wamid) the event
// is about and reports whether the event resolves to a message
// or a status notification.
func GetMessageID(event *Event) (wamid string, ok bool) {
	e := Classify(event)
	switch e.Kind {
	case KindMessage:
		if len(e.Value.Messages) != 0 {
			return e.Value.Messages[0].ID, true
		}
	case KindStatus:
		if len(e.Value.Statuses) != 0 {
			return e.Value.Statuses[0].MessageID, true
		}
	}
	return "", false
}

// GetCallID returns the WhatsApp call ID (wacid) the event is about
// and reports whether the event resolves to a call notification.
func GetCallID(event *Event) (wacid string, ok bool) {
	e := Classify(event)
	if e.Kind == KindCall && len(e.Value.Calls) != 0 {
		return e.Value.Calls[0].ID, true
	}
	return "", false
}
