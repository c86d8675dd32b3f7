package pushwoosh

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"
)

// SendNow is the send_date value asking Pushwoosh to deliver immediately.
const SendNow = "now"

// sendDateLayout is the UTC "YYYY-MM-DD HH:mm" format of send_date.
const sendDateLayout = "2006-01-02 15:04"

// Content is the message text, either a single string or one string per
// language code.
type Content struct {
	text      string
	localized map[string]string
}

// Text returns content delivered to every device as is.
func Text(s string) Content {
	return Content{text: s}
}

// Localized returns content keyed by language code, e.g. {"en": "Hi", "de": "Hallo"}.
func Localized(m map[string]string) Content {
	return Content{localized: maps.Clone(m)}
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.localized != nil {
		return json.Marshal(c.localized)
	}
	return json.Marshal(c.text)
}

// NotificationOptions are the optional parts of a notification. Only the
// fields that are set end up in the payload.
type NotificationOptions struct {
	Devices      Optional[[]string] // omitted: deliver to all devices
	Data         Optional[any]      // custom JSON data, iOS caps the whole push at 256 bytes
	PageID       Optional[int]      // HTML page id
	SendDate     Optional[string]   // "YYYY-MM-DD HH:mm" in UTC, see SendAt
	WPType       Optional[string]
	WPCount      Optional[int]
	IOSBadges    Optional[int]
	IOSSound     Optional[string]
	AndroidSound Optional[string]
}

// SendAt returns a SendDate option for t.
func SendAt(t time.Time) Optional[string] {
	return Some(t.UTC().Format(sendDateLayout))
}

// Notification is one entry of a createMessage request. Its payload is
// encoded once when built and sent verbatim every time.
type Notification struct {
	payload json.RawMessage
	err     error
}

// NewNotification builds the payload for content and the options that are set.
// A payload that cannot be encoded, e.g. Data holding a channel, surfaces as an
// error when the notification is marshaled or pushed.
func NewNotification(content Content, options NotificationOptions) Notification {
	payload := map[string]any{
		"send_date": options.SendDate.Or(SendNow),
		"content":   content,
	}
	setOptional(payload, "devices", options.Devices)
	setOptional(payload, "data", options.Data)
	setOptional(payload, "page_id", options.PageID)
	setOptional(payload, "wp_type", options.WPType)
	setOptional(payload, "wp_count", options.WPCount)
	setOptional(payload, "ios_badges", options.IOSBadges)
	setOptional(payload, "ios_sound", options.IOSSound)
	setOptional(payload, "android_sound", options.AndroidSound)

	raw, err := json.Marshal(payload)
	if err != nil {
		return Notification{err: fmt.Errorf("pushwoosh: encode notification: %w", err)}
	}
	return Notification{payload: raw}
}

func setOptional[T any](payload map[string]any, key string, o Optional[T]) {
	if v, ok := o.Get(); ok {
		payload[key] = v
	}
}

// Payload decodes a fresh copy of the notification payload. It is nil when
// the notification could not be encoded.
func (n Notification) Payload() map[string]any {
	var m map[string]any
	if n.err != nil || json.Unmarshal(n.payload, &m) != nil {
		return nil
	}
	return m
}

func (n Notification) MarshalJSON() ([]byte, error) {
	if n.err != nil {
		return nil, n.err
	}
	if n.payload == nil {
		return []byte("null"), nil
	}
	return append([]byte(nil), n.payload...), nil
}
