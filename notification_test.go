package pushwoosh

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/i9si-sistemas/assert"
)

// payloadJSON renders n the way it is sent and decodes it back.
func payloadJSON(t *testing.T, n Notification) map[string]any {
	t.Helper()
	b, err := json.Marshal(n)
	assert.NoError(t, err)
	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestNotificationContentOnly(t *testing.T) {
	m := payloadJSON(t, NewNotification(Text("Hello"), NotificationOptions{}))
	assert.Equal(t, len(m), 2)
	assert.Equal(t, m["send_date"], "now")
	assert.Equal(t, m["content"], "Hello")
}

func TestNotificationLocalizedContent(t *testing.T) {
	m := payloadJSON(t, NewNotification(Localized(map[string]string{
		"en": "English",
		"de": "Deutsch",
	}), NotificationOptions{}))

	content, ok := m["content"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, len(content), 2)
	assert.Equal(t, content["en"], "English")
	assert.Equal(t, content["de"], "Deutsch")
}

func TestNotificationAllOptions(t *testing.T) {
	m := payloadJSON(t, NewNotification(Text("Hello"), NotificationOptions{
		Devices:      Some([]string{"dev-1", "dev-2"}),
		Data:         Some[any](map[string]any{"order": "42"}),
		PageID:       Some(7),
		SendDate:     Some("2026-10-19 12:30"),
		WPType:       Some("Toast"),
		WPCount:      Some(2),
		IOSBadges:    Some(5),
		IOSSound:     Some("ping.aiff"),
		AndroidSound: Some("ping"),
	}))

	assert.Equal(t, len(m), 10)
	assert.Equal(t, m["content"], "Hello")
	assert.Equal(t, m["send_date"], "2026-10-19 12:30")
	devices := m["devices"].([]any)
	assert.Equal(t, len(devices), 2)
	assert.Equal(t, devices[0], "dev-1")
	assert.Equal(t, devices[1], "dev-2")
	assert.Equal(t, m["data"].(map[string]any)["order"], "42")
	assert.Equal(t, m["page_id"], float64(7))
	assert.Equal(t, m["wp_type"], "Toast")
	assert.Equal(t, m["wp_count"], float64(2))
	assert.Equal(t, m["ios_badges"], float64(5))
	assert.Equal(t, m["ios_sound"], "ping.aiff")
	assert.Equal(t, m["android_sound"], "ping")
}

func TestNotificationZeroValuesArePresent(t *testing.T) {
	m := payloadJSON(t, NewNotification(Text(""), NotificationOptions{
		IOSBadges: Some(0),
		IOSSound:  Some(""),
	}))
	assert.Equal(t, len(m), 4)
	assert.Equal(t, m["ios_badges"], float64(0))
	assert.Equal(t, m["ios_sound"], "")
	assert.Equal(t, m["content"], "")
}

func TestNotificationIsImmutable(t *testing.T) {
	devices := []string{"dev-1"}
	data := map[string]any{"order": "42"}
	n := NewNotification(Text("Hello"), NotificationOptions{
		Devices: Some(devices),
		Data:    Some[any](data),
	})
	before, err := json.Marshal(n)
	assert.NoError(t, err)

	devices[0] = "changed"
	data["order"] = "99"

	p := n.Payload()
	p["devices"].([]any)[0] = "hijacked"
	p["data"].(map[string]any)["order"] = "hijacked"
	p["content"] = "tampered"
	delete(p, "send_date")

	after, err := json.Marshal(n)
	assert.NoError(t, err)
	assert.Equal(t, string(after), string(before))

	m := payloadJSON(t, n)
	assert.Equal(t, m["content"], "Hello")
	assert.Equal(t, m["send_date"], "now")
	assert.Equal(t, m["devices"].([]any)[0], "dev-1")
	assert.Equal(t, m["data"].(map[string]any)["order"], "42")
}

func TestNotificationEncodeError(t *testing.T) {
	n := NewNotification(Text("Hello"), NotificationOptions{Data: Some[any](make(chan int))})
	assert.True(t, n.Payload() == nil)

	_, err := json.Marshal(n)
	assert.NotNil(t, err)
}

func TestSendAt(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	when := time.Date(2026, time.October, 19, 15, 45, 30, 0, loc)

	date, ok := SendAt(when).Get()
	assert.True(t, ok)
	assert.Equal(t, date, "2026-10-19 12:45")
}
