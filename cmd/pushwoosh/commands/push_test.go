package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/i9si-sistemas/assert"
	"github.com/spf13/pflag"

	"github.com/i9si-sistemas/pushwoosh"
)

func parsePush(t *testing.T, text string, args ...string) (map[string]any, error) {
	t.Helper()
	var f pushFlags
	fs := pflag.NewFlagSet("push", pflag.ContinueOnError)
	f.register(fs)
	assert.NoError(t, fs.Parse(args))

	n, err := f.notification(text, fs)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(n)
	assert.NoError(t, err)
	var m map[string]any
	assert.NoError(t, json.Unmarshal(b, &m))
	return m, nil
}

func TestPushFlagsTextOnly(t *testing.T) {
	m, err := parsePush(t, "Hello")
	assert.NoError(t, err)
	assert.Equal(t, len(m), 2)
	assert.Equal(t, m["content"], "Hello")
	assert.Equal(t, m["send_date"], pushwoosh.SendNow)
}

func TestPushFlagsOnlyChangedOptions(t *testing.T) {
	m, err := parsePush(t, "Hello",
		"--device", "dev-1",
		"--device", "dev-2",
		"--ios-badges", "0",
		"--data", `{"order":42}`,
		"--send-at", "2026-10-19T15:45:00+03:00",
	)
	assert.NoError(t, err)
	assert.Equal(t, len(m), 5)
	assert.Equal(t, len(m["devices"].([]any)), 2)
	assert.Equal(t, m["ios_badges"], float64(0))
	assert.Equal(t, m["data"].(map[string]any)["order"], float64(42))
	assert.Equal(t, m["send_date"], "2026-10-19 12:45")
}

func TestPushFlagsLocalized(t *testing.T) {
	m, err := parsePush(t, "Hello", "--lang", "de=Hallo")
	assert.NoError(t, err)
	content := m["content"].(map[string]any)
	assert.Equal(t, content["de"], "Hallo")
	assert.Equal(t, content["en"], "Hello")
}

func TestPushFlagsErrors(t *testing.T) {
	_, err := parsePush(t, "")
	assert.True(t, errors.Is(err, errNoContent))

	_, err = parsePush(t, "Hello", "--data", "{broken")
	assert.NotNil(t, err)

	_, err = parsePush(t, "Hello", "--send-at", "tomorrow")
	assert.NotNil(t, err)
}
