package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/i9si-sistemas/pushwoosh"
)

var errNoContent = errors.New("message text or --lang is required")

type pushFlags struct {
	devices      []string
	langs        map[string]string
	data         string
	sendAt       string
	pageID       int
	wpType       string
	wpCount      int
	iosBadges    int
	iosSound     string
	androidSound string
}

func (f *pushFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.devices, "device", nil, "device push token (repeatable, default all devices)")
	fs.StringToStringVar(&f.langs, "lang", nil, "localized text as code=text (repeatable)")
	fs.StringVar(&f.data, "data", "", "custom JSON data passed to the application")
	fs.StringVar(&f.sendAt, "send-at", "", "delivery time in RFC3339 (default now)")
	fs.IntVar(&f.pageID, "page-id", 0, "HTML page id")
	fs.StringVar(&f.wpType, "wp-type", "", "Windows Phone notification type")
	fs.IntVar(&f.wpCount, "wp-count", 0, "Windows Phone badge")
	fs.IntVar(&f.iosBadges, "ios-badges", 0, "iOS icon badge")
	fs.StringVar(&f.iosSound, "ios-sound", "", "iOS sound file")
	fs.StringVar(&f.androidSound, "android-sound", "", "Android sound file")
}

// notification turns the command line into a Notification. Only flags the
// user actually passed become options.
func (f *pushFlags) notification(text string, fs *pflag.FlagSet) (pushwoosh.Notification, error) {
	var content pushwoosh.Content
	switch {
	case len(f.langs) > 0:
		langs := make(map[string]string, len(f.langs)+1)
		for k, v := range f.langs {
			langs[k] = v
		}
		if _, ok := langs[pushwoosh.DefaultLanguage]; !ok && text != "" {
			langs[pushwoosh.DefaultLanguage] = text
		}
		content = pushwoosh.Localized(langs)
	case text != "":
		content = pushwoosh.Text(text)
	default:
		return pushwoosh.Notification{}, errNoContent
	}

	var opts pushwoosh.NotificationOptions
	if fs.Changed("device") {
		opts.Devices = pushwoosh.Some(f.devices)
	}
	if fs.Changed("data") {
		var data any
		if err := json.Unmarshal([]byte(f.data), &data); err != nil {
			return pushwoosh.Notification{}, fmt.Errorf("--data: %w", err)
		}
		opts.Data = pushwoosh.Some(data)
	}
	if fs.Changed("send-at") {
		t, err := time.Parse(time.RFC3339, f.sendAt)
		if err != nil {
			return pushwoosh.Notification{}, fmt.Errorf("--send-at: %w", err)
		}
		opts.SendDate = pushwoosh.SendAt(t)
	}
	if fs.Changed("page-id") {
		opts.PageID = pushwoosh.Some(f.pageID)
	}
	if fs.Changed("wp-type") {
		opts.WPType = pushwoosh.Some(f.wpType)
	}
	if fs.Changed("wp-count") {
		opts.WPCount = pushwoosh.Some(f.wpCount)
	}
	if fs.Changed("ios-badges") {
		opts.IOSBadges = pushwoosh.Some(f.iosBadges)
	}
	if fs.Changed("ios-sound") {
		opts.IOSSound = pushwoosh.Some(f.iosSound)
	}
	if fs.Changed("android-sound") {
		opts.AndroidSound = pushwoosh.Some(f.androidSound)
	}
	return pushwoosh.NewNotification(content, opts), nil
}

func pushCmd() *cobra.Command {
	var f pushFlags
	cmd := &cobra.Command{
		Use:   "push [text]",
		Short: "Send a notification",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			}
			n, err := f.notification(text, cmd.Flags())
			if err != nil {
				return err
			}
			res, err := client.PushWithContext(cmd.Context(), n)
			return report(cmd, "push", res, err)
		},
	}
	f.register(cmd.Flags())
	return cmd
}
