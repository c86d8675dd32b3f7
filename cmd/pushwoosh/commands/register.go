package commands

import (
	"github.com/spf13/cobra"

	"github.com/i9si-sistemas/pushwoosh"
)

func registerCmd() *cobra.Command {
	var (
		language string
		timezone int
	)
	cmd := &cobra.Command{
		Use:   "register [device-type] [device-id] [hw-id]",
		Short: "Register a device push token",
		Long:  "Register a device push token. device-type is a platform name (iphone, android, ...) or its numeric code.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceType, err := pushwoosh.ParseDeviceType(args[0])
			if err != nil {
				return err
			}

			var opts pushwoosh.RegisterOptions
			if cmd.Flags().Changed("language") {
				opts.Language = pushwoosh.Some(language)
			}
			if cmd.Flags().Changed("timezone") {
				opts.Timezone = pushwoosh.Some(timezone)
			}

			res, err := client.RegisterWithContext(cmd.Context(), deviceType, args[1], args[2], &opts)
			return report(cmd, "register", res, err)
		},
	}
	cmd.Flags().StringVar(&language, "language", pushwoosh.DefaultLanguage, "device language")
	cmd.Flags().IntVar(&timezone, "timezone", 0, "timezone offset in seconds")
	return cmd
}
