package commands

import (
	"github.com/spf13/cobra"

	"github.com/i9si-sistemas/pushwoosh"
)

func unregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unregister [device-type] [device-id]",
		Short: "Remove a device push token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceType, err := pushwoosh.ParseDeviceType(args[0])
			if err != nil {
				return err
			}
			res, err := client.UnregisterWithContext(cmd.Context(), deviceType, args[1])
			return report(cmd, "unregister", res, err)
		},
	}
}
