package keylayout

import (
	"fmt"

	"github.com/dasdy/keylayout/keylog/ports"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected serial devices that look like ZMK keyboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := ports.GetAvailableDevices()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "It does not seem like any keyboard is connected")

			return nil
		}

		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
