package cmd

import (
	"fmt"

	"github.com/enfabrica/enkit/proxy/nss/autouser"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Parse a configuration file and report every error found",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		_, err := autouser.LoadConfig(path)
		if err == nil {
			fmt.Printf("%s: ok\n", path)
			return nil
		}

		if cfgErrs, ok := err.(*autouser.ConfigErrors); ok {
			for _, e := range cfgErrs.Errors {
				fmt.Printf("%s: %s\n", path, e)
			}
		} else {
			fmt.Printf("%s: %s\n", path, err)
		}
		return fmt.Errorf("%s: invalid", path)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
