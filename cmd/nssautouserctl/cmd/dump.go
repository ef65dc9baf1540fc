package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/enfabrica/enkit/proxy/nss/autouser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <path>",
	Short: "Parse a configuration file and pretty-print the resulting rule set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg, err := autouser.LoadConfig(path)
		if err != nil {
			return err
		}

		switch dumpFormat {
		case "repr":
			repr.Println(cfg)
		case "yaml", "":
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown --format %q, want yaml or repr", dumpFormat)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "yaml", "output format: yaml or repr")
	rootCmd.AddCommand(dumpCmd)
}
