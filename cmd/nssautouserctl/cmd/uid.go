package cmd

import (
	"context"
	"fmt"

	"github.com/enfabrica/enkit/proxy/nss/autouser"
	"github.com/spf13/cobra"
)

var uidDirectory string

var uidCmd = &cobra.Command{
	Use:   "uid <path> <name>",
	Short: "Resolve just the rule matching name and print the UID it would synthesize",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name := args[0], args[1]

		cfg, err := autouser.LoadConfig(path)
		if err != nil {
			return err
		}

		dir, err := directoryFromFlag(uidDirectory)
		if err != nil {
			return err
		}

		resolved := autouser.Resolve(cfg, "", name)
		rule := resolved.Rule
		if rule.MinUID == 0 || rule.MaxUID == 0 {
			fmt.Println("no uid policy matched this name")
			return nil
		}

		seed := cfg.Seed
		if seed == "" {
			seed = "default-seed"
		}
		uid, err := autouser.HashUID(context.Background(), dir, seed, name, rule.MinUID, rule.MaxUID, autouser.DefaultHashAttempts)
		if err != nil {
			return err
		}
		if uid == 0 {
			fmt.Println("hashing exhausted every retry without finding a free uid")
			return nil
		}
		fmt.Printf("%d\n", uid)
		return nil
	},
}

func init() {
	uidCmd.Flags().StringVar(&uidDirectory, "directory", "os", "existing-user backend: os or none")
	rootCmd.AddCommand(uidCmd)
}
