package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/enfabrica/enkit/proxy/nss/autouser"
	"github.com/spf13/cobra"
)

var resolveDirectory string

var resolveCmd = &cobra.Command{
	Use:   "resolve <path> <argv0> <name>",
	Short: "Run the full lookup pipeline and print the resulting record without mutating the environment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, argv0, name := args[0], args[1], args[2]

		cfg, err := autouser.LoadConfig(path)
		if err != nil {
			return err
		}

		dir, err := directoryFromFlag(resolveDirectory)
		if err != nil {
			return err
		}

		log := autouser.NewLogger()
		if cfg.Debug != "" {
			log = log.WithDebugFile(cfg.Debug)
		}

		env := autouser.MapEnv{}
		buf := make([]byte, 4096)
		status, errno, pwd := autouser.GetpwnamR(context.Background(), name, argv0, cfg, dir, log, buf, env)

		fmt.Printf("status: %s\n", status)
		fmt.Printf("errno: %s\n", errno)
		if pwd != nil {
			fmt.Printf("name: %s\n", pwd.Name)
			fmt.Printf("passwd: %s\n", pwd.Passwd)
			fmt.Printf("uid: %d\n", pwd.UID)
			fmt.Printf("gid: %d\n", pwd.GID)
			fmt.Printf("gecos: %s\n", pwd.Gecos)
			fmt.Printf("home: %s\n", pwd.Dir)
			fmt.Printf("shell: %s\n", pwd.Shell)
		}

		keys := make([]string, 0, len(env))
		for k := range env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("env %s=%s\n", k, env[k])
		}
		return nil
	},
}

func directoryFromFlag(value string) (autouser.Directory, error) {
	switch value {
	case "os", "":
		return autouser.OSDirectory{}, nil
	case "none":
		return autouser.NoneDirectory{}, nil
	default:
		return nil, fmt.Errorf("unknown --directory %q, want os or none", value)
	}
}

func init() {
	resolveCmd.Flags().StringVar(&resolveDirectory, "directory", "os", "existing-user backend: os or none")
	rootCmd.AddCommand(resolveCmd)
}
