package main

import (
	"os"

	"github.com/enfabrica/enkit/cmd/nssautouserctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
