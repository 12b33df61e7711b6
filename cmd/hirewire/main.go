// Command hirewire tracks job applications and drives an AI career assistant
// from the terminal.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hirewire-labs/hirewire-cli/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cli.SetVersion(version)
	cli.SetBootstrapper(wire)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
