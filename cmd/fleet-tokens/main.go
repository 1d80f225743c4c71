// Command fleet-tokens generates Fleet semantic color artifacts.
package main

import (
	"os"

	"github.com/fleet-ui/fleet-tokens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
