// vstoolbox lists and reopens the folders recently opened in VS Code.
package main

import (
	"os"

	"github.com/wethinkt/go-vstoolbox/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
