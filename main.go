// humantime parses and formats human-friendly durations.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/humantime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
