// main is the entry point for the githeat CLI.
package main

import (
	"fmt"
	"os"

	"github.com/calebwei/githeat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
