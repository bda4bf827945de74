package main

import (
	"fmt"
	"os"

	"smartrisk/pkg/logger"
)

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
