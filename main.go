package main

import (
	"os"

	"github.com/joho/godotenv"

	"codeclip/cmd"
)

func main() {
	// Optional .env file for settings like CODECLIP_IGNORE.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
