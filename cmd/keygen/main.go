package main

import (
	"fmt"
	"os"

	"github.com/shiftworks/roster-api/pkg/auth"
	"github.com/shiftworks/roster-api/pkg/config"
)

func main() {
	cfg := config.Get()

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <userID>")
		os.Exit(1)
	}

	if cfg.APIMasterSecret == "" {
		fmt.Println("Error: API_MASTER_SECRET not set")
		os.Exit(1)
	}

	userID := os.Args[1]
	apiKey := auth.GenerateHMACKey(userID)
	fmt.Printf("Generated Key for %s:\n%s\n", userID, apiKey)
}
