package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	roster, err := FetchRoster(ctx, config.URL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Roster of %s unavailable: %v\n", config.Room, err)
		os.Exit(1)
	}
	Render(os.Stdout, config.Room, roster, config.Colours)
}
