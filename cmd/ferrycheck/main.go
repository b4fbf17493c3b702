// Command ferrycheck estimates the chance that a Hyannis-Nantucket fast ferry
// departure runs, from the current NWS coastal waters forecast or a saved copy
// of the bulletin.
//
// Usage:
//
//	ferrycheck periods
//	ferrycheck assess --date 2026-10-19 --time 06:10
//	ferrycheck assess --file bulletin.html --period "MON NIGHT" --json
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real environment variables win.
	_ = godotenv.Load()

	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
