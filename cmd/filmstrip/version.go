package main

import (
	"fmt"
	"os"

	"github.com/dstrand/filmstrip/internal/ui/panels"
	"github.com/dstrand/filmstrip/internal/update"
)

func runVersion(repo string) {
	fmt.Printf("filmstrip version %s\n", panels.Version)

	if panels.Version == "dev" {
		fmt.Println("Development build — update check skipped.")
		return
	}

	rel, err := update.Check(panels.Version, repo)
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}

	if rel != nil {
		fmt.Printf("Update available: v%s. Run \"filmstrip update\" to install.\n", rel.Version)
	} else {
		fmt.Println("You are up to date.")
	}
}

func runUpdate(repo string) {
	fmt.Printf("filmstrip version %s\n", panels.Version)
	fmt.Println("Checking for updates...")

	rel, err := update.Apply(panels.Version, repo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated to v%s.\n", rel.Version)
	if rel.ReleaseNotes != "" {
		fmt.Printf("\n%s\n", rel.ReleaseNotes)
	}
}
