package main

import (
	"log"
	"os"

	"ctxbundle/cmd"
	"ctxbundle/pkg/logging"
)

func main() {
	err := cmd.Execute()

	if syncErr := logging.Sync(); syncErr != nil {
		log.Printf("Logger sync failed: %v", syncErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
