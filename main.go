package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/runforge/runkit/internal/wiring"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to parse .env file: %s", err.Error())
	}

	os.Exit(wiring.NewApplication().Run(os.Args))
}
