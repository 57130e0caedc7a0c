package main

import (
	"log"

	"github.com/clipshelf/clipshelf/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ clipshelf failed to start: %v", err)
	}
}
