package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nicolas-29/nexus-admin/internal/core"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New()
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	snap := app.Console().Dashboard()
	log.Printf("Console ready: %d series, %d users, %d comments, %d chapters",
		snap.SeriesCount, snap.UserCount, snap.CommentCount, snap.ChapterCount)

	// Log state changes until a view layer is attached.
	events := app.Console().Events().Subscribe()
	go func() {
		for ev := range events {
			log.Printf("State changed: %s", ev.Scope)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down console.")
}
