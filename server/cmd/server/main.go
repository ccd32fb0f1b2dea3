package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/shapefighter/server/core"
)

func main() {
	port := flag.Uint("port", 8080, "Relay port")
	maxPeers := flag.Int("maxpeers", 2, "Maximum connected peers")
	status := flag.Duration("status", 10*time.Second, "Interval between occupancy logs")
	flag.Parse()

	if *maxPeers < 1 {
		log.Fatalf("maxpeers must be at least 1, got %d", *maxPeers)
	}
	if *status <= 0 {
		log.Fatalf("status interval must be positive, got %s", *status)
	}

	server := core.NewServer(*maxPeers, *status)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down relay...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Starting Shape Fighter relay on port %d (max peers: %d)", *port, *maxPeers)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
