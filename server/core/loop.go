package core

import (
	"log"
	"time"
)

// StatusLoop periodically logs the relay's occupancy when it changes
type StatusLoop struct {
	server   *Server
	interval time.Duration
	last     int
	stopChan chan struct{}
}

func NewStatusLoop(server *Server, interval time.Duration) *StatusLoop {
	return &StatusLoop{
		server:   server,
		interval: interval,
		last:     -1,
		stopChan: make(chan struct{}),
	}
}

func (g *StatusLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Printf("[relay] status every %s", g.interval)

	for {
		select {
		case <-g.stopChan:
			log.Println("[relay] status loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends the loop. Safe to call more than once.
func (g *StatusLoop) Stop() {
	select {
	case <-g.stopChan:
		return
	default:
		close(g.stopChan)
	}
}

func (g *StatusLoop) tick() {
	n := g.server.PeerCount()
	if n == g.last {
		return
	}
	g.last = n
	log.Printf("[relay] %d/%d peers connected: %v", n, g.server.maxPeers, g.server.PeerIDs())
}
