package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/automoto/shapefighter/network"
	"github.com/automoto/shapefighter/shared/messages"
	"github.com/coder/websocket"
	"github.com/google/uuid"
)

const (
	peerQueueSize = 64
	writeTimeout  = time.Second
	closeFull     = int32(websocket.StatusTryAgainLater)
)

type peer struct {
	id        string
	transport network.Transport
	out       chan []byte
	done      chan struct{}
}

// Server relays protocol messages between connected peers. It announces
// every arrival and departure as PLAYER_JOIN / PLAYER_LEAVE and forwards
// GAME_STATE and PLAYER_INPUT frames untouched to every other peer.
type Server struct {
	maxPeers int
	loop     *StatusLoop
	http     *http.Server

	mu    sync.RWMutex
	peers map[string]*peer
	order []string
}

// NewServer creates a relay that admits at most maxPeers at once
func NewServer(maxPeers int, statusInterval time.Duration) *Server {
	s := &Server{
		maxPeers: maxPeers,
		peers:    make(map[string]*peer),
	}
	s.loop = NewStatusLoop(s, statusInterval)
	return s
}

// Handler serves the websocket endpoint at /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

// Start begins the server on the given port and blocks until it stops
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.FormatUint(uint64(port), 10)),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.loop.Stop()

	s.mu.Lock()
	srv := s.http
	peers := make([]*peer, 0, len(s.peers))
	for _, p := range s.peers {
		peers = append(peers, p)
	}
	s.mu.Unlock()
	for _, p := range peers {
		_ = p.transport.Close(network.CloseGoingAway, "server shutting down")
	}

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// PeerCount returns the number of connected peers
func (s *Server) PeerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

// PeerIDs returns the connected peer ids in arrival order
func (s *Server) PeerIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("[relay] accept: %v", err)
		return
	}
	t := network.NewTransportFrom(conn)

	id := r.URL.Query().Get("id")
	if id == "" {
		id = uuid.NewString()
	}

	p, err := s.register(id, t)
	if err != nil {
		log.Printf("[relay] rejecting %s: %v", id, err)
		_ = t.Close(closeFull, err.Error())
		return
	}

	defer t.Close(network.CloseNormal, "")

	go s.writeLoop(p)
	s.readLoop(r.Context(), p)
}

// register admits a peer, replacing a stale connection with the same id.
// The newcomer hears about everyone already present, then everyone,
// newcomer included, hears about the newcomer; all peers therefore agree on
// arrival order.
func (s *Server) register(id string, t network.Transport) (*peer, error) {
	s.mu.Lock()
	if old, ok := s.peers[id]; ok {
		s.unregisterLocked(old)
		_ = old.transport.Close(network.CloseNormal, "replaced by new connection")
	}
	if len(s.peers) >= s.maxPeers {
		s.mu.Unlock()
		return nil, fmt.Errorf("relay full (%d peers)", s.maxPeers)
	}

	p := &peer{
		id:        id,
		transport: t,
		out:       make(chan []byte, peerQueueSize),
		done:      make(chan struct{}),
	}
	for _, other := range s.order {
		s.enqueue(p, mustEncode(messages.TypePlayerJoin, messages.PlayerJoin{PlayerID: other}))
	}
	s.peers[id] = p
	s.order = append(s.order, id)
	s.broadcastLocked("", mustEncode(messages.TypePlayerJoin, messages.PlayerJoin{PlayerID: id}))
	s.mu.Unlock()

	log.Printf("[relay] peer %s joined", id)
	return p, nil
}

func (s *Server) unregister(p *peer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.peers[p.id] != p {
		return
	}
	s.unregisterLocked(p)
}

func (s *Server) unregisterLocked(p *peer) {
	delete(s.peers, p.id)
	for i, id := range s.order {
		if id == p.id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	close(p.done)
	s.broadcastLocked(p.id, mustEncode(messages.TypePlayerLeave, messages.PlayerLeave{PlayerID: p.id}))
	log.Printf("[relay] peer %s left", p.id)
}

func (s *Server) readLoop(ctx context.Context, p *peer) {
	defer s.unregister(p)
	for {
		data, err := p.transport.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				log.Printf("[relay] read from %s: %v", p.id, err)
			}
			return
		}
		env, err := messages.Decode(data)
		if err != nil {
			log.Printf("[relay] dropping malformed frame from %s: %v", p.id, err)
			continue
		}
		switch env.Type {
		case messages.TypeGameState, messages.TypePlayerInput:
			s.mu.RLock()
			s.broadcastLocked(p.id, data)
			s.mu.RUnlock()
		case messages.TypePlayerJoin, messages.TypePlayerLeave:
			// membership is announced by the relay only
		default:
			log.Printf("[relay] ignoring %s from %s", env.Type, p.id)
		}
	}
}

func (s *Server) writeLoop(p *peer) {
	for {
		select {
		case <-p.done:
			return
		case frame := <-p.out:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := p.transport.Write(ctx, frame)
			cancel()
			if err != nil {
				log.Printf("[relay] write to %s: %v", p.id, err)
				_ = p.transport.Close(network.CloseGoingAway, "write failed")
				return
			}
		}
	}
}

// broadcastLocked queues frame for every peer except skip. The caller holds mu.
func (s *Server) broadcastLocked(skip string, frame []byte) {
	for _, id := range s.order {
		if id == skip {
			continue
		}
		s.enqueue(s.peers[id], frame)
	}
}

// enqueue never blocks; a peer too slow to keep up loses frames
func (s *Server) enqueue(p *peer, frame []byte) {
	select {
	case p.out <- frame:
	default:
		log.Printf("[relay] queue full for %s, dropping frame", p.id)
	}
}

func mustEncode(t messages.Type, payload any) []byte {
	frame, err := messages.Encode(t, payload)
	if err != nil {
		panic(err)
	}
	return frame
}
