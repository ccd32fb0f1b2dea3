package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/shared/messages"
)

var (
	// ErrNotConnected is returned by Send while no transport is installed
	ErrNotConnected = errors.New("not connected")
	// ErrClosed is returned by Connect after Close
	ErrClosed = errors.New("client closed")
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateClosed
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Option configures a Client
type Option func(*Client)

func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dial = d
	}
}

func WithReconnectDelay(d time.Duration) Option {
	return func(c *Client) {
		c.reconnectDelay = d
	}
}

func WithSendTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.sendTimeout = d
	}
}

// Client keeps one connection to the relay. Received envelopes are buffered
// until the frame loop drains them; after a drop the client redials on a
// fixed delay until it succeeds or is closed.
// All shared fields are protected by mu (reads happen on the reader goroutine).
type Client struct {
	mu        sync.RWMutex
	state     ClientState
	lastError error
	transport Transport

	url            string
	peerID         string
	dial           Dialer
	reconnectDelay time.Duration
	sendTimeout    time.Duration

	inbox  chan messages.Envelope
	ctx    context.Context
	cancel context.CancelFunc
	alive  atomic.Bool
	wg     sync.WaitGroup
}

// NewClient prepares a client for the relay at address (host:port). peerID
// is sent to the relay as this client's network id.
func NewClient(address, peerID string, opts ...Option) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		state:          StateDisconnected,
		url:            RelayURL(address, peerID),
		peerID:         peerID,
		dial:           DialWebSocket,
		reconnectDelay: time.Duration(cfg.Net.ReconnectDelaySecs * float64(time.Second)),
		sendTimeout:    time.Duration(cfg.Net.SendTimeoutMillis) * time.Millisecond,
		inbox:          make(chan messages.Envelope, cfg.Net.InboxSize),
		ctx:            ctx,
		cancel:         cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.alive.Store(true)
	return c
}

// RelayURL is the websocket URL a peer dials
func RelayURL(address, peerID string) string {
	return fmt.Sprintf("ws://%s/ws?id=%s", address, url.QueryEscape(peerID))
}

func (c *Client) PeerID() string {
	return c.peerID
}

// Connect dials the relay once. A failure is logged and returned; the
// initial connect is never retried automatically.
func (c *Client) Connect(ctx context.Context) error {
	if !c.alive.Load() {
		return ErrClosed
	}
	c.setState(StateConnecting, nil)

	t, err := c.dial(ctx, c.url)
	if err != nil {
		err = fmt.Errorf("connect to relay: %w", err)
		log.Printf("[client] %v", err)
		c.setState(StateDisconnected, err)
		return err
	}
	if !c.install(t) {
		return ErrClosed
	}
	log.Printf("[client] connected to %s", c.url)
	return nil
}

// install makes t the active transport and starts its reader. It refuses,
// and closes t, once the client is no longer alive.
func (c *Client) install(t Transport) bool {
	c.mu.Lock()
	if !c.alive.Load() {
		c.mu.Unlock()
		_ = t.Close(CloseNormal, "client closed")
		return false
	}
	c.transport = t
	c.state = StateConnected
	c.lastError = nil
	c.wg.Add(1)
	c.mu.Unlock()

	go c.readLoop(t)
	return true
}

func (c *Client) readLoop(t Transport) {
	defer c.wg.Done()
	for {
		data, err := t.Read(c.ctx)
		if err != nil {
			c.dropped(t, err)
			return
		}
		env, err := messages.Decode(data)
		if err != nil {
			log.Printf("[client] dropping malformed frame: %v", err)
			continue
		}
		select {
		case c.inbox <- env:
		default:
			log.Printf("[client] inbox full, dropping %s", env.Type)
		}
	}
}

func (c *Client) dropped(t Transport, err error) {
	c.mu.Lock()
	if c.transport != t {
		c.mu.Unlock()
		return
	}
	c.transport = nil
	if c.state != StateClosed {
		c.state = StateDisconnected
		c.lastError = err
	}
	c.mu.Unlock()

	if !c.alive.Load() {
		return
	}
	log.Printf("[client] connection lost: %v; retrying every %s", err, c.reconnectDelay)
	c.wg.Add(1)
	go c.reconnectLoop()
}

func (c *Client) reconnectLoop() {
	defer c.wg.Done()
	for {
		timer := time.NewTimer(c.reconnectDelay)
		select {
		case <-c.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		if !c.alive.Load() {
			return
		}

		c.setState(StateConnecting, nil)
		t, err := c.dial(c.ctx, c.url)
		if err != nil {
			log.Printf("[client] reconnect failed: %v", err)
			c.setState(StateDisconnected, err)
			continue
		}
		if c.install(t) {
			log.Printf("[client] reconnected to %s", c.url)
		}
		return
	}
}

// Send encodes payload and writes it without waiting for the peer. Writes
// are bounded by the send timeout.
func (c *Client) Send(t messages.Type, payload any) error {
	c.mu.RLock()
	tr := c.transport
	c.mu.RUnlock()
	if tr == nil {
		return ErrNotConnected
	}

	frame, err := messages.Encode(t, payload)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(c.ctx, c.sendTimeout)
	defer cancel()
	if err := tr.Write(ctx, frame); err != nil {
		return fmt.Errorf("send %s: %w", t, err)
	}
	return nil
}

// Drain returns every envelope received since the last call. Non-blocking.
func (c *Client) Drain() []messages.Envelope {
	var out []messages.Envelope
	for {
		select {
		case env := <-c.inbox:
			out = append(out, env)
		default:
			return out
		}
	}
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Close stops reconnecting, closes the active transport and waits for the
// client's goroutines to exit
func (c *Client) Close() error {
	if !c.alive.Swap(false) {
		return nil
	}
	c.cancel()

	c.mu.Lock()
	tr := c.transport
	c.transport = nil
	c.state = StateClosed
	c.mu.Unlock()

	var err error
	if tr != nil {
		err = tr.Close(CloseNormal, "client closed")
	}
	c.wg.Wait()
	return err
}

func (c *Client) setState(s ClientState, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateClosed {
		return
	}
	c.state = s
	if err != nil {
		c.lastError = err
	}
}
