package core_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/shapefighter/network"
	"github.com/automoto/shapefighter/server/core"
	"github.com/automoto/shapefighter/shared/messages"
)

func startRelay(t *testing.T, maxPeers int) (*core.Server, string) {
	t.Helper()
	srv := core.NewServer(maxPeers, time.Hour)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, strings.TrimPrefix(ts.URL, "http://")
}

func connect(t *testing.T, addr, id string) *network.Client {
	t.Helper()
	c := network.NewClient(addr, id, network.WithReconnectDelay(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect %s: %v", id, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// collect drains c until n envelopes arrived or the deadline passes
func collect(t *testing.T, c *network.Client, n int) []messages.Envelope {
	t.Helper()
	var got []messages.Envelope
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < n && time.Now().Before(deadline) {
		got = append(got, c.Drain()...)
		time.Sleep(5 * time.Millisecond)
	}
	if len(got) < n {
		t.Fatalf("received %d envelopes, want %d: %+v", len(got), n, got)
	}
	return got
}

func joinedIDs(t *testing.T, envs []messages.Envelope) []string {
	t.Helper()
	var ids []string
	for _, env := range envs {
		if env.Type != messages.TypePlayerJoin {
			t.Fatalf("unexpected %s", env.Type)
		}
		join, err := messages.Payload[messages.PlayerJoin](env)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, join.PlayerID)
	}
	return ids
}

func TestRelayAnnouncesPeersInArrivalOrder(t *testing.T) {
	srv, addr := startRelay(t, 2)

	a := connect(t, addr, "peer-a")
	if ids := joinedIDs(t, collect(t, a, 1)); ids[0] != "peer-a" {
		t.Fatalf("a saw %v", ids)
	}

	b := connect(t, addr, "peer-b")
	if ids := joinedIDs(t, collect(t, b, 2)); ids[0] != "peer-a" || ids[1] != "peer-b" {
		t.Errorf("b saw %v, want [peer-a peer-b]", ids)
	}
	if ids := joinedIDs(t, collect(t, a, 1)); ids[0] != "peer-b" {
		t.Errorf("a saw %v, want [peer-b]", ids)
	}
	if got := srv.PeerIDs(); len(got) != 2 || got[0] != "peer-a" {
		t.Errorf("peer ids = %v", got)
	}
}

func TestRelayForwardsStateToOthersOnly(t *testing.T) {
	_, addr := startRelay(t, 2)
	a := connect(t, addr, "peer-a")
	collect(t, a, 1)
	b := connect(t, addr, "peer-b")
	collect(t, b, 2)
	collect(t, a, 1)

	state := messages.GameState{Players: []messages.PlayerState{{ID: "peer-a", Name: "Player 1", X: 10, Y: 20, Health: 90, Stamina: 80}}}
	if err := a.Send(messages.TypeGameState, state); err != nil {
		t.Fatal(err)
	}
	if err := a.Send(messages.TypePlayerJoin, messages.PlayerJoin{PlayerID: "spoofed"}); err != nil {
		t.Fatal(err)
	}

	got := collect(t, b, 1)
	if got[0].Type != messages.TypeGameState {
		t.Fatalf("b got %s", got[0].Type)
	}
	decoded, err := messages.Payload[messages.GameState](got[0])
	if err != nil || len(decoded.Players) != 1 || decoded.Players[0].Health != 90 {
		t.Errorf("state = %+v, %v", decoded, err)
	}

	time.Sleep(50 * time.Millisecond)
	if extra := append(a.Drain(), b.Drain()...); len(extra) != 0 {
		t.Errorf("unexpected envelopes: %+v", extra)
	}
}

func TestRelayAnnouncesLeave(t *testing.T) {
	srv, addr := startRelay(t, 2)
	a := connect(t, addr, "peer-a")
	collect(t, a, 1)
	b := connect(t, addr, "peer-b")
	collect(t, a, 1)

	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	got := collect(t, a, 1)
	leave, err := messages.Payload[messages.PlayerLeave](got[0])
	if got[0].Type != messages.TypePlayerLeave || err != nil || leave.PlayerID != "peer-b" {
		t.Errorf("a got %s %+v", got[0].Type, leave)
	}
	if n := srv.PeerCount(); n != 1 {
		t.Errorf("peer count = %d, want 1", n)
	}
}

func TestRelayRejectsWhenFull(t *testing.T) {
	srv, addr := startRelay(t, 1)
	a := connect(t, addr, "peer-a")
	collect(t, a, 1)

	c := network.NewClient(addr, "peer-c", network.WithReconnectDelay(time.Hour))
	defer c.Close()
	_ = c.Connect(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for c.State() == network.StateConnected && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if c.State() == network.StateConnected {
		t.Error("extra peer stayed connected")
	}
	if n := srv.PeerCount(); n != 1 {
		t.Errorf("peer count = %d, want 1", n)
	}
	if extra := a.Drain(); len(extra) != 0 {
		t.Errorf("a heard about rejected peer: %+v", extra)
	}
}
