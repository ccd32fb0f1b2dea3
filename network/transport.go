package network

//go:generate go tool mockgen -destination=./mocks/transport_mock.go -package=mocks . Transport

import (
	"context"
	"fmt"

	"github.com/coder/websocket"
)

// Close codes passed to Transport.Close
const (
	CloseNormal    int32 = int32(websocket.StatusNormalClosure)
	CloseGoingAway int32 = int32(websocket.StatusGoingAway)
)

// Transport is one open message connection. Each Read returns a whole text
// frame.
type Transport interface {
	Read(ctx context.Context) (data []byte, err error)
	Write(ctx context.Context, data []byte) error
	Close(code int32, reason string) error
}

// Dialer opens a transport to url
type Dialer func(ctx context.Context, url string) (Transport, error)

type wsTransport struct {
	conn *websocket.Conn
}

// NewTransportFrom wraps an accepted or dialed websocket connection
func NewTransportFrom(conn *websocket.Conn) Transport {
	return &wsTransport{conn: conn}
}

// DialWebSocket is the default Dialer
func DialWebSocket(ctx context.Context, url string) (Transport, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewTransportFrom(conn), nil
}

func (t *wsTransport) Read(ctx context.Context) ([]byte, error) {
	_, data, err := t.conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (t *wsTransport) Write(ctx context.Context, data []byte) error {
	return t.conn.Write(ctx, websocket.MessageText, data)
}

func (t *wsTransport) Close(code int32, reason string) error {
	return t.conn.Close(websocket.StatusCode(code), reason)
}
