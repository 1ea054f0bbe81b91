package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSListener is a Listener backed by a websocket connection. Writes are
// serialised because a gorilla connection supports one concurrent writer.
type WSListener struct {
	id           string
	conn         *websocket.Conn
	writeTimeout time.Duration

	mu        sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// NewWSListener wraps conn. writeTimeout bounds every write.
func NewWSListener(conn *websocket.Conn, writeTimeout time.Duration) *WSListener {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &WSListener{id: uuid.NewString(), conn: conn, writeTimeout: writeTimeout}
}

// ID returns the listener's unique identifier.
func (l *WSListener) ID() string { return l.id }

// Send writes msg as a text frame.
func (l *WSListener) Send(ctx context.Context, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.conn.SetWriteDeadline(l.deadline(ctx)); err != nil {
		return err
	}
	return l.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

// Ping writes a ping control frame.
func (l *WSListener) Ping() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn.WriteControl(websocket.PingMessage, nil, l.deadline(context.Background()))
}

// Close closes the underlying connection once.
func (l *WSListener) Close() error {
	l.closeOnce.Do(func() { l.closeErr = l.conn.Close() })
	return l.closeErr
}

// ReadLoop discards inbound messages until the connection fails or closes.
func (l *WSListener) ReadLoop() error {
	for {
		if _, _, err := l.conn.ReadMessage(); err != nil {
			return err
		}
	}
}

func (l *WSListener) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(l.writeTimeout)
	if cd, ok := ctx.Deadline(); ok && cd.Before(d) {
		return cd
	}
	return d
}
