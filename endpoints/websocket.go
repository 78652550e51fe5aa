package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/output"
	"github.com/gorilla/websocket"
)

// WebSocketOptions configures the upgrade performed by [WebSocket].
type WebSocketOptions struct {
	ReadBufferSize  int
	WriteBufferSize int

	// HandshakeTimeout bounds the upgrade handshake.
	HandshakeTimeout time.Duration

	// Subprotocols lists the supported protocols in order of preference.
	Subprotocols []string

	// CheckOrigin validates the Origin header. When nil, only same-host
	// origins (or requests without Origin) are accepted.
	CheckOrigin func(r *http.Request) bool

	EnableCompression bool
}

// Upgrade is the value yielded by [WebSocket]. Call On to turn it into the
// response performing the upgrade.
type Upgrade struct {
	upgrader *websocket.Upgrader
	header   http.Header
}

// WebSocket matches WebSocket handshake requests and yields an *Upgrade.
// Other requests do not match.
func WebSocket(opts WebSocketOptions) endpoint.Endpoint[*Upgrade] {
	upgrader := &websocket.Upgrader{
		ReadBufferSize:    opts.ReadBufferSize,
		WriteBufferSize:   opts.WriteBufferSize,
		HandshakeTimeout:  opts.HandshakeTimeout,
		Subprotocols:      opts.Subprotocols,
		CheckOrigin:       opts.CheckOrigin,
		EnableCompression: opts.EnableCompression,
	}

	return endpoint.Func[*Upgrade](func(cx *endpoint.Context) (action.Action[*Upgrade], error) {
		if !websocket.IsWebSocketUpgrade(cx.Request()) {
			return nil, endpoint.NotMatched()
		}
		return action.Ready(&Upgrade{upgrader: upgrader, header: make(http.Header)}), nil
	})
}

// Header returns the headers sent with the handshake response.
func (u *Upgrade) Header() http.Header {
	return u.header
}

// On returns the output which upgrades the connection and runs handler
// with it. The connection is closed when handler returns. ctx is canceled
// when the request context is.
func (u *Upgrade) On(handler func(ctx context.Context, conn *websocket.Conn) error) output.Output {
	return output.Func(func(w http.ResponseWriter, r *http.Request) error {
		conn, err := u.upgrader.Upgrade(w, r, u.header)
		if err != nil {
			// the upgrader has already replied with an error status
			return nil
		}
		defer conn.Close()

		if err = handler(r.Context(), conn); err != nil {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, ""),
				time.Now().Add(time.Second))
			return fmt.Errorf("websocket handler: %w", err)
		}
		return nil
	})
}
