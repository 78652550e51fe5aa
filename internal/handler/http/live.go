package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/endpoints"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/internal/logger"
	"github.com/MKhiriev/go-finchers/output"
)

const (
	liveHandshakeTimeout = 10 * time.Second
	liveWriteWait        = 5 * time.Second
)

const liveSegment = "live"

// liveNotes streams every note event to a websocket client as JSON. A GET
// without the handshake is answered with 426.
func (h *Handler) liveNotes() endpoint.Endpoint[output.Output] {
	ws := endpoints.WebSocket(endpoints.WebSocketOptions{HandshakeTimeout: liveHandshakeTimeout})
	upgradeRequired := httperr.WithHeader(
		httperr.New(http.StatusUpgradeRequired, ErrUpgradeRequired),
		"Upgrade", "websocket",
	)

	return endpoint.With(endpoint.Path("/notes/live/"), endpoint.OrStrict(
		endpoint.Get(endpoint.Map(ws, func(u *endpoints.Upgrade) output.Output {
			return u.On(h.streamNotes)
		})),
		endpoint.With(endpoint.Get(endpoint.Unit()), endpoint.Reject[output.Output](upgradeRequired)),
	))
}

func (h *Handler) streamNotes(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events, err := h.services.Feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Debug().Msg("live feed subscriber connected")

	// clients only send control frames; reading is what notices them leave
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("live feed subscriber left")
			return nil
		case event, ok := <-events:
			if !ok {
				return conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "feed closed"),
					time.Now().Add(liveWriteWait))
			}

			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err = conn.WriteJSON(event); err != nil {
				return err
			}
		}
	}
}
