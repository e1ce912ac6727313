package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeWait bounds how long one broadcast may block on a slow client.
const writeWait = 5 * time.Second

// EventMessage is the JSON text frame sent to /events/ws clients.
type EventMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// eventStream subscribes each websocket connection to the service for the
// lifetime of the connection.
type eventStream struct {
	svc      Service
	opts     Options
	upgrader websocket.Upgrader
}

func newEventStream(svc Service, o Options) *eventStream {
	allowed := make(map[string]bool, len(o.CORSOrigins))
	for _, origin := range o.CORSOrigins {
		allowed[origin] = true
	}
	return &eventStream{
		svc:  svc,
		opts: o,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// non-browser clients send no Origin
				return origin == "" || allowed["*"] || allowed[origin] || sameHost(r, origin)
			},
		},
	}
}

func sameHost(r *http.Request, origin string) bool {
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

func (s *eventStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		s.opts.Logger.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := joinContexts(s.opts.BaseContext, r.Context())
	defer cancel()

	var writeMu sync.Mutex
	sub, err := s.svc.Subscribe(func(_ context.Context, msg string) error {
		data, err := json.Marshal(EventMessage{Type: "event", Message: msg})
		if err != nil {
			return err
		}
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			cancel()
			return err
		}
		return nil
	})
	if err != nil {
		s.opts.Logger.Error().Err(err).Msg("websocket subscribe failed")
		return
	}
	wsClients.Inc()
	defer wsClients.Dec()
	s.opts.Logger.Info().Str("subscription", sub.ID.String()).Msg("websocket client subscribed")

	// Reads only detect disconnects; client frames are discarded.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	<-ctx.Done()
	// no broadcast may write after the close frame
	sub.Unsubscribe()
	writeMu.Lock()
	_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	writeMu.Unlock()
	s.opts.Logger.Info().Str("subscription", sub.ID.String()).Msg("websocket client unsubscribed")
}
