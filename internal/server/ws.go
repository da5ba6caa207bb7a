package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	. "TurtleAdventure/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMsg struct {
	Type string `json:"type"`
	// click
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
}

type liveConn struct {
	conn     *websocket.Conn
	simTick  *time.Ticker
	sendTick *time.Ticker
}

// sessionConfigFromQuery layers per-connection query overrides on top of the
// server defaults. Unparseable or absent values leave the base untouched.
func sessionConfigFromQuery(base Config, q url.Values) Config {
	if v, err := strconv.ParseFloat(q.Get("w"), 64); err == nil {
		base.ArenaW = v
	}
	if v, err := strconv.ParseFloat(q.Get("h"), 64); err == nil {
		base.ArenaH = v
	}
	if v, err := strconv.Atoi(q.Get("level")); err == nil {
		base.Level = v
	}
	if v, err := strconv.ParseFloat(q.Get("speed"), 64); err == nil {
		base.PlayerSpeed = v
	}
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		base.Seed = v
	}
	return base
}

// serveWS runs one player's connection: it drives the session's simulation at
// the tick rate, pushes state frames at the update rate, and applies click and
// restart messages from the client. The sim itself stays free of net bits.
func serveWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	cfg := sessionConfigFromQuery(h.Base, r.URL.Query())
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = RandId("s")
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		simTick:  time.NewTicker(TickMillis * time.Millisecond),
		sendTick: time.NewTicker(time.Duration(1000.0/UpdateRateHz) * time.Millisecond),
	}

	sess := h.GetSession(sessionID, cfg)
	if !sess.Attach() {
		_ = conn.WriteJSON(map[string]any{"type": "busy", "message": "session already has a player"})
		lc.simTick.Stop()
		lc.sendTick.Stop()
		conn.Close()
		return
	}
	log.Printf("session %s connected", sess.ID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_ = conn.WriteJSON(joinedMsg{Type: "joined", Session: sess.ID})

	// Reader
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var m wsMsg
			if err := json.Unmarshal(data, &m); err != nil {
				continue
			}
			switch m.Type {
			case "click":
				g := sess.Current()
				aw, ah := g.ArenaSize()
				g.Click(Clamp(m.X, 0, aw), Clamp(m.Y, 0, ah))
			case "restart":
				sess.Restart()
				log.Printf("session %s restarted", sess.ID)
			}
		}
	}()

	// Simulation drive and state push
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.simTick.C:
				sess.Current().Tick()
			case <-lc.sendTick.C:
				g := sess.Current()
				_ = conn.WriteJSON(stateMsgFrom(sess.ID, g.Snapshot()))
			}
		}
	}()

	// Cleanup
	<-ctx.Done()
	lc.simTick.Stop()
	lc.sendTick.Stop()
	conn.Close()
	sess.Detach()
	log.Printf("session %s disconnected", sess.ID)
}
