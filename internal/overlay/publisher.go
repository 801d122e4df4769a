package overlay

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// upgrader mirrors the teacher's development-mode websocket upgrade: any
// origin is accepted since the overlay feed is a local-machine renderer,
// never a browser client crossing an origin boundary.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Publisher fans Frame snapshots out to every subscribed renderer over a
// websocket connection. Push writes to the subscribers one after another
// with no write deadline, so a slow subscriber delays Push until its write
// completes or fails; a subscriber whose write fails is dropped.
type Publisher struct {
	logger *logrus.Entry

	mu   sync.Mutex
	subs map[*websocket.Conn]struct{}
}

func NewPublisher(logger *logrus.Entry) *Publisher {
	return &Publisher{logger: logger, subs: make(map[*websocket.Conn]struct{})}
}

// Subscribe upgrades r into a websocket connection and registers it for
// future Push calls until the connection errors or closes.
func (p *Publisher) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.logger.WithError(err).Warn("overlay: websocket upgrade failed")
		return
	}

	p.mu.Lock()
	p.subs[conn] = struct{}{}
	p.mu.Unlock()

	// Drain and discard any client-sent frames (renderers are
	// receive-only) purely to notice the connection closing.
	go func() {
		defer p.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (p *Publisher) remove(conn *websocket.Conn) {
	p.mu.Lock()
	delete(p.subs, conn)
	p.mu.Unlock()
	conn.Close()
}

// Push marshals frame as JSON and writes it to every current subscriber,
// dropping any connection that errors on write.
func (p *Publisher) Push(frame Frame) {
	p.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(p.subs))
	for c := range p.subs {
		conns = append(conns, c)
	}
	p.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(frame); err != nil {
			p.logger.WithError(err).Debug("overlay: dropping subscriber after write error")
			p.remove(conn)
		}
	}
}
