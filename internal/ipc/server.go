package ipc

import (
	"bufio"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/axwm/axwm/internal/metrics"
	"github.com/axwm/axwm/pkg/protocol"
)

// socketDeadline bounds every read and write on an accepted connection
// (spec.md §5: "Socket reads: 1-second read/write deadline").
const socketDeadline = time.Second

// Server listens on a UNIX-domain socket and handles one pkg/protocol
// SocketMessage per connection: it decodes the first line, hands it to a
// Dispatcher and closes the connection; any later lines on the same
// connection are not read. Queries get a JSON response before the
// connection closes; mutations get no response (spec.md §6's response
// discipline).
type Server struct {
	SocketPath string
	Dispatcher *Dispatcher
	Logger     *logrus.Entry
	Metrics    *metrics.Registry // optional; nil disables drop counters

	listener net.Listener
}

// Listen binds the UNIX socket, removing any stale socket file left behind
// by a prior, uncleanly-terminated process.
func (s *Server) Listen() error {
	if err := os.MkdirAll(filepath.Dir(s.SocketPath), 0o755); err != nil {
		return err
	}
	if err := os.Remove(s.SocketPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	l, err := net.Listen("unix", s.SocketPath)
	if err != nil {
		return err
	}
	s.listener = l
	return nil
}

// Serve accepts connections until ctx is canceled, at which point the
// listener is closed and Serve returns.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.listener.Close()
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(socketDeadline))
	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}
	line := scanner.Bytes()

	msg, err := protocol.Decode(line)
	if err != nil {
		s.Logger.WithError(err).Warn("ipc: dropping malformed socket message")
		return
	}

	resp, isQuery, err := s.Dispatcher.Dispatch(msg)
	if err != nil {
		if errors.Is(err, ErrLockBudgetExceeded) {
			s.Logger.WithField("kind", msg.Kind).Warn("ipc: command dropped, topology locked beyond budget")
			if s.Metrics != nil {
				s.Metrics.CommandsDropped.WithLabelValues(string(msg.Kind)).Inc()
			}
		} else {
			s.Logger.WithError(err).WithField("kind", msg.Kind).Warn("ipc: command dispatch failed")
		}
		return
	}

	if !isQuery {
		return
	}

	conn.SetWriteDeadline(time.Now().Add(socketDeadline))
	if _, err := conn.Write(append(resp, '\n')); err != nil {
		s.Logger.WithError(err).Warn("ipc: failed writing query response")
	}
}

// Close releases the listener and removes the socket file.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}
	err := s.listener.Close()
	os.Remove(s.SocketPath)
	return err
}
