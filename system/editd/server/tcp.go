package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

// TCPListener accepts agent connections and runs one JSON-RPC
// connection per TCP connection.
type TCPListener struct {
	listener net.Listener
	server   *Server

	conns   map[int64]net.Conn
	connsMu sync.Mutex
	connSeq atomic.Int64

	done   chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

// NewTCPListener creates a new TCP listener.
func NewTCPListener(addr string, server *Server) (*TCPListener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &TCPListener{
		listener: listener,
		server:   server,
		conns:    make(map[int64]net.Conn),
		done:     make(chan struct{}),
	}, nil
}

// Addr returns the listener's network address.
func (l *TCPListener) Addr() net.Addr {
	return l.listener.Addr()
}

// Serve accepts connections until Close is called.
func (l *TCPListener) Serve(ctx context.Context) error {
	l.server.Spec.Log.Info("TCP listener started", "addr", l.listener.Addr().String())

	for {
		conn, err := l.listener.Accept()
		if err != nil {
			if l.closed.Load() {
				return nil // Normal shutdown
			}
			l.server.Spec.Log.Error("accept error", "error", err)
			continue
		}

		l.wg.Add(1)
		go l.handleConnection(ctx, conn)
	}
}

func (l *TCPListener) handleConnection(ctx context.Context, conn net.Conn) {
	defer l.wg.Done()

	seq := l.connSeq.Add(1)
	id := fmt.Sprintf("tcp-%d", seq)
	l.server.Spec.Log.Debug("new TCP connection", "conn", id, "remote", conn.RemoteAddr().String())

	l.connsMu.Lock()
	l.conns[seq] = conn
	l.connsMu.Unlock()

	if err := l.server.ServeStream(ctx, conn); err != nil {
		l.server.Spec.Log.Error("connection error", "conn", id, "error", err)
	}

	l.connsMu.Lock()
	delete(l.conns, seq)
	l.connsMu.Unlock()

	l.server.Spec.Log.Debug("connection closed", "conn", id)
}

// Close shuts down the listener, closes active connections, and waits
// for their handlers to return.
func (l *TCPListener) Close() error {
	if l.closed.Swap(true) {
		return nil // Already closed
	}

	close(l.done)

	err := l.listener.Close()

	l.connsMu.Lock()
	for _, conn := range l.conns {
		conn.Close()
	}
	l.connsMu.Unlock()

	l.wg.Wait()
	return err
}
