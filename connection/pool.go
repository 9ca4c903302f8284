package connection

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// DefaultPort is the port a robot serves its API on when the caller names
// only a host.
const DefaultPort = "26400"

var (
	poolMu sync.Mutex
	pool   = map[string]*Connection{}
)

// CanonicalTarget normalizes a caller-supplied target to "host:port",
// appending the default port when none is given. Two spellings of the same
// robot share one pool entry.
func CanonicalTarget(target string) string {
	if !strings.Contains(target, ":") {
		return target + ":" + DefaultPort
	}
	return target
}

// Acquire returns the pooled connection for the target, creating it on first
// use. Options apply only when the connection is created; later callers get
// the existing handle unchanged. A new handle has its transport materialized
// before Acquire returns; the robot itself may still be unreachable.
func Acquire(target string, opts ...Option) *Connection {
	key := CanonicalTarget(target)
	poolMu.Lock()
	conn, ok := pool[key]
	if !ok {
		conn = newConnection(key, opts...)
		pool[key] = conn
	}
	poolMu.Unlock()

	if !ok {
		ctx, cancel := context.WithTimeout(context.Background(), conn.timeout)
		defer cancel()
		if _, err := conn.Client(ctx); err != nil {
			conn.logger.Warnw("transport setup failed", "target", key, "error", err)
		}
	}
	return conn
}

// Remove closes and evicts the pooled connection for the target, if any.
func Remove(target string) error {
	key := CanonicalTarget(target)
	poolMu.Lock()
	conn, ok := pool[key]
	delete(pool, key)
	poolMu.Unlock()
	if !ok {
		return nil
	}
	return conn.Close()
}

// Clear closes and evicts every pooled connection, combining close errors.
func Clear() error {
	poolMu.Lock()
	conns := make([]*Connection, 0, len(pool))
	for _, conn := range pool {
		conns = append(conns, conn)
	}
	pool = map[string]*Connection{}
	poolMu.Unlock()

	var err error
	for _, conn := range conns {
		err = multierr.Combine(err, conn.Close())
	}
	return err
}
