package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// Manager owns the single process-wide catalog connection slot. The driver
// is created lazily on first use, reused across requests, and discarded on
// operational error so the next call reconnects instead of reusing a broken
// handle. Creation is serialized: concurrent first callers share one
// connect attempt.
type Manager struct {
	factory func() (Driver, error)

	mu     sync.Mutex
	driver Driver
	group  singleflight.Group
}

// NewManager creates a connection manager around the given driver factory.
func NewManager(factory func() (Driver, error)) *Manager {
	return &Manager{factory: factory}
}

// Get returns the shared driver, connecting first if needed.
func (m *Manager) Get(ctx context.Context) (Driver, error) {
	m.mu.Lock()
	driver := m.driver
	m.mu.Unlock()
	if driver != nil {
		return driver, nil
	}

	v, err, _ := m.group.Do("connect", func() (any, error) {
		// A concurrent caller may have connected while we waited.
		m.mu.Lock()
		if m.driver != nil {
			driver := m.driver
			m.mu.Unlock()
			return driver, nil
		}
		m.mu.Unlock()

		driver, err := m.factory()
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to catalog database")
		}

		m.mu.Lock()
		m.driver = driver
		m.mu.Unlock()
		return driver, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v.(Driver), nil
}

// Discard tears down the current driver. The next Get reconnects.
func (m *Manager) Discard() {
	m.mu.Lock()
	driver := m.driver
	m.driver = nil
	m.mu.Unlock()

	if driver == nil {
		return
	}
	if err := driver.Close(); err != nil {
		slog.Warn("failed to close discarded catalog connection", "error", err)
	}
}

// Close releases the driver, if any. Used at shutdown.
func (m *Manager) Close() error {
	m.mu.Lock()
	driver := m.driver
	m.driver = nil
	m.mu.Unlock()

	if driver == nil {
		return nil
	}
	return driver.Close()
}
