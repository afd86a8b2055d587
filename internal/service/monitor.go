package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/taxpadi/tax-service/internal/repository"
)

// HealthMonitor probes the result store on a schedule and remembers
// the last observed state for the health endpoint. Transitions are
// logged once, not on every probe.
type HealthMonitor struct {
	store *repository.ResultStore
	log   *logrus.Logger
	cron  *cron.Cron

	mu      sync.RWMutex
	storeUp bool
}

// NewHealthMonitor initializes a monitor for the given store.
func NewHealthMonitor(store *repository.ResultStore, log *logrus.Logger) *HealthMonitor {
	return &HealthMonitor{
		store: store,
		log:   log,
		cron:  cron.New(),
	}
}

// Start probes once immediately and then every minute.
func (m *HealthMonitor) Start() error {
	if _, err := m.cron.AddFunc("@every 1m", m.probe); err != nil {
		return err
	}
	m.probe()
	m.cron.Start()
	return nil
}

// Stop halts the probe schedule.
func (m *HealthMonitor) Stop() {
	m.cron.Stop()
}

// StoreUp reports the last observed store state.
func (m *HealthMonitor) StoreUp() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storeUp
}

func (m *HealthMonitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.store.Ping(ctx)
	up := err == nil

	m.mu.Lock()
	changed := up != m.storeUp
	m.storeUp = up
	m.mu.Unlock()

	if changed {
		if up {
			m.log.Info("Result store is reachable")
		} else {
			m.log.Warnf("Result store is unreachable: %v", err)
		}
	}
}
