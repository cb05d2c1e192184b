package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Monitor probes the document store on a fixed schedule and keeps the
// latest result available for the health endpoint.
type Monitor struct {
	client *mongo.Client

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func New(client *mongo.Client, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		client:   client,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger,
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	_, _ = m.cron.AddFunc(schedule, m.refresh)

	return m
}

func (m *Monitor) Start() {
	m.refresh()
	m.cron.Start()
}

func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.MongoDB
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) refresh() {
	status := Status{
		MongoDB:   m.checkMongo(),
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()

	if !status.MongoDB {
		m.logger.Warn("document store unreachable")
	}
}

func (m *Monitor) checkMongo() bool {
	if m.client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary()) == nil
}
