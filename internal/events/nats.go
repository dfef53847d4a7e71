package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"frota/internal/logger"
)

// Connect dials NATS with the reconnect policy used by the API server.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("frota-api"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return nc, nil
}

// NATSBus is a Bus backed by a NATS connection.
type NATSBus struct {
	nc  *nats.Conn
	log *zap.SugaredLogger
}

// NewNATSBus wraps an established connection.
func NewNATSBus(nc *nats.Conn) *NATSBus {
	return &NATSBus{nc: nc, log: logger.Named("events")}
}

// Publish sends each change to its tenant table subject.
func (b *NATSBus) Publish(changes ...Change) {
	for _, c := range changes {
		data, err := json.Marshal(c)
		if err != nil {
			b.log.Errorw("failed to marshal change", "error", err, "table", c.Table)
			continue
		}
		if err := b.nc.Publish(Subject(c.TenantID, c.Table), data); err != nil {
			b.log.Warnw("failed to publish change",
				"error", err,
				"tenant_id", c.TenantID,
				"table", c.Table,
				"record_id", c.RecordID,
			)
		}
	}
}

// Subscribe delivers matching changes to fn on the NATS callback goroutine.
func (b *NATSBus) Subscribe(tenantID string, tables []string, filter Filter, fn func(Change)) (Subscription, error) {
	if len(tables) == 0 {
		tables = []string{""}
	}

	handler := func(msg *nats.Msg) {
		var c Change
		if err := json.Unmarshal(msg.Data, &c); err != nil {
			b.log.Warnw("dropping malformed change", "error", err, "subject", msg.Subject)
			return
		}
		if filter != nil && !filter(c) {
			return
		}
		fn(c)
	}

	group := &subscriptionGroup{}
	for _, table := range tables {
		sub, err := b.nc.Subscribe(Subject(tenantID, table), handler)
		if err != nil {
			_ = group.Unsubscribe()
			return nil, fmt.Errorf("subscribe %s: %w", Subject(tenantID, table), err)
		}
		group.subs = append(group.subs, sub)
	}
	if err := b.nc.Flush(); err != nil {
		_ = group.Unsubscribe()
		return nil, fmt.Errorf("flush subscriptions: %w", err)
	}
	return group, nil
}

type subscriptionGroup struct {
	subs []*nats.Subscription
}

func (g *subscriptionGroup) Unsubscribe() error {
	var firstErr error
	for _, s := range g.subs {
		if err := s.Unsubscribe(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
