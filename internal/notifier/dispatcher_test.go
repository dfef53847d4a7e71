package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"
)

type fakePipeline struct {
	pending    []Notification
	pendingErr error
	limit      int
	sent       []string
	failed     map[string]string
	markErr    error
}

func (f *fakePipeline) GetPending(_ context.Context, limit int) ([]Notification, error) {
	f.limit = limit
	return f.pending, f.pendingErr
}

func (f *fakePipeline) MarkSent(_ context.Context, id string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakePipeline) MarkFailed(_ context.Context, id, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeMailer struct {
	sent  []Message
	errTo map[string]error
}

func (m *fakeMailer) Send(_ context.Context, msg Message) error {
	if err := m.errTo[msg.To]; err != nil {
		return err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testConfig() *Config {
	return &Config{CompanyName: "Frota", BatchSize: 5, RateLimit: rate.Inf, RateBurst: 1}
}

func pendingBatch() []Notification {
	return []Notification{
		{ID: "n1", RecipientEmail: "ana@example.com", VehiclePlate: "ABC1D23", EstimatedAmount: 45000},
		{ID: "n2", RecipientEmail: "bounce@example.com", VehiclePlate: "DEF2G34"},
		{ID: "n3", VehiclePlate: "HIJ3K45"},
		{ID: "n4", RecipientEmail: "rui@example.com", VehiclePlate: "LMN4O56"},
	}
}

func TestDispatcher_Run(t *testing.T) {
	pipeline := &fakePipeline{pending: pendingBatch()}
	mailer := &fakeMailer{errTo: map[string]error{"bounce@example.com": errors.New("550 mailbox unavailable")}}

	d := NewDispatcher(pipeline, mailer, testConfig(), zaptest.NewLogger(t).Sugar())
	result, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, pipeline.limit)
	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)

	assert.Equal(t, []string{"n1", "n4"}, pipeline.sent)
	assert.Equal(t, "550 mailbox unavailable", pipeline.failed["n2"])
	assert.Contains(t, pipeline.failed["n3"], "no recipient")
	require.Len(t, mailer.sent, 2)
	assert.Contains(t, mailer.sent[0].HTML, "R$ 450,00")
}

func TestDispatcher_DryRun(t *testing.T) {
	pipeline := &fakePipeline{pending: pendingBatch()[:2]}
	cfg := testConfig()
	cfg.DryRun = true

	d := NewDispatcher(pipeline, nil, cfg, zaptest.NewLogger(t).Sugar())
	result, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Skipped)
	assert.Zero(t, result.Sent)
	assert.Empty(t, pipeline.sent)
	assert.Empty(t, pipeline.failed)
}

func TestDispatcher_NothingPending(t *testing.T) {
	d := NewDispatcher(&fakePipeline{}, &fakeMailer{}, testConfig(), zaptest.NewLogger(t).Sugar())
	result, err := d.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Fetched)
}

func TestDispatcher_FetchError(t *testing.T) {
	pipeline := &fakePipeline{pendingErr: errors.New("connection refused")}
	d := NewDispatcher(pipeline, &fakeMailer{}, testConfig(), zaptest.NewLogger(t).Sugar())

	_, err := d.Run(context.Background())
	assert.Error(t, err)
}

func TestDispatcher_ReportFailureKeepsSentCount(t *testing.T) {
	pipeline := &fakePipeline{pending: pendingBatch()[:1], markErr: errors.New("unexpected status 500")}
	mailer := &fakeMailer{}

	d := NewDispatcher(pipeline, mailer, testConfig(), zaptest.NewLogger(t).Sugar())
	result, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "n1", result.Errors[0].NotificationID)
}

func TestDispatcher_StopsWhenContextEnds(t *testing.T) {
	pipeline := &fakePipeline{pending: pendingBatch()}
	cfg := testConfig()
	cfg.RateLimit = rate.Limit(0.001)

	ctx, cancel := context.WithCancel(context.Background())
	mailer := &cancelAfterFirst{cancel: cancel}

	d := NewDispatcher(pipeline, mailer, cfg, zaptest.NewLogger(t).Sugar())
	result, err := d.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, mailer.calls)
}

// cancelAfterFirst cancels the run once the first email is out.
type cancelAfterFirst struct {
	cancel context.CancelFunc
	calls  int
}

func (m *cancelAfterFirst) Send(_ context.Context, _ Message) error {
	m.calls++
	m.cancel()
	return nil
}
