package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maan-homes/accounts-api/internal/core/ports"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []ports.Email
	failures int
}

func (m *recordingMailer) Send(_ context.Context, msg ports.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func waitForSent(t *testing.T, m *recordingMailer, want int, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.sentCount() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d deliveries, got %d", want, m.sentCount())
}

func TestDispatcher_Delivers(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Email{To: "a@b.com", Subject: "hi", Template: "welcome"})
	d.Enqueue(ports.Email{To: "c@d.com", Subject: "hi", Template: "welcome"})

	waitForSent(t, mailer, 2, 2*time.Second)
}

func TestDispatcher_OrderPerRecipient(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewDispatcher(4, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	subjects := []string{"first", "second", "third"}
	for _, s := range subjects {
		d.Enqueue(ports.Email{To: "a@b.com", Subject: s, Template: "welcome"})
	}

	waitForSent(t, mailer, len(subjects), 2*time.Second)

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	for i, s := range subjects {
		if mailer.sent[i].Subject != s {
			t.Fatalf("messages to one recipient reordered: %+v", mailer.sent)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("a@b.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("a@b.com") != first {
			t.Fatalf("shard index not stable for a fixed recipient")
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_RetriesTransientFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("retry backoff sleeps")
	}

	mailer := &recordingMailer{failures: 1}
	d := NewDispatcher(1, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Email{To: "a@b.com", Subject: "hi", Template: "welcome"})

	// One failure then success on the second attempt after the backoff.
	waitForSent(t, mailer, 1, 5*time.Second)
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingMailer{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
