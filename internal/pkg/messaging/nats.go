package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

var (
	ErrNATSURLRequired     = errors.New("messaging: nats url is required")
	ErrNATSSubjectRequired = errors.New("messaging: nats subject is required")
	ErrHandlerRequired     = errors.New("messaging: handler is required")
	ErrClosed              = errors.New("messaging: client closed")
)

const drainWait = 5 * time.Second

// NATSConfig configures the NATS client.
type NATSConfig struct {
	URL     string
	Options []nats.Option
}

// NATS implements Messaging on core NATS subjects.
type NATS struct {
	conn *nats.Conn

	mu     sync.Mutex
	closed bool
}

// NewNATS connects to cfg.URL.
func NewNATS(cfg NATSConfig) (*NATS, error) {
	if cfg.URL == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(cfg.URL, cfg.Options...)
	if err != nil {
		return nil, fmt.Errorf("messaging: nats connect: %w", err)
	}

	return &NATS{conn: conn}, nil
}

// Close drains every subscription and closes the connection.
func (n *NATS) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil
	}
	n.closed = true

	return n.conn.Drain()
}

func (n *NATS) isClosed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Publish sends msg on the destination subject and flushes.
func (n *NATS) Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	if destination == "" {
		return PublishResult{}, ErrNATSSubjectRequired
	}
	if n.isClosed() {
		return PublishResult{}, ErrClosed
	}

	if err := n.conn.PublishMsg(toNATSMsg(destination, msg)); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats publish: %w", err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return PublishResult{}, fmt.Errorf("messaging: nats flush: %w", err)
	}

	return PublishResult{Topic: destination, Timestamp: time.Now()}, nil
}

// Consume queue-subscribes to source and blocks until ctx is done.
func (n *NATS) Consume(ctx context.Context, source string, handler Handler, opts ...ConsumeOption) error {
	if source == "" {
		return ErrNATSSubjectRequired
	}
	if handler == nil {
		return ErrHandlerRequired
	}
	if n.isClosed() {
		return ErrClosed
	}

	co := newConsumeOptions(opts...)
	inbox := newNATSInbox(co.concurrency)

	sub, err := n.conn.QueueSubscribe(source, co.group, func(m *nats.Msg) {
		inbox.deliver(ctx, m)
	})
	if err != nil {
		return fmt.Errorf("messaging: nats subscribe: %w", err)
	}

	var wg sync.WaitGroup
	for range co.concurrency {
		wg.Go(func() {
			for m := range inbox.ch {
				if err := dispatch(ctx, "nats", handler, newNATSMessage(m, time.Now()), co.autoAck); err != nil {
					slog.WarnContext(ctx, "nats handler failed", "subject", source, "error", err)
				}
			}
		})
	}

	<-ctx.Done()

	derr := sub.Drain()
	for deadline := time.Now().Add(drainWait); sub.IsValid() && time.Now().Before(deadline); {
		time.Sleep(10 * time.Millisecond)
	}
	inbox.close()
	wg.Wait()

	return errors.Join(ctx.Err(), derr)
}

// natsInbox hands subscription callbacks to the worker pool. Drain may
// still run callbacks after drainWait expires; once closed, those messages
// are dropped rather than sent on a closed channel.
type natsInbox struct {
	mu     sync.RWMutex
	closed bool
	ch     chan *nats.Msg
}

func newNATSInbox(size int) *natsInbox {
	return &natsInbox{ch: make(chan *nats.Msg, size)}
}

// deliver blocks until a worker has room or ctx is done. close waits for
// in-flight deliveries, which return promptly once ctx is canceled.
func (b *natsInbox) deliver(ctx context.Context, m *nats.Msg) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}

	select {
	case b.ch <- m:
		return true
	case <-ctx.Done():
		return false
	}
}

func (b *natsInbox) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.ch)
	}
}

func toNATSMsg(subject string, msg OutgoingMessage) *nats.Msg {
	m := nats.NewMsg(subject)
	m.Data = msg.Body
	for _, h := range msg.Headers {
		if h.Key != "" {
			m.Header.Add(h.Key, string(h.Value))
		}
	}
	return m
}
