package amqp

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/mmynk/tripmate/internal/storage"
)

// recordingAck captures how a delivery was settled.
type recordingAck struct {
	acked, nacked, requeued bool
	err                     error
}

func (a *recordingAck) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return a.err
}

func (a *recordingAck) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return a.err
}

func (a *recordingAck) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestHandleDelivery(t *testing.T) {
	valid, err := NewChangeMessage(storage.Change{Collection: storage.CollectionExpenses, Op: storage.OpCreate, ID: "e1"}).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	tests := []struct {
		name        string
		body        []byte
		handlerErr  error
		wantAck     bool
		wantNack    bool
		wantRequeue bool
		wantHandled bool
	}{
		{name: "success acks", body: valid, wantAck: true, wantHandled: true},
		{name: "handler error requeues", body: valid, handlerErr: errors.New("busy"), wantNack: true, wantRequeue: true, wantHandled: true},
		{name: "bad JSON is dropped", body: []byte("{not json"), wantNack: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &recordingAck{}
			handled := false
			err := handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: ack, Body: tt.body}, func(msg *ChangeMessage) error {
				handled = true
				if msg.ID != "e1" {
					t.Errorf("msg.ID = %s, want e1", msg.ID)
				}
				return tt.handlerErr
			})
			if err != nil {
				t.Errorf("handleDelivery() error = %v", err)
			}

			if handled != tt.wantHandled {
				t.Errorf("handled = %v, want %v", handled, tt.wantHandled)
			}
			if ack.acked != tt.wantAck || ack.nacked != tt.wantNack || ack.requeued != tt.wantRequeue {
				t.Errorf("ack = %+v, want acked=%v nacked=%v requeued=%v", *ack, tt.wantAck, tt.wantNack, tt.wantRequeue)
			}
		})
	}
}

func TestHandleDelivery_SettleError(t *testing.T) {
	valid, err := NewChangeMessage(storage.Change{Collection: storage.CollectionItinerary, Op: storage.OpDelete, ID: "i1"}).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	channelClosed := errors.New("channel closed")

	tests := []struct {
		name       string
		body       []byte
		handlerErr error
		errorText  string
	}{
		{name: "ack fails", body: valid, errorText: "ack message"},
		{name: "requeue fails", body: valid, handlerErr: errors.New("busy"), errorText: "nack message"},
		{name: "drop fails", body: []byte("nope"), errorText: "nack message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &recordingAck{err: channelClosed}
			err := handleDelivery(context.Background(), amqp091.Delivery{Acknowledger: ack, Body: tt.body}, func(*ChangeMessage) error {
				return tt.handlerErr
			})
			if !errors.Is(err, channelClosed) {
				t.Fatalf("handleDelivery() error = %v, want %v", err, channelClosed)
			}
			if !strings.Contains(err.Error(), tt.errorText) {
				t.Errorf("handleDelivery() error = %q, want it to contain %q", err.Error(), tt.errorText)
			}
		})
	}
}

func TestConsume_StopsOnContextAndClose(t *testing.T) {
	msgs := make(chan amqp091.Delivery)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := consume(ctx, msgs, func(*ChangeMessage) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("consume() error = %v, want context.Canceled", err)
	}

	close(msgs)
	if err := consume(context.Background(), msgs, func(*ChangeMessage) error { return nil }); err == nil {
		t.Error("consume() should fail when the delivery channel closes")
	}
}

func TestChangeMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &ChangeMessage{Collection: "repayments", Op: "delete", ID: "r1", Timestamp: timestamp}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	parsed, err := ChangeMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ChangeMessageFromJSON() error = %v", err)
	}
	if parsed.Collection != msg.Collection || parsed.Op != msg.Op || parsed.ID != msg.ID || !parsed.Timestamp.Equal(timestamp) {
		t.Errorf("parsed = %+v, want %+v", parsed, msg)
	}

	if _, err := ChangeMessageFromJSON([]byte(`{"id": 12}`)); err == nil {
		t.Error("ChangeMessageFromJSON() should fail on a numeric id")
	}
}

func TestChangeMessage_AffectsBalances(t *testing.T) {
	tests := []struct {
		collection storage.Collection
		want       bool
	}{
		{storage.CollectionExpenses, true},
		{storage.CollectionRepayments, true},
		{storage.CollectionItinerary, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.collection), func(t *testing.T) {
			msg := NewChangeMessage(storage.Change{Collection: tt.collection, Op: storage.OpCreate, ID: "x"})
			if got := msg.AffectsBalances(); got != tt.want {
				t.Errorf("AffectsBalances() = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []*ChangeMessage
	err  error
	sent chan struct{}
}

func (p *fakePublisher) PublishChange(_ context.Context, msg *ChangeMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.msgs = append(p.msgs, msg)
	}
	p.sent <- struct{}{}
	return p.err
}

func TestForward(t *testing.T) {
	feed := storage.NewFeed()
	pub := &fakePublisher{sent: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Forward(ctx, feed, pub) }()

	// Wait for Forward to subscribe.
	for feed.Len() == 0 {
		time.Sleep(time.Millisecond)
	}

	feed.Publish(storage.Change{Collection: storage.CollectionItinerary, Op: storage.OpUpdate, ID: "i1"})
	select {
	case <-pub.sent:
	case <-time.After(time.Second):
		t.Fatal("change was not forwarded")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Forward() error = %v", err)
	}

	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.msgs) != 1 || pub.msgs[0].ID != "i1" || pub.msgs[0].Op != "update" {
		t.Errorf("forwarded = %+v", pub.msgs)
	}
	if feed.Len() != 0 {
		t.Errorf("Forward left %d subscriptions behind", feed.Len())
	}
}

func TestForward_StopsWhenFeedCloses(t *testing.T) {
	feed := storage.NewFeed()
	pub := &fakePublisher{sent: make(chan struct{}, 1)}

	done := make(chan error, 1)
	go func() { done <- Forward(context.Background(), feed, pub) }()
	for feed.Len() == 0 {
		time.Sleep(time.Millisecond)
	}

	feed.Close()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Forward() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Forward did not return after the feed closed")
	}
}
