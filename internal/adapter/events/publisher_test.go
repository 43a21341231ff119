package events

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/staybook/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleEvent() model.Event {
	return model.Event{
		Type:       model.EventPaymentCompleted,
		CustomerID: 1,
		PropertyID: 1,
		BookingID:  1,
		PaymentID:  1,
		Amount:     decimal.NewFromInt(300),
		OccurredAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func closedPortURL(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return "amqp://guest:guest@" + addr + "/"
}

func TestLogPublisherWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	pub := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	if err := pub.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("publish: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line: %v", err)
	}
	if entry["type"] != string(model.EventPaymentCompleted) {
		t.Errorf("unexpected type %v", entry["type"])
	}
	if entry["amount"] != "300.00" {
		t.Errorf("unexpected amount %v", entry["amount"])
	}
	if err := pub.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestLogPublisherHonoursContext(t *testing.T) {
	pub := NewLogPublisher(testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pub.Publish(ctx, sampleEvent()); err == nil {
		t.Fatal("expected cancelled context error")
	}
}

func TestEncodeBuildsPersistentJSONMessage(t *testing.T) {
	ev := sampleEvent()
	msg, err := encode(ev)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if msg.ContentType != "application/json" {
		t.Errorf("unexpected content type %q", msg.ContentType)
	}
	if msg.DeliveryMode != amqp.Persistent {
		t.Errorf("expected persistent delivery, got %d", msg.DeliveryMode)
	}
	if msg.Type != string(ev.Type) {
		t.Errorf("unexpected message type %q", msg.Type)
	}
	if !msg.Timestamp.Equal(ev.OccurredAt) {
		t.Errorf("unexpected timestamp %v", msg.Timestamp)
	}

	var decoded model.Event
	if err := json.Unmarshal(msg.Body, &decoded); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if decoded.PaymentID != ev.PaymentID || !decoded.Amount.Equal(ev.Amount) {
		t.Errorf("unexpected body %+v", decoded)
	}
}

func TestNewAMQPPublisherDialError(t *testing.T) {
	_, err := NewAMQPPublisher(closedPortURL(t), "staybook.events")
	if err == nil || !strings.Contains(err.Error(), "dial rabbitmq") {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestAMQPPublisherClosed(t *testing.T) {
	pub := &AMQPPublisher{exchange: "staybook.events"}
	if err := pub.Publish(context.Background(), sampleEvent()); err != amqp.ErrClosed {
		t.Fatalf("expected closed error, got %v", err)
	}
	if err := pub.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
