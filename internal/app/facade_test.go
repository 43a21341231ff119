package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
	pkgAuth "github.com/polkiloo/staybook/internal/pkg/auth"
	"github.com/polkiloo/staybook/internal/storage/memory"
	testhelpers "github.com/polkiloo/staybook/internal/test"
	"github.com/polkiloo/staybook/internal/usecase"
)

func newFacade(t *testing.T) (*BookingFacade, *testhelpers.EventSinkStub) {
	t.Helper()
	storage := memory.New(memory.DefaultCatalog(), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	sink := &testhelpers.EventSinkStub{}
	strategy := pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{})

	facade := NewBookingFacade(
		usecase.NewAuthUseCase(storage.Users(), testhelpers.HasherStub{}, strategy),
		usecase.NewCatalogUseCase(storage.Properties()),
		usecase.NewBookingUseCase(storage.Bookings(), sink),
		usecase.NewPaymentUseCase(storage.Payments(), storage.Bookings(), sink),
		usecase.NewHistoryUseCase(storage.Bookings(), storage.Payments()),
	)
	return facade, sink
}

func TestBookingFacadeAuth(t *testing.T) {
	facade, _ := newFacade(t)
	ctx := context.Background()

	user, token, err := facade.Register(ctx, "Alice", "pw1")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	id, err := facade.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != user.ID {
		t.Fatalf("expected token for user %d, got %d", user.ID, id)
	}

	if _, _, err := facade.Login(ctx, "Alice", "wrong"); !errors.Is(err, domainErrors.ErrLoginFailed) {
		t.Fatalf("expected login failure, got %v", err)
	}
	logged, _, err := facade.Login(ctx, "Alice", "pw1")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, logged.ID)
	}

	if _, err := facade.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestBookingFacadeAliceScenario(t *testing.T) {
	facade, sink := newFacade(t)
	ctx := context.Background()

	alice, _, err := facade.Register(ctx, "Alice", "pw1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	booking, err := facade.CreateBooking(ctx, alice.ID, 1, "2024-03-01", "2024-03-03")
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if !booking.TotalPrice.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected total 300, got %s", booking.TotalPrice)
	}
	if _, err := facade.Property(ctx, 1); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected property 1 unavailable, got %v", err)
	}
	for p := range facade.Properties(ctx) {
		if p.ID == 1 {
			t.Fatal("booked property listed as available")
		}
	}

	payment, err := facade.ProcessPayment(ctx, alice.ID, booking.ID)
	if err != nil {
		t.Fatalf("process payment: %v", err)
	}
	if payment.Status != model.PaymentStatusCompleted || !payment.Amount.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("unexpected payment %+v", payment)
	}

	history, err := facade.History(ctx, alice.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Bookings) != 1 || len(history.Payments) != 1 {
		t.Fatalf("expected 1 booking and 1 payment, got %d/%d", len(history.Bookings), len(history.Payments))
	}

	if _, err := facade.Checkout(ctx, alice.ID, booking.ID); err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := facade.Property(ctx, 1); err != nil {
		t.Fatalf("expected property 1 available, got %v", err)
	}
	bookings, err := facade.Bookings(ctx, alice.ID)
	if err != nil {
		t.Fatalf("bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("expected no live bookings, got %d", len(bookings))
	}
	history, err = facade.History(ctx, alice.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Payments) != 1 {
		t.Fatalf("expected payment to remain, got %d", len(history.Payments))
	}
	if _, err := facade.Checkout(ctx, alice.ID, booking.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected second checkout to fail, got %v", err)
	}

	want := []model.EventType{model.EventBookingCreated, model.EventPaymentCompleted, model.EventBookingCheckedOut}
	got := sink.Types()
	if len(got) != len(want) {
		t.Fatalf("unexpected events %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected events %v", got)
		}
	}
}
