package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	domainErrors "github.com/polkiloo/staybook/internal/domain/errors"
	"github.com/polkiloo/staybook/internal/domain/model"
)

// Facade is the subset of application operations the menu drives.
type Facade interface {
	Register(ctx context.Context, name, secret string) (*model.User, string, error)
	Login(ctx context.Context, name, secret string) (*model.User, string, error)
	Properties(ctx context.Context) iter.Seq[model.Property]
	CreateBooking(ctx context.Context, customerID, propertyID int64, checkIn, checkOut string) (*model.Booking, error)
	Bookings(ctx context.Context, customerID int64) ([]model.Booking, error)
	ProcessPayment(ctx context.Context, customerID, bookingID int64) (*model.Payment, error)
	Checkout(ctx context.Context, customerID, bookingID int64) (*model.Booking, error)
	History(ctx context.Context, customerID int64) (*model.History, error)
}

// Menu is the interactive text interface. It reads one answer per line.
type Menu struct {
	facade Facade
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// session is the state of one interactive run.
type session struct {
	user *model.User
	// booking is the last booking created while logged in.
	booking *model.Booking
}

// NewMenu constructs Menu over the given streams.
func NewMenu(facade Facade, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{facade: facade, in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	var s session
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu(&s)
		choice, err := m.prompt("Choose an option: ")
		if err != nil {
			return m.exitErr(err)
		}

		if s.user == nil {
			switch choice {
			case "1":
				err = m.register(ctx, &s)
			case "2":
				err = m.login(ctx, &s)
			case "3":
				m.println("Thank you for using the Booking System. Goodbye!")
				return nil
			case "4", "5":
				m.println("Please register or log in first.")
			case "6":
				m.println("Please log in first.")
			default:
				m.println("Invalid option. Please choose 1-3.")
			}
		} else {
			switch choice {
			case "1":
				m.listProperties(ctx)
			case "2":
				err = m.createBooking(ctx, &s)
			case "3":
				m.processPayment(ctx, &s)
			case "4":
				m.viewHistory(ctx, &s)
			case "5":
				err = m.checkout(ctx, &s)
			case "6":
				m.printf("\n%s, you have been logged out.\n\n", s.user.Name)
				s = session{}
			default:
				m.println("Invalid option. Please choose 1-6.")
			}
		}
		if err != nil {
			return m.exitErr(err)
		}
	}
}

func (m *Menu) exitErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) printMenu(s *session) {
	m.println("\n    Welcome to the Booking System\n")
	if s.user != nil {
		m.println("1. List Available Properties")
		m.println("2. Create a Booking")
		m.println("3. Process Payment")
		m.println("4. View History")
		m.println("5. Checkout")
		m.println("6. Logout")
		return
	}
	m.println("1. Register as a New Customer")
	m.println("2. Login as a Returning Customer")
	m.println("3. Exit")
}

func (m *Menu) register(ctx context.Context, s *session) error {
	name, err := m.prompt("Enter your name: ")
	if err != nil {
		return err
	}
	secret, err := m.prompt("Enter your password: ")
	if err != nil {
		return err
	}

	user, _, err := m.facade.Register(ctx, name, secret)
	if err != nil {
		m.fail("Registration failed", err)
		return nil
	}
	s.user, s.booking = user, nil
	m.printf("\nRegistered successfully as %s (ID: %d)\n\n", user.Name, user.ID)
	return nil
}

func (m *Menu) login(ctx context.Context, s *session) error {
	name, err := m.prompt("Enter your registered name: ")
	if err != nil {
		return err
	}
	secret, err := m.prompt("Enter your password: ")
	if err != nil {
		return err
	}

	user, _, err := m.facade.Login(ctx, name, secret)
	if err != nil {
		if errors.Is(err, domainErrors.ErrLoginFailed) {
			m.println("\nLogin failed. Please check your name and password.\n")
			return nil
		}
		m.fail("Login failed", err)
		return nil
	}
	s.user, s.booking = user, nil
	m.printf("\nWelcome back, %s!\n\n", user.Name)
	return nil
}

func (m *Menu) listProperties(ctx context.Context) {
	m.println("\nAvailable Properties:\n")
	for p := range m.facade.Properties(ctx) {
		m.printf("Property ID: %d - %s\n", p.ID, formatProperty(p))
	}
}

func (m *Menu) createBooking(ctx context.Context, s *session) error {
	m.listProperties(ctx)

	rawID, err := m.prompt("Enter the Property ID to book: ")
	if err != nil {
		return err
	}
	checkIn, err := m.prompt("Enter check-in date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	checkOut, err := m.prompt("Enter check-out date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	// A failed attempt replaces the session booking too.
	s.booking = nil

	propertyID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		m.println("Invalid input. Please enter valid data.\n")
		return nil
	}

	booking, err := m.facade.CreateBooking(ctx, s.user.ID, propertyID, checkIn, checkOut)
	switch {
	case err == nil:
		s.booking = booking
		m.printf("\nBooking created successfully: %s\n\n", formatBooking(*booking, s.user.Name))
	case errors.Is(err, domainErrors.ErrInvalidStay):
		m.println("Check-out date must be after check-in date.\n")
	case errors.Is(err, domainErrors.ErrInvalidInput):
		m.println("Invalid input. Please enter valid data.\n")
	case errors.Is(err, domainErrors.ErrNotFound):
		m.println("Property not available for booking.\n")
	default:
		m.fail("Booking failed", err)
	}
	return nil
}

func (m *Menu) processPayment(ctx context.Context, s *session) {
	if s.booking == nil {
		m.println("No booking found. Create a booking first.\n")
		return
	}

	payment, err := m.facade.ProcessPayment(ctx, s.user.ID, s.booking.ID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			s.booking = nil
			m.println("No booking found. Create a booking first.\n")
			return
		}
		m.fail("Payment failed", err)
		return
	}
	m.printf("Payment Status: %s\n", formatPayment(*payment))
}

func (m *Menu) viewHistory(ctx context.Context, s *session) {
	history, err := m.facade.History(ctx, s.user.ID)
	if err != nil {
		m.fail("Could not load history", err)
		return
	}
	if history.Empty() {
		m.println("No booking or payment history found for this user.")
		return
	}
	if len(history.Bookings) > 0 {
		m.println("\nYour Booking History:\n")
		for _, b := range history.Bookings {
			m.println(formatBooking(b, s.user.Name))
		}
	}
	if len(history.Payments) > 0 {
		m.println("\nYour Payment History:\n")
		for _, p := range history.Payments {
			m.println(formatPayment(p))
		}
	}
}

func (m *Menu) checkout(ctx context.Context, s *session) error {
	bookings, err := m.facade.Bookings(ctx, s.user.ID)
	if err != nil {
		m.fail("Could not load bookings", err)
		return nil
	}
	if len(bookings) == 0 {
		m.println("No active bookings found for checkout.")
		return nil
	}

	m.println("\nYour Active Bookings:\n")
	for _, b := range bookings {
		m.println(formatBooking(b, s.user.Name))
	}

	rawID, err := m.prompt("Enter the Booking ID to checkout: ")
	if err != nil {
		return err
	}
	bookingID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		m.println("Invalid input. Please enter a valid Booking ID.\n")
		return nil
	}

	booking, err := m.facade.Checkout(ctx, s.user.ID, bookingID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			m.println("Invalid Booking ID. Please try again.")
			return nil
		}
		m.fail("Checkout failed", err)
		return nil
	}
	if s.booking != nil && s.booking.ID == booking.ID {
		s.booking = nil
	}
	m.printf("\nSuccessfully checked out from %s.\n\n", booking.Location)
	return nil
}

func (m *Menu) prompt(label string) (string, error) {
	m.printf("%s", label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) fail(msg string, err error) {
	m.logger.Error(strings.ToLower(msg), slog.String("error", err.Error()))
	m.printf("%s. Please try again.\n", msg)
}

func (m *Menu) println(line string) {
	_, _ = fmt.Fprintln(m.out, line)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
