package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Properties() PropertyRepository
	Bookings() BookingRepository
	Payments() PaymentRepository
}
