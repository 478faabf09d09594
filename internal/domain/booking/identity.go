package booking

// Identity is the authenticated client attached to a session. Booking
// creation takes it optionally: present means book for that client,
// absent means fall back to the shared walk-in client.
type Identity struct {
	ClientID uint
	Email    string
	Name     string
}

// Walk-in bookings all share one sentinel client identified by first
// name. It is created on first use and reused forever after.
const (
	WalkInFirstName = "Walk-in"
	WalkInLastName  = "Client"
)
