package booking

import "time"

const (
	// appointmentLayout accepts the combined form submitted by the
	// booking page: "2024-03-01 2:30 PM" (12-hour clock, hour may be
	// one or two digits).
	appointmentLayout = "2006-01-02 3:04 PM"

	clockLayout = "15:04"

	dateLayout       = "2006-01-02"
	storedTimeLayout = "15:04:05"
)

// ParseAppointmentDateTime splits a combined appointment string into the
// stored date (YYYY-MM-DD) and time (HH:MM:SS) values.
func ParseAppointmentDateTime(raw string) (date string, clock string, err error) {
	t, err := time.Parse(appointmentLayout, raw)
	if err != nil {
		return "", "", err
	}
	return t.Format(dateLayout), t.Format(storedTimeLayout), nil
}

// ParseClockTime normalizes a 24-hour HH:MM value to the stored HH:MM:SS
// form.
func ParseClockTime(raw string) (string, error) {
	t, err := time.Parse(clockLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format(storedTimeLayout), nil
}
