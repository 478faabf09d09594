package validators

import "time"

const isoDateLayout = "2006-01-02"

// ParseISODate validates a strict YYYY-MM-DD date string and returns it
// normalized.
func ParseISODate(s string) (string, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(isoDateLayout), nil
}

func IsISODate(s string) bool {
	_, err := ParseISODate(s)
	return err == nil
}
