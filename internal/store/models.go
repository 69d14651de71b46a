package store

// DateLayout is how session dates are stored. Lexical order matches calendar order,
// which the window queries rely on.
const DateLayout = "2006-01-02"

type Session struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	DurationMinutes float64 `json:"duration_minutes"`
}
