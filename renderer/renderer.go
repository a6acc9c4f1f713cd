// Package renderer turns engine output into markdown reports for the CLI.
package renderer

import (
	"fmt"
	"time"

	tracker "github.com/etnz/dollartracker"
)

// timeFormat is how record timestamps render in report rows.
const timeFormat = "2006-01-02 15:04"

// amount formats a foreign-currency quantity without trailing noise.
func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// local formats a local-currency value with its symbol.
func local(v float64, cur string) string {
	return tracker.M(v, cur).String()
}

// signedLocal is like local with an explicit sign; zero renders as "-".
func signedLocal(v float64, cur string) string {
	return tracker.M(v, cur).SignedString()
}

func when(t time.Time) string { return t.Format(timeFormat) }
