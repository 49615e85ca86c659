package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"reddy-infra/internal/money"
)

const (
	barWidth   = 20
	dateLayout = "Mon 2 Jan 15:04"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// bar draws pct (0..100) as a fixed-width progress bar.
func bar(pct int) string {
	pct = max(0, min(pct, 100))
	filled := pct * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func inr(d decimal.Decimal) string {
	return money.FormatINR(d)
}

func formatTime(t time.Time) string {
	return t.Format(dateLayout)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
