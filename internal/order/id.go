package order

import (
	"fmt"
	"time"
)

const idModulus = 100_000_000

// NewID formats an order id from the last eight digits of now in unix
// milliseconds, e.g. ORD-12345678.
func NewID(now time.Time) string {
	return fmt.Sprintf("ORD-%08d", now.UnixMilli()%idModulus)
}
