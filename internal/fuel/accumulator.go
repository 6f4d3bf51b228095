package fuel

import (
	"fmt"
	"strconv"
)

// Requirement returns n/3 - 2 using truncating division.
func Requirement(n int64) int64 {
	return n/3 - 2
}

// Accumulator sums Requirement over every value added. The zero value is
// ready to use. It is not safe for concurrent use.
type Accumulator struct {
	Total int64
	Count int
}

// Add folds one parsed value into the total.
func (a *Accumulator) Add(n int64) {
	a.Total += Requirement(n)
	a.Count++
}

// StopReason says why the scan loop ended.
type StopReason int

const (
	StopEOF StopReason = iota
	StopInvalidToken
	StopReadError
)

func (r StopReason) String() string {
	switch r {
	case StopEOF:
		return "eof"
	case StopInvalidToken:
		return "invalid_token"
	case StopReadError:
		return "read_error"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Stop describes the end of a scan. Token is set for StopInvalidToken and
// Err for StopReadError.
type Stop struct {
	Reason StopReason
	Token  string
	Err    error
}

// Result is the outcome of one Sum call.
type Result struct {
	Total int64
	Count int
	Stop  Stop
}

func (a *Accumulator) result(stop Stop) Result {
	return Result{Total: a.Total, Count: a.Count, Stop: stop}
}

// ParseToken parses a whole token as a signed base-10 int64. Partial
// matches like "123abc" and out-of-range values are rejected.
func ParseToken(tok string) (int64, bool) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
