// Package condition parses waitfor count expressions into predicates over a
// query result.
package condition

import (
	"fmt"
	"strconv"
	"strings"

	invErrors "github.com/stackwise/invctl/pkg/errors"
)

type op int

const (
	opZero op = iota
	opExact
	opGreater
)

// Condition is a predicate over the size of a query result. The zero
// condition ("0") is satisfied by a missing result as well as an empty one;
// every other condition requires a result to be present.
type Condition struct {
	op op
	n  int
}

// Zero matches a nil or empty result.
func Zero() Condition {
	return Condition{op: opZero}
}

// Exact matches a present result of exactly n records. Exact(0) behaves
// identically to Zero.
func Exact(n int) Condition {
	if n == 0 {
		return Zero()
	}
	return Condition{op: opExact, n: n}
}

// GreaterThan matches a present result of strictly more than n records.
func GreaterThan(n int) Condition {
	return Condition{op: opGreater, n: n}
}

// Parse interprets a count expression: "0" for empty-or-missing, ">N" for
// strictly more than N, and a bare integer N for exactly N. Anything else is
// an invalid condition error.
func Parse(literal string) (Condition, error) {
	s := strings.TrimSpace(literal)

	if rest, ok := strings.CutPrefix(s, ">"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return Condition{}, invErrors.Newf(invErrors.ErrCodeInvalidCondition,
				"invalid count expression %q", literal)
		}
		return GreaterThan(n), nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Condition{}, invErrors.Newf(invErrors.ErrCodeInvalidCondition,
			"invalid count expression %q", literal)
	}
	return Exact(n), nil
}

// Satisfied evaluates the condition against a result of length n. present is
// false when the query produced no result at all (nil), which only the zero
// condition accepts.
func (c Condition) Satisfied(n int, present bool) bool {
	switch c.op {
	case opZero:
		return !present || n == 0
	case opExact:
		return present && n == c.n
	case opGreater:
		return present && n > c.n
	default:
		return false
	}
}

func (c Condition) String() string {
	switch c.op {
	case opZero:
		return "0"
	case opGreater:
		return fmt.Sprintf(">%d", c.n)
	default:
		return strconv.Itoa(c.n)
	}
}
