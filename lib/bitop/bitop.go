package bitop

import (
	"errors"
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	log = logger.GetLogger("bitop")

	// ErrUnsupportedOperator is returned by Checked for operators other than AND and OR
	ErrUnsupportedOperator = errors.New("unsupported bitwise operator")
)

// --------------------------------------------------------------------------
// Operator Definition
// --------------------------------------------------------------------------

// Op is the operator tag of a bitwise evaluation.
type Op uint8

const (
	opInvalid Op = iota

	AND // both bits set -> 1
	OR  // either bit set -> 1
)

// Valid reports whether the operator is one of AND or OR
func (o Op) Valid() bool {
	return o == AND || o == OR
}

// String returns the string representation of an Op.
func (o Op) String() string {
	switch o {
	case AND:
		return "&"
	case OR:
		return "|"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// --------------------------------------------------------------------------
// Evaluation
// --------------------------------------------------------------------------

// And returns the bitwise AND of a and b
func And(a, b uint64) uint64 {
	return a & b
}

// Or returns the bitwise OR of a and b
func Or(a, b uint64) uint64 {
	return a | b
}

// Apply evaluates op over a and b.
//
// An operator outside of {AND, OR} yields 0 for every bit position. The call is
// not rejected, only logged, so Apply stays total over all Op values.
func Apply(op Op, a, b uint64) uint64 {
	switch op {
	case AND:
		return And(a, b)
	case OR:
		return Or(a, b)
	default:
		log.Warningf("%s operand not recognized, result degrades to 0", op)
		return 0
	}
}

// Checked evaluates op over a and b like Apply but fails with
// ErrUnsupportedOperator instead of degrading to 0.
func Checked(op Op, a, b uint64) (uint64, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperator, op)
	}
	return Apply(op, a, b), nil
}
