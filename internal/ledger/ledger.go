// Package ledger holds the balance rules for deposits and withdrawals.
// It does no I/O: callers persist and report the outcome.
package ledger

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies the result of a balance operation.
type Kind int

const (
	Success Kind = iota
	InvalidInput
	NonPositiveAmount
	InsufficientFunds
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case InvalidInput:
		return "invalid input"
	case NonPositiveAmount:
		return "non-positive amount"
	case InsufficientFunds:
		return "insufficient funds"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of Deposit or Withdraw.
// Balance is the balance the caller should keep: the new one on Success,
// the unchanged one otherwise.
type Outcome struct {
	Kind    Kind
	Amount  float64
	Balance float64
}

// OK reports whether the operation changed the balance.
func (o Outcome) OK() bool {
	return o.Kind == Success
}

// Err returns the sentinel error for a rejected outcome, or nil on success.
func (o Outcome) Err() error {
	switch o.Kind {
	case InvalidInput:
		return ErrInvalidAmount
	case NonPositiveAmount:
		return ErrNonPositive
	case InsufficientFunds:
		return ErrInsufficientFunds
	default:
		return nil
	}
}

// Decimal exponent bounds of float64. Beyond maxMagnitude a value overflows;
// below minMagnitude it rounds to zero.
const (
	maxMagnitude = 310
	minMagnitude = -345
)

// ParseAmount parses raw user text as a decimal number.
// Surrounding whitespace is ignored. NaN, infinities and values too large
// for a float64 are rejected; values too small for one parse as zero.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	v, ok := toFloat(d)
	if !ok {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, s)
	}
	return v, nil
}

// toFloat converts d to the nearest float64. The magnitude is checked
// first: converting a huge exponent allocates in proportion to it.
func toFloat(d decimal.Decimal) (float64, bool) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return 0, true
	}
	digits := int64(len(new(big.Int).Abs(coef).String()))
	mag := int64(d.Exponent()) + digits
	switch {
	case mag > maxMagnitude:
		return 0, false
	case mag < minMagnitude:
		return 0, true
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Deposit credits the amount in raw to balance.
func Deposit(balance float64, raw string) Outcome {
	amount, err := ParseAmount(raw)
	if err != nil {
		return Outcome{Kind: InvalidInput, Balance: balance}
	}
	if amount <= 0 {
		return Outcome{Kind: NonPositiveAmount, Amount: amount, Balance: balance}
	}
	next := balance + amount
	if math.IsInf(next, 0) {
		return Outcome{Kind: InvalidInput, Amount: amount, Balance: balance}
	}
	return Outcome{Kind: Success, Amount: amount, Balance: next}
}

// Withdraw debits the amount in raw from balance.
// The positivity check runs before the sufficiency check.
func Withdraw(balance float64, raw string) Outcome {
	amount, err := ParseAmount(raw)
	if err != nil {
		return Outcome{Kind: InvalidInput, Balance: balance}
	}
	if amount <= 0 {
		return Outcome{Kind: NonPositiveAmount, Amount: amount, Balance: balance}
	}
	if amount > balance {
		return Outcome{Kind: InsufficientFunds, Amount: amount, Balance: balance}
	}
	return Outcome{Kind: Success, Amount: amount, Balance: balance - amount}
}
