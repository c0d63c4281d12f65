package plan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultName is assigned to imported members whose plan column is blank.
const DefaultName = "Unspecified"

// Domain errors
var (
	ErrUnknownPlan   = errors.New("plan name is not a recognised duration label")
	ErrNegativePrice = errors.New("plan price cannot be negative")
)

// Plan maps a duration label to its price. Plans are unique by name.
type Plan struct {
	Name  string
	Price float64
}

// CanonicalNames are the twelve recognised duration labels, in order.
var CanonicalNames = []string{
	"1 Month", "2 Months", "3 Months", "4 Months", "5 Months", "6 Months",
	"7 Months", "8 Months", "9 Months", "10 Months", "11 Months", "12 Months",
}

// Validate checks the Plan has a canonical name and a non-negative price.
// PRE: Plan struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (p *Plan) Validate() error {
	if _, err := DurationMonths(p.Name); err != nil {
		return err
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// DurationMonths parses a duration label ("3 Months") into its month count.
// PRE: none
// POST: Returns 1..12 for canonical labels, ErrUnknownPlan otherwise
func DurationMonths(name string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	unit := fields[1]
	if n == 1 && unit != "Month" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	if n > 1 && unit != "Months" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlan, name)
	}
	return n, nil
}

// Defaults returns the canonical twelve plans with zero prices, for seeding
// a fresh database. Operators set real prices afterwards.
func Defaults() []Plan {
	plans := make([]Plan, 0, len(CanonicalNames))
	for _, name := range CanonicalNames {
		plans = append(plans, Plan{Name: name})
	}
	return plans
}
