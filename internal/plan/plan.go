// Package plan reads budget plans from TOML files so that allocations can be
// calculated without a running server or database.
//
// A plan looks like this:
//
//	income = 12000
//	base_income = 10000
//	currency = "EUR"
//
//	[[goals]]
//	name = "Rent"
//	minimum = 3000
//	maximum = 3000
//
//	[[goals]]
//	name = "Savings"
//	importance = 3
//	minimum_percent = 10
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goalsplit/backend/internal/allocation"
	"github.com/goalsplit/backend/internal/limits"
	"github.com/goalsplit/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownKeys = errors.New("plan contains unknown keys")
	ErrNoIncome    = errors.New("no income given, set income in the plan or pass it explicitly")
)

// Plan is a set of goals together with the income to split.
type Plan struct {
	Income     *decimal.Decimal `toml:"income"`      // Income to allocate
	BaseIncome *decimal.Decimal `toml:"base_income"` // Income percentages refer to. Defaults to Income
	Currency   string           `toml:"currency"`
	Goals      []Goal           `toml:"goals"`
}

type Goal struct {
	Name           string           `toml:"name"`
	Type           string           `toml:"type"`
	Importance     *decimal.Decimal `toml:"importance"` // Defaults to 1
	Minimum        *decimal.Decimal `toml:"minimum"`
	Maximum        *decimal.Decimal `toml:"maximum"`
	MinimumPercent *decimal.Decimal `toml:"minimum_percent"`
	MaximumPercent *decimal.Decimal `toml:"maximum_percent"`
	Active         *bool            `toml:"active"` // Defaults to true
}

// Decode reads a plan from r. Keys that are not part of a plan are
// rejected so that typos do not silently drop limits.
func Decode(r io.Reader) (Plan, error) {
	var p Plan

	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Plan{}, fmt.Errorf("parsing plan: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	return p, nil
}

// Load reads the plan from the file at path.
func Load(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("reading plan: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// base is the income percentages are resolved against.
func (p Plan) base() decimal.NullDecimal {
	if p.BaseIncome != nil {
		return decimal.NewNullDecimal(*p.BaseIncome)
	}

	if p.Income != nil {
		return decimal.NewNullDecimal(*p.Income)
	}

	return decimal.NullDecimal{}
}

// AllocationGoals resolves the limits of all goals and validates them the
// same way stored goals are validated.
func (p Plan) AllocationGoals() ([]allocation.Goal, error) {
	goals := make([]allocation.Goal, 0, len(p.Goals))

	for i, g := range p.Goals {
		goal, err := g.model(p.base())
		if err != nil {
			return nil, fmt.Errorf("goal %d (%q): %w", i+1, g.Name, err)
		}

		goals = append(goals, goal.AllocationGoal())
	}

	return goals, nil
}

// Allocate splits the plan's income across its goals. A valid income
// overrides the income of the plan.
func (p Plan) Allocate(income decimal.NullDecimal) (allocation.Result, error) {
	if !income.Valid {
		if p.Income == nil {
			return allocation.Result{}, ErrNoIncome
		}
		income = decimal.NewNullDecimal(*p.Income)
	}

	goals, err := p.AllocationGoals()
	if err != nil {
		return allocation.Result{}, err
	}

	return allocation.Allocate(income.Decimal, goals)
}

func (g Goal) model(base decimal.NullDecimal) (models.Goal, error) {
	resolved, err := limits.Resolve(base, limits.Raw{
		Minimum:        nullable(g.Minimum),
		Maximum:        nullable(g.Maximum),
		MinimumPercent: nullable(g.MinimumPercent),
		MaximumPercent: nullable(g.MaximumPercent),
	})
	if err != nil {
		return models.Goal{}, err
	}

	goal := models.Goal{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Name:         strings.TrimSpace(g.Name),
		Type:         g.Type,
		Importance:   decimal.NewFromInt(1),
		Active:       true,
	}

	if g.Importance != nil {
		goal.Importance = *g.Importance
	}

	if g.Active != nil {
		goal.Active = *g.Active
	}

	goal.SetMinimum(resolved.Minimum)
	goal.SetMaximum(resolved.Maximum)

	return goal, goal.Validate()
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
