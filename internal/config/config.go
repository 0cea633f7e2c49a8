// Package config loads the machine tables: accepted denominations, change denominations and the catalog.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/vending/pkg/change"
	"github.com/aretw0/vending/pkg/domain"
)

// DefaultPath is the file looked up in the working directory when no path is given.
const DefaultPath = "vending.yaml"

var (
	ErrInvalidConfig      = errors.New("invalid machine configuration")
	ErrNonCanonicalChange = errors.New("change set cannot make every reachable balance exactly")
)

// File represents the structure of vending.yaml. JSON files are accepted too.
type File struct {
	Funding []int64     `yaml:"funding" mapstructure:"funding"`
	Change  []int64     `yaml:"change" mapstructure:"change"`
	Catalog []ItemEntry `yaml:"catalog" mapstructure:"catalog"`
}

// ItemEntry is one catalog line. Price is in minor units (cents).
type ItemEntry struct {
	Name  string `yaml:"name" mapstructure:"name"`
	Price int64  `yaml:"price" mapstructure:"price"`
}

// Default returns the stock machine: US coins and notes, three snacks.
func Default() domain.Machine {
	return domain.Machine{
		Funding: domain.Denominations{5, 10, 25, 100, 200, 500, 1000, 2000, 5000, 10000},
		Change:  domain.Denominations{5, 10, 25, 100, 200},
		Catalog: domain.Catalog{
			{Name: "Candy Bar", Price: 200},
			{Name: "Chips", Price: 150},
			{Name: "Soda", Price: 100},
		},
	}
}

// Load reads a configuration file. Sections missing from the file keep their defaults.
// The result is validated.
func Load(path string) (domain.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Machine{}, fmt.Errorf("failed to read config: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return domain.Machine{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// LoadOptional behaves like Load but returns the defaults when the file does not exist.
func LoadOptional(path string) (domain.Machine, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes YAML (or JSON) bytes into machine tables and validates them.
func Parse(data []byte) (domain.Machine, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Machine{}, fmt.Errorf("failed to parse config: %w", err)
	}

	var f File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  rejectFractions,
		ErrorUnused: true,
		Result:      &f,
	})
	if err != nil {
		return domain.Machine{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.Machine{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	m := f.overlay(Default())
	if err := Validate(m); err != nil {
		return domain.Machine{}, err
	}
	return m, nil
}

func (f File) overlay(m domain.Machine) domain.Machine {
	if len(f.Funding) > 0 {
		m.Funding = domain.Denominations(f.Funding)
	}
	if len(f.Change) > 0 {
		m.Change = domain.Denominations(f.Change)
	}
	if len(f.Catalog) > 0 {
		m.Catalog = make(domain.Catalog, 0, len(f.Catalog))
		for _, e := range f.Catalog {
			m.Catalog = append(m.Catalog, domain.Item{Name: e.Name, Price: e.Price})
		}
	}
	return m
}

// rejectFractions stops mapstructure from truncating 1.5 into 1 for minor-unit fields.
func rejectFractions(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int64 {
		return data, nil
	}
	if from.Kind() == reflect.Float64 || from.Kind() == reflect.Float32 {
		v := reflect.ValueOf(data).Float()
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("amount %v must be a whole number of minor units", v)
		}
	}
	return data, nil
}

// Validate checks the tables for internal consistency.
func Validate(m domain.Machine) error {
	var errs []error

	errs = append(errs, validateSet("funding", m.Funding)...)
	errs = append(errs, validateSet("change", m.Change)...)
	for _, d := range m.Change {
		if d > 0 && !m.Funding.Contains(d) {
			errs = append(errs, fmt.Errorf("change denomination %d is not an accepted funding denomination", d))
		}
	}

	if len(m.Catalog) == 0 {
		errs = append(errs, errors.New("catalog is empty"))
	}
	seen := make(map[string]bool, len(m.Catalog))
	for i, item := range m.Catalog {
		if item.Name == "" {
			errs = append(errs, fmt.Errorf("catalog item %d has no name", i))
		}
		if seen[item.Name] {
			errs = append(errs, fmt.Errorf("catalog item %q is listed twice", item.Name))
		}
		seen[item.Name] = true
		if item.Price <= 0 {
			errs = append(errs, fmt.Errorf("catalog item %q must have a positive price", item.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func validateSet(name string, set domain.Denominations) []error {
	if len(set) == 0 {
		return []error{fmt.Errorf("%s denominations are empty", name)}
	}
	var errs []error
	seen := make(map[int64]bool, len(set))
	for _, d := range set {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s denomination %d must be positive", name, d))
		}
		if seen[d] {
			errs = append(errs, fmt.Errorf("%s denomination %d is listed twice", name, d))
		}
		seen[d] = true
	}
	return errs
}

// VerifyChange checks that greedy change is exact for every balance the machine can reach.
// Reachable balances are sums of funding amounts minus prices, i.e. multiples of their gcd.
func VerifyChange(m domain.Machine) error {
	calc, err := change.New(m.Change)
	if err != nil {
		return err
	}

	values := make([]int64, 0, len(m.Funding)+len(m.Catalog))
	values = append(values, m.Funding...)
	for _, item := range m.Catalog {
		values = append(values, item.Price)
	}

	if amount, ok := calc.Verify(change.GCD(values...)); !ok {
		return fmt.Errorf("%w: greedy change for %d leaves %d", ErrNonCanonicalChange, amount, calc.Compute(amount).Remainder)
	}
	return nil
}
