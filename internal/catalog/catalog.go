// Package catalog describes the calculators offered to users: their names,
// routes, parameters, defaults and slider ranges.
package catalog

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/rangesync"
)

// ParamType tells the parse boundary how to read a parameter value
type ParamType string

const (
	ParamMoney   ParamType = "money"
	ParamPercent ParamType = "percent"
	ParamYears   ParamType = "years"
	ParamAge     ParamType = "age"
	ParamChoice  ParamType = "choice"
	ParamBool    ParamType = "bool"
)

// Param describes one calculator input
type Param struct {
	Key     string           `yaml:"key" json:"key"`
	Label   string           `yaml:"label" json:"label"`
	Type    ParamType        `yaml:"type" json:"type"`
	Default string           `yaml:"default" json:"default"`
	Bounds  rangesync.Bounds `yaml:"bounds,omitempty" json:"bounds,omitempty"`
	Options []string         `yaml:"options,omitempty" json:"options,omitempty"`
	// OnlyFor restricts the parameter to one value of the calculator's mode
	OnlyFor string `yaml:"only_for,omitempty" json:"only_for,omitempty"`
}

// Numeric reports whether the parameter is driven by a slider
func (p Param) Numeric() bool {
	switch p.Type {
	case ParamMoney, ParamPercent, ParamYears, ParamAge:
		return true
	}
	return false
}

// Whole reports whether the parameter only accepts whole numbers
func (p Param) Whole() bool {
	return p.Type == ParamYears || p.Type == ParamAge
}

// Entry is one calculator in the catalog
type Entry struct {
	Kind        domain.Kind `yaml:"calculator" json:"calculator"`
	Name        string      `yaml:"name" json:"name"`
	Route       string      `yaml:"route" json:"route"`
	Description string      `yaml:"description" json:"description"`
	Params      []Param     `yaml:"params" json:"params"`
}

// Param returns the parameter with the given key
func (e Entry) Param(key string) (Param, bool) {
	for _, p := range e.Params {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}

// Defaults returns the default value of every parameter keyed by name
func (e Entry) Defaults() map[string]string {
	defaults := make(map[string]string, len(e.Params))
	for _, p := range e.Params {
		defaults[p.Key] = p.Default
	}
	return defaults
}

// Active reports whether p applies under the given mode value
func (p Param) Active(mode string) bool {
	return p.OnlyFor == "" || p.OnlyFor == mode
}

var (
	loanAmount   = rangesync.Bounds{Min: 1000, Max: 1000000, Step: 1000}
	salaryAmount = rangesync.Bounds{Min: 10000, Max: 2500000, Step: 10000}
	monthlySIP   = rangesync.Bounds{Min: 500, Max: 100000, Step: 500}
)

func money(key, label, def string, b rangesync.Bounds) Param {
	return Param{Key: key, Label: label, Type: ParamMoney, Default: def, Bounds: b}
}

func percent(key, label, def string, min, max float64) Param {
	return Param{Key: key, Label: label, Type: ParamPercent, Default: def, Bounds: rangesync.Bounds{Min: min, Max: max, Step: 0.1}}
}

func years(key, label, def string, min, max float64) Param {
	return Param{Key: key, Label: label, Type: ParamYears, Default: def, Bounds: rangesync.Bounds{Min: min, Max: max, Step: 1}}
}

func age(key, label, def string, min, max float64) Param {
	return Param{Key: key, Label: label, Type: ParamAge, Default: def, Bounds: rangesync.Bounds{Min: min, Max: max, Step: 1}}
}

func choice(key, label, def string, options ...string) Param {
	return Param{Key: key, Label: label, Type: ParamChoice, Default: def, Options: options}
}

var entries = []Entry{
	{
		Kind: domain.KindPPF, Name: "PPF Calculator", Route: "/ppf-calculator",
		Description: "Calculate public provident fund returns",
		Params: []Param{
			money("yearly_investment", "Yearly Investment", "10000", loanAmount),
			years("tenure_years", "Time Period (Years)", "15", 15, 50),
		},
	},
	{
		Kind: domain.KindSIP, Name: "SIP/MF Calculator", Route: "/mf-returns-calculator",
		Description: "Calculate SIP and mutual fund returns",
		Params: []Param{
			choice("mode", "Investment Type", string(domain.InvestmentSIP), string(domain.InvestmentSIP), string(domain.InvestmentLumpsum)),
			withMode(money("monthly_investment", "Monthly Investment", "5000", monthlySIP), string(domain.InvestmentSIP)),
			withMode(money("principal", "Total Investment", "10000", loanAmount), string(domain.InvestmentLumpsum)),
			years("tenure_years", "Time Period (Years)", "5", 1, 30),
			percent("annual_rate_pct", "Expected Return Rate (p.a)", "12", 1, 20),
		},
	},
	{
		Kind: domain.KindFD, Name: "FD Calculator", Route: "/fd-calculator",
		Description: "Calculate fixed deposit returns",
		Params: []Param{
			money("principal", "Total Investment", "10000", loanAmount),
			years("tenure_years", "Time Period (Years)", "5", 1, 10),
			percent("annual_rate_pct", "Rate of Interest (p.a)", "6.5", 1, 15),
		},
	},
	{
		Kind: domain.KindEMI, Name: "EMI Calculator", Route: "/emi-calculator",
		Description: "Calculate your personal, car or home loan",
		Params: []Param{
			money("principal", "Loan Amount", "500000", loanAmount),
			percent("annual_rate_pct", "Rate of Interest (p.a)", "5", 1, 30),
			years("tenure_years", "Loan Tenure (Years)", "2", 1, 30),
		},
	},
	{
		Kind: domain.KindGST, Name: "GST Calculator", Route: "/gst-calculator",
		Description: "Calculate payable GST amount",
		Params: []Param{
			choice("mode", "Tax Type", string(domain.GSTExclusive), string(domain.GSTExclusive), string(domain.GSTInclusive)),
			money("amount", "Total Amount", "10000", loanAmount),
			percent("rate_pct", "Tax Slab", "6.5", 1, 30),
		},
	},
	{
		Kind: domain.KindHRA, Name: "HRA Calculator", Route: "/hra-calculator",
		Description: "Calculate your house rent allowance",
		Params: []Param{
			money("basic_salary", "Basic Salary (Yearly)", "540000", salaryAmount),
			money("dearness_allowance", "Dearness Allowance (Yearly)", "0", salaryAmount),
			money("hra_received", "HRA Received (Yearly)", "100000", salaryAmount),
			money("rent_paid", "Total Rent Paid (Yearly)", "300000", salaryAmount),
			{Key: "is_metro", Label: "Living in Metro City", Type: ParamBool, Default: "false", Options: []string{"false", "true"}},
		},
	},
	{
		Kind: domain.KindInterest, Name: "Interest Calculator", Route: "/interest-calculator",
		Description: "Calculate simple and compound interest",
		Params: []Param{
			choice("mode", "Interest Type", string(domain.InterestSimple), string(domain.InterestSimple), string(domain.InterestCompound)),
			money("principal", "Principal Amount", "10000", loanAmount),
			years("tenure_years", "Time Period (Years)", "5", 1, 30),
			percent("annual_rate_pct", "Rate of Interest (p.a)", "6", 1, 50),
		},
	},
	{
		Kind: domain.KindROI, Name: "ROI Calculator", Route: "/roi-calculator",
		Description: "Calculate your return on investment",
		Params: []Param{
			money("initial", "Total Investment", "10000", loanAmount),
			money("final", "Final Value", "15000", loanAmount),
			years("tenure_years", "Duration of Investment (Years)", "5", 1, 30),
		},
	},
	{
		Kind: domain.KindNPS, Name: "NPS Calculator", Route: "/nps-calculator",
		Description: "Calculate your national pension scheme",
		Params: []Param{
			money("monthly_investment", "Monthly Investment", "5000", monthlySIP),
			percent("expected_return_pct", "Expected Return (p.a)", "8", 0, 20),
			age("current_age", "Your Age", "30", 18, 70),
			age("retirement_age", "Retirement Age", "60", 30, 70),
			percent("annuity_pct", "Annuity Purchase (%)", "40", 0, 100),
			percent("annuity_rate_pct", "Expected Annuity Rate (p.a)", "6", 0, 20),
		},
	},
}

func withMode(p Param, mode string) Param {
	p.OnlyFor = mode
	return p
}

// similar lists the cross-linked calculators in display order
var similar = []domain.Kind{
	domain.KindPPF,
	domain.KindSIP,
	domain.KindFD,
	domain.KindEMI,
	domain.KindGST,
	domain.KindHRA,
	domain.KindInterest,
	domain.KindROI,
}

// All returns every catalog entry in display order
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for a calculator kind
func Lookup(kind domain.Kind) (Entry, error) {
	for _, e := range entries {
		if e.Kind == kind {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("no catalog entry for calculator %q", kind)
}

// ByRoute returns the entry served at a route such as "/emi-calculator"
func ByRoute(route string) (Entry, error) {
	route = "/" + strings.Trim(strings.ToLower(route), "/ ")
	for _, e := range entries {
		if e.Route == route {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("no calculator at route %q", route)
}

// Similar returns the cross-linked calculators shown alongside kind,
// excluding kind itself
func Similar(kind domain.Kind) []Entry {
	out := make([]Entry, 0, len(similar))
	for _, k := range similar {
		if k == kind {
			continue
		}
		e, err := Lookup(k)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}
