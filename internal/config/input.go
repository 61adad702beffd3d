package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/rgehrsitz/fincalc/internal/params"
	"gopkg.in/yaml.v3"
)

// Batch is a file of named calculations run together into one report
type Batch struct {
	Title        string        `yaml:"title"`
	Calculations []Calculation `yaml:"calculations"`
}

// Calculation is one entry of a batch file. Params hold raw text exactly as
// a user would type it; they are parsed by the params package.
type Calculation struct {
	Name       string            `yaml:"name"`
	Calculator string            `yaml:"calculator"`
	Params     map[string]string `yaml:"params"`
}

// InputParser handles parsing of batch input files
type InputParser struct {
	registry *params.Registry
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{registry: params.NewRegistry()}
}

// LoadFromFile loads a batch from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML batch
func (ip *InputParser) LoadFromBytes(data []byte) (*Batch, error) {
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// Validate checks that every calculation names a known calculator and only
// known parameters. Unreadable values are not an error here; they surface
// as unavailable results.
func (ip *InputParser) Validate(batch *Batch) error {
	if len(batch.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	seen := make(map[string]int)
	for i, calc := range batch.Calculations {
		if strings.TrimSpace(calc.Calculator) == "" {
			return fmt.Errorf("calculation %d: calculator is required", i)
		}
		if _, err := ip.request(calc); err != nil {
			return fmt.Errorf("calculation %d (%s): %w", i, calc.Name, err)
		}
		if calc.Name != "" {
			if prev, dup := seen[calc.Name]; dup {
				return fmt.Errorf("calculation %d: name %q already used by calculation %d", i, calc.Name, prev)
			}
			seen[calc.Name] = i
		}
	}
	return nil
}

// Requests converts a validated batch into engine requests, in file order
func (ip *InputParser) Requests(batch *Batch) ([]domain.Request, error) {
	reqs := make([]domain.Request, 0, len(batch.Calculations))
	for i, calc := range batch.Calculations {
		req, err := ip.request(calc)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i, calc.Name, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (ip *InputParser) request(calc Calculation) (domain.Request, error) {
	kind, err := domain.ParseKind(calc.Calculator)
	if err != nil {
		return domain.Request{}, err
	}
	return ip.registry.Build(calc.Name, kind, calc.Params)
}
