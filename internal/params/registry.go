// Package params is the parse boundary between raw user text and the typed
// calculator inputs. Fields that cannot be read are reported in
// Request.Invalid instead of failing the parse.
package params

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/fincalc/internal/catalog"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// InputFactory builds a typed input record from the merged parameter values
type InputFactory func(f *Fields) any

// Registry maps calculator kinds to the factories that build their inputs
type Registry struct {
	factories map[domain.Kind]InputFactory
}

// NewRegistry creates a registry with every built-in calculator registered
func NewRegistry() *Registry {
	registry := &Registry{
		factories: make(map[domain.Kind]InputFactory),
	}

	registry.Register(domain.KindEMI, createEMIInput)
	registry.Register(domain.KindFD, createFDInput)
	registry.Register(domain.KindGST, createGSTInput)
	registry.Register(domain.KindHRA, createHRAInput)
	registry.Register(domain.KindInterest, createInterestInput)
	registry.Register(domain.KindPPF, createPPFInput)
	registry.Register(domain.KindROI, createROIInput)
	registry.Register(domain.KindSIP, createSIPInput)
	registry.Register(domain.KindNPS, createNPSInput)

	return registry
}

// Register adds an input factory for kind
func (r *Registry) Register(kind domain.Kind, factory InputFactory) {
	r.factories[kind] = factory
}

// List returns the registered calculator kinds, sorted
func (r *Registry) List() []domain.Kind {
	kinds := make([]domain.Kind, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Build turns raw parameter text into a request. Missing parameters take
// the catalog defaults. An unknown calculator or an unknown parameter key is
// an error; an unreadable value is not, it is listed in Request.Invalid.
func (r *Registry) Build(name string, kind domain.Kind, raw map[string]string) (domain.Request, error) {
	factory, exists := r.factories[kind]
	if !exists {
		return domain.Request{}, fmt.Errorf("unknown calculator: %s", kind)
	}

	entry, err := catalog.Lookup(kind)
	if err != nil {
		return domain.Request{}, err
	}

	merged := entry.Defaults()
	for key, value := range raw {
		key = NormalizeKey(key)
		if _, ok := entry.Param(key); !ok {
			return domain.Request{}, fmt.Errorf("%s does not take parameter %q", kind, key)
		}
		merged[key] = value
	}

	if name == "" {
		name = entry.Name
	}

	fields := &Fields{raw: merged}
	input := factory(fields)
	return domain.Request{
		Name:    name,
		Kind:    kind,
		Input:   input,
		Invalid: fields.Invalid(),
	}, nil
}

// ParseSpec parses a calculator name followed by key=value pairs, for example
// "emi principal=100000 annual_rate_pct=10 tenure_years=5"
func (r *Registry) ParseSpec(calculator string, pairs []string) (domain.Request, error) {
	kind, err := domain.ParseKind(calculator)
	if err != nil {
		return domain.Request{}, err
	}

	raw, err := ParsePairs(pairs)
	if err != nil {
		return domain.Request{}, err
	}

	return r.Build("", kind, raw)
}

// ParsePairs splits "key=value" arguments into a map
func ParsePairs(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) == "" {
			return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", pair)
		}
		raw[NormalizeKey(kv[0])] = strings.TrimSpace(kv[1])
	}
	return raw, nil
}

// NormalizeKey lowercases a parameter key and maps "-" to "_"
func NormalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
