package compare

import (
	"github.com/goccy/go-json"
)

// JSONFormatter renders a comparison set as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(set *ComparisonSet) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(set, "", "  ")
	}
	return json.Marshal(set)
}
