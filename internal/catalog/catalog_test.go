package catalog

import (
	"strconv"
	"testing"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_CoversEveryKind(t *testing.T) {
	all := All()
	require.Len(t, all, len(domain.AllKinds))

	for i, kind := range domain.AllKinds {
		assert.Equal(t, kind, all[i].Kind, "catalog order follows AllKinds")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.Equal(t, "PPF Calculator", All()[0].Name)
}

func TestDefaultsWithinBounds(t *testing.T) {
	for _, e := range All() {
		for _, p := range e.Params {
			if p.Numeric() {
				v, err := strconv.ParseFloat(p.Default, 64)
				require.NoError(t, err, "%s.%s default", e.Kind, p.Key)
				assert.True(t, p.Bounds.Contains(v), "%s.%s default %v outside %+v", e.Kind, p.Key, v, p.Bounds)
				assert.Less(t, p.Bounds.Min, p.Bounds.Max)
				continue
			}
			assert.Contains(t, p.Options, p.Default, "%s.%s default must be an option", e.Kind, p.Key)
		}
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup(domain.KindEMI)
	require.NoError(t, err)
	assert.Equal(t, "EMI Calculator", e.Name)
	assert.Equal(t, "/emi-calculator", e.Route)

	p, ok := e.Param("principal")
	require.True(t, ok)
	assert.Equal(t, 1000.0, p.Bounds.Min)
	assert.Equal(t, 1000000.0, p.Bounds.Max)
	assert.Equal(t, "500000", p.Default)

	_, ok = e.Param("missing")
	assert.False(t, ok)

	_, err = Lookup("bogus")
	assert.Error(t, err)
}

func TestByRoute(t *testing.T) {
	e, err := ByRoute("/mf-returns-calculator")
	require.NoError(t, err)
	assert.Equal(t, domain.KindSIP, e.Kind)

	e, err = ByRoute("nps-calculator/")
	require.NoError(t, err)
	assert.Equal(t, domain.KindNPS, e.Kind)

	_, err = ByRoute("/tax-calculator")
	assert.Error(t, err)
}

func TestSimilar(t *testing.T) {
	fromNPS := Similar(domain.KindNPS)
	require.Len(t, fromNPS, 8)
	assert.Equal(t, "PPF Calculator", fromNPS[0].Name)
	assert.Equal(t, "ROI Calculator", fromNPS[7].Name)

	fromEMI := Similar(domain.KindEMI)
	require.Len(t, fromEMI, 7)
	for _, e := range fromEMI {
		assert.NotEqual(t, domain.KindEMI, e.Kind)
		assert.NotEqual(t, domain.KindNPS, e.Kind)
	}
}

func TestParamActive(t *testing.T) {
	e, err := Lookup(domain.KindSIP)
	require.NoError(t, err)

	monthly, _ := e.Param("monthly_investment")
	principal, _ := e.Param("principal")
	tenure, _ := e.Param("tenure_years")

	assert.True(t, monthly.Active("sip"))
	assert.False(t, monthly.Active("lumpsum"))
	assert.True(t, principal.Active("lumpsum"))
	assert.True(t, tenure.Active("lumpsum"))
}
