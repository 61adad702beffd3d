package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the calculators
type Kind string

const (
	KindEMI      Kind = "emi"
	KindFD       Kind = "fd"
	KindGST      Kind = "gst"
	KindHRA      Kind = "hra"
	KindInterest Kind = "interest"
	KindPPF      Kind = "ppf"
	KindROI      Kind = "roi"
	KindSIP      Kind = "sip"
	KindNPS      Kind = "nps"
)

// AllKinds lists every calculator in catalog order
var AllKinds = []Kind{
	KindPPF,
	KindSIP,
	KindFD,
	KindEMI,
	KindGST,
	KindHRA,
	KindInterest,
	KindROI,
	KindNPS,
}

// kindAliases maps accepted spellings onto a calculator kind
var kindAliases = map[string]Kind{
	"emi":           KindEMI,
	"loan":          KindEMI,
	"fd":            KindFD,
	"fixed-deposit": KindFD,
	"gst":           KindGST,
	"hra":           KindHRA,
	"interest":      KindInterest,
	"ppf":           KindPPF,
	"roi":           KindROI,
	"sip":           KindSIP,
	"lumpsum":       KindSIP,
	"mf":            KindSIP,
	"mf-returns":    KindSIP,
	"nps":           KindNPS,
	"pension":       KindNPS,
}

// ParseKind resolves a calculator name (case-insensitive, aliases allowed)
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "-calculator")
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown calculator: %q", name)
}

// String returns the canonical calculator name
func (k Kind) String() string {
	return string(k)
}

// GSTMode selects how the GST rate is applied to the amount
type GSTMode string

const (
	GSTExclusive GSTMode = "exclusive"
	GSTInclusive GSTMode = "inclusive"
)

// InterestMode selects simple or annually compounded interest
type InterestMode string

const (
	InterestSimple   InterestMode = "simple"
	InterestCompound InterestMode = "compound"
)

// InvestmentMode selects a monthly SIP or a one-time lumpsum
type InvestmentMode string

const (
	InvestmentSIP     InvestmentMode = "sip"
	InvestmentLumpsum InvestmentMode = "lumpsum"
)
