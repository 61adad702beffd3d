package output

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// calculatorAssumptions lists the modeling assumption behind each calculator
var calculatorAssumptions = map[domain.Kind]string{
	domain.KindEMI:      "EMI: reducing-balance loan, monthly rate = annual rate / 12",
	domain.KindFD:       "FD: interest compounded quarterly",
	domain.KindGST:      "GST: exclusive adds tax to the amount, inclusive extracts it",
	domain.KindHRA:      "HRA: exemption is the least of HRA received, 50% (metro) or 40% of salary, and rent above 10% of salary",
	domain.KindInterest: "Interest: compound interest is compounded annually",
	domain.KindPPF:      "PPF: 7.1% p.a. unless configured otherwise, credited yearly after each deposit, minimum 15 years",
	domain.KindROI:      "ROI: CAGR is the geometric mean annual growth over the duration",
	domain.KindSIP:      "SIP: contributions at the start of each month; lumpsum compounded annually",
	domain.KindNPS:      "NPS: contributions at the start of each month until retirement; pension is one month of annuity interest",
}

// AssumptionsFor returns the assumptions for the calculators used in the
// report, in catalog order
func AssumptionsFor(report *domain.Report) []string {
	used := make(map[domain.Kind]bool)
	for _, o := range report.Outcomes {
		used[o.Kind] = true
	}

	var out []string
	for _, kind := range domain.AllKinds {
		if used[kind] {
			out = append(out, calculatorAssumptions[kind])
		}
	}
	return out
}
