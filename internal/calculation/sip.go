package calculation

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateSIP computes the maturity of a monthly SIP (paid at the start of
// each month) or of a lumpsum compounded annually.
func CalculateSIP(in domain.SIPInput) (domain.SIPResult, error) {
	switch in.Mode {
	case domain.InvestmentSIP:
		return calculateMonthlySIP(in)
	case domain.InvestmentLumpsum:
		return calculateLumpsum(in)
	default:
		return domain.SIPResult{}, domain.NewValidationError(domain.KindSIP, domain.ErrInvalidInput, "mode")
	}
}

func calculateMonthlySIP(in domain.SIPInput) (domain.SIPResult, error) {
	months := in.TenureYears * monthsPerYear
	monthlyRate := percentToMonthlyRate(in.AnnualRatePct)

	maturity, err := annuityDue(domain.KindSIP, in.MonthlyInvestment, monthlyRate, months, "annual_rate_pct")
	if err != nil {
		return domain.SIPResult{}, err
	}

	invested := in.MonthlyInvestment.Mul(decimal.NewFromInt(int64(months)))
	return domain.SIPResult{
		Maturity: maturity,
		Invested: invested,
		Interest: maturity.Sub(invested),
	}, nil
}

func calculateLumpsum(in domain.SIPInput) (domain.SIPResult, error) {
	growth, err := powInt(domain.KindSIP, one.Add(percentToRate(in.AnnualRatePct)), in.TenureYears, "annual_rate_pct", "tenure_years")
	if err != nil {
		return domain.SIPResult{}, err
	}

	maturity := in.Principal.Mul(growth)
	return domain.SIPResult{
		Maturity: maturity,
		Invested: in.Principal,
		Interest: maturity.Sub(in.Principal),
	}, nil
}
