package params

import (
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// Factory functions for each calculator

func createEMIInput(f *Fields) any {
	return domain.EMIInput{
		Principal:     f.Decimal("principal"),
		AnnualRatePct: f.Decimal("annual_rate_pct"),
		TenureYears:   f.Int("tenure_years"),
	}
}

func createFDInput(f *Fields) any {
	return domain.FDInput{
		Principal:     f.Decimal("principal"),
		TenureYears:   f.Int("tenure_years"),
		AnnualRatePct: f.Decimal("annual_rate_pct"),
	}
}

func createGSTInput(f *Fields) any {
	return domain.GSTInput{
		Amount:  f.Decimal("amount"),
		RatePct: f.Decimal("rate_pct"),
		Mode:    domain.GSTMode(f.Choice("mode", string(domain.GSTExclusive), string(domain.GSTInclusive))),
	}
}

func createHRAInput(f *Fields) any {
	return domain.HRAInput{
		BasicSalary:       f.Decimal("basic_salary"),
		DearnessAllowance: f.Decimal("dearness_allowance"),
		HRAReceived:       f.Decimal("hra_received"),
		RentPaid:          f.Decimal("rent_paid"),
		IsMetro:           f.Bool("is_metro"),
	}
}

func createInterestInput(f *Fields) any {
	return domain.InterestInput{
		Principal:     f.Decimal("principal"),
		TenureYears:   f.Int("tenure_years"),
		AnnualRatePct: f.Decimal("annual_rate_pct"),
		Mode:          domain.InterestMode(f.Choice("mode", string(domain.InterestSimple), string(domain.InterestCompound))),
	}
}

func createPPFInput(f *Fields) any {
	return domain.PPFInput{
		YearlyInvestment: f.Decimal("yearly_investment"),
		TenureYears:      f.Int("tenure_years"),
	}
}

func createROIInput(f *Fields) any {
	return domain.ROIInput{
		Initial:     f.Decimal("initial"),
		Final:       f.Decimal("final"),
		TenureYears: f.Int("tenure_years"),
	}
}

// createSIPInput only reads the amount that applies to the selected mode, so
// a bad monthly amount does not block a lumpsum calculation
func createSIPInput(f *Fields) any {
	in := domain.SIPInput{
		Mode:          domain.InvestmentMode(f.Choice("mode", string(domain.InvestmentSIP), string(domain.InvestmentLumpsum))),
		TenureYears:   f.Int("tenure_years"),
		AnnualRatePct: f.Decimal("annual_rate_pct"),
	}
	switch in.Mode {
	case domain.InvestmentSIP:
		in.MonthlyInvestment = f.Decimal("monthly_investment")
	case domain.InvestmentLumpsum:
		in.Principal = f.Decimal("principal")
	}
	return in
}

func createNPSInput(f *Fields) any {
	return domain.NPSInput{
		MonthlyInvestment: f.Decimal("monthly_investment"),
		ExpectedReturnPct: f.Decimal("expected_return_pct"),
		CurrentAge:        f.Int("current_age"),
		RetirementAge:     f.Int("retirement_age"),
		AnnuityPct:        f.Decimal("annuity_pct"),
		AnnuityRatePct:    f.Decimal("annuity_rate_pct"),
	}
}
