package domain

// Metrics lists the EMI figures in display order
func (r EMIResult) Metrics() []Metric {
	return []Metric{
		{Key: "emi", Label: "Monthly EMI", Value: r.EMI, Unit: UnitMoney},
		{Key: "total_interest", Label: "Total Interest", Value: r.TotalInterest, Unit: UnitMoney},
		{Key: "total_payment", Label: "Total Amount", Value: r.TotalPayment, Unit: UnitMoney},
	}
}

// Metrics lists the maturity figures in display order
func (r GrowthResult) Metrics() []Metric {
	return []Metric{
		{Key: "invested", Label: "Total Investment", Value: r.Invested, Unit: UnitMoney},
		{Key: "interest", Label: "Estimated Returns", Value: r.Interest, Unit: UnitMoney},
		{Key: "maturity", Label: "Maturity Value", Value: r.Maturity, Unit: UnitMoney},
	}
}

// Metrics lists the GST figures in display order
func (r GSTResult) Metrics() []Metric {
	return []Metric{
		{Key: "gst_amount", Label: "GST Amount", Value: r.GSTAmount, Unit: UnitMoney},
		{Key: "total_amount", Label: "Total Amount", Value: r.TotalAmount, Unit: UnitMoney},
	}
}

// Metrics lists the HRA figures in display order
func (r HRAResult) Metrics() []Metric {
	return []Metric{
		{Key: "exempt_hra", Label: "Exempt HRA", Value: r.ExemptHRA, Unit: UnitMoney},
		{Key: "taxable_hra", Label: "Taxable HRA", Value: r.TaxableHRA, Unit: UnitMoney},
	}
}

// Metrics lists the ROI figures in display order
func (r ROIResult) Metrics() []Metric {
	return []Metric{
		{Key: "returns", Label: "Total Returns", Value: r.Returns, Unit: UnitMoney},
		{Key: "roi_pct", Label: "ROI", Value: r.ROIPct, Unit: UnitPercent},
		{Key: "simple_annual_roi_pct", Label: "Simple Annual ROI", Value: r.SimpleAnnualROIPct, Unit: UnitPercent},
		{Key: "cagr_pct", Label: "CAGR", Value: r.CAGRPct, Unit: UnitPercent},
	}
}

// Metrics lists the NPS figures in display order
func (r NPSResult) Metrics() []Metric {
	return []Metric{
		{Key: "invested", Label: "Total Investment", Value: r.Invested, Unit: UnitMoney},
		{Key: "pension_wealth", Label: "Pension Wealth", Value: r.PensionWealth, Unit: UnitMoney},
		{Key: "interest_earned", Label: "Interest Earned", Value: r.InterestEarned, Unit: UnitMoney},
		{Key: "annuity_amount", Label: "Annuity Amount", Value: r.AnnuityAmount, Unit: UnitMoney},
		{Key: "lumpsum", Label: "Lumpsum Amount", Value: r.Lumpsum, Unit: UnitMoney},
		{Key: "monthly_pension", Label: "Pension per Month", Value: r.MonthlyPension, Unit: UnitMoney},
	}
}
