package domain

import "github.com/shopspring/decimal"

// Input and result records for each calculator. Every record is a value
// snapshot built for exactly one calculation; none of them is mutated after
// it has been handed to the engine.

// EMIInput holds the loan parameters for an equated monthly installment
type EMIInput struct {
	Principal     decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePct decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	TenureYears   int             `yaml:"tenure_years" json:"tenure_years"`
}

// EMIResult is the monthly installment and loan totals
type EMIResult struct {
	EMI           decimal.Decimal `json:"emi"`
	TotalPayment  decimal.Decimal `json:"total_payment"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// FDInput holds fixed deposit parameters (quarterly compounding)
type FDInput struct {
	Principal     decimal.Decimal `yaml:"principal" json:"principal"`
	TenureYears   int             `yaml:"tenure_years" json:"tenure_years"`
	AnnualRatePct decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
}

// GrowthResult is the maturity/invested/interest triple shared by the
// FD, Interest, PPF and SIP/Lumpsum calculators
type GrowthResult struct {
	Maturity decimal.Decimal `json:"maturity"`
	Invested decimal.Decimal `json:"invested"`
	Interest decimal.Decimal `json:"interest"`
}

// FDResult is the fixed deposit maturity breakdown
type FDResult = GrowthResult

// GSTInput holds a transaction amount and the GST rate to apply
type GSTInput struct {
	Amount  decimal.Decimal `yaml:"amount" json:"amount"`
	RatePct decimal.Decimal `yaml:"rate_pct" json:"rate_pct"`
	Mode    GSTMode         `yaml:"mode" json:"mode"`
}

// GSTResult is the tax component and the resulting total
type GSTResult struct {
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// HRAInput holds annual salary figures used for the HRA exemption
type HRAInput struct {
	BasicSalary       decimal.Decimal `yaml:"basic_salary" json:"basic_salary"`
	DearnessAllowance decimal.Decimal `yaml:"dearness_allowance" json:"dearness_allowance"`
	HRAReceived       decimal.Decimal `yaml:"hra_received" json:"hra_received"`
	RentPaid          decimal.Decimal `yaml:"rent_paid" json:"rent_paid"`
	IsMetro           bool            `yaml:"is_metro" json:"is_metro"`
}

// HRAResult splits HRA into its exempt and taxable parts
type HRAResult struct {
	ExemptHRA  decimal.Decimal `json:"exempt_hra"`
	TaxableHRA decimal.Decimal `json:"taxable_hra"`
}

// InterestInput holds parameters for simple or compound interest
type InterestInput struct {
	Principal     decimal.Decimal `yaml:"principal" json:"principal"`
	TenureYears   int             `yaml:"tenure_years" json:"tenure_years"`
	AnnualRatePct decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	Mode          InterestMode    `yaml:"mode" json:"mode"`
}

// InterestResult is the maturity breakdown for the interest calculator
type InterestResult = GrowthResult

// PPFInput holds the yearly contribution and tenure of a PPF account
type PPFInput struct {
	YearlyInvestment decimal.Decimal `yaml:"yearly_investment" json:"yearly_investment"`
	TenureYears      int             `yaml:"tenure_years" json:"tenure_years"`
}

// PPFResult is the PPF maturity breakdown
type PPFResult = GrowthResult

// ROIInput holds the start and end value of an investment
type ROIInput struct {
	Initial     decimal.Decimal `yaml:"initial" json:"initial"`
	Final       decimal.Decimal `yaml:"final" json:"final"`
	TenureYears int             `yaml:"tenure_years" json:"tenure_years"`
}

// ROIResult holds absolute and annualised returns
type ROIResult struct {
	Returns            decimal.Decimal `json:"returns"`
	ROIPct             decimal.Decimal `json:"roi_pct"`
	SimpleAnnualROIPct decimal.Decimal `json:"simple_annual_roi_pct"`
	CAGRPct            decimal.Decimal `json:"cagr_pct"`
}

// SIPInput holds parameters for a monthly SIP or a lumpsum investment.
// MonthlyInvestment is read in SIP mode, Principal in lumpsum mode.
type SIPInput struct {
	Mode              InvestmentMode  `yaml:"mode" json:"mode"`
	MonthlyInvestment decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
	TenureYears       int             `yaml:"tenure_years" json:"tenure_years"`
	AnnualRatePct     decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
}

// SIPResult is the maturity breakdown for SIP and lumpsum investments
type SIPResult = GrowthResult

// NPSInput holds contribution and annuity parameters for the NPS
type NPSInput struct {
	MonthlyInvestment decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	ExpectedReturnPct decimal.Decimal `yaml:"expected_return_pct" json:"expected_return_pct"`
	CurrentAge        int             `yaml:"current_age" json:"current_age"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirement_age"`
	AnnuityPct        decimal.Decimal `yaml:"annuity_pct" json:"annuity_pct"`
	AnnuityRatePct    decimal.Decimal `yaml:"annuity_rate_pct" json:"annuity_rate_pct"`
}

// NPSResult is the corpus at retirement and how it is split
type NPSResult struct {
	Invested       decimal.Decimal `json:"invested"`
	PensionWealth  decimal.Decimal `json:"pension_wealth"`
	InterestEarned decimal.Decimal `json:"interest_earned"`
	AnnuityAmount  decimal.Decimal `json:"annuity_amount"`
	Lumpsum        decimal.Decimal `json:"lumpsum"`
	MonthlyPension decimal.Decimal `json:"monthly_pension"`
}
