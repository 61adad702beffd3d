package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/fincalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Policy holds the engine's configurable behavior
type Policy struct {
	// ClampNegativeHRA floors a negative HRA exemption at zero
	ClampNegativeHRA bool
	// PPFRatePct is the annual PPF interest rate
	PPFRatePct decimal.Decimal
}

// DefaultPolicy returns the policy used by NewEngine
func DefaultPolicy() Policy {
	return Policy{PPFRatePct: DefaultPPFRatePct}
}

// Engine dispatches calculator requests and turns them into outcomes
type Engine struct {
	Policy Policy
	Logger Logger
}

// NewEngine creates an engine with the default policy
func NewEngine() *Engine {
	return NewEngineWithPolicy(DefaultPolicy())
}

// NewEngineWithPolicy creates an engine with the given policy
func NewEngineWithPolicy(p Policy) *Engine {
	if p.PPFRatePct.IsZero() {
		p.PPFRatePct = DefaultPPFRatePct
	}
	return &Engine{Policy: p, Logger: NopLogger{}}
}

// SetLogger sets the logger; nil installs a no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate evaluates one request. It never fails: invalid input, failed
// validation and arithmetic singularities all produce an unavailable outcome
// with Err set.
func (e *Engine) Calculate(ctx context.Context, req domain.Request) domain.Outcome {
	out := domain.Outcome{Name: req.Name, Kind: req.Kind, Input: req.Input}

	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	if len(req.Invalid) > 0 {
		out.Err = domain.NewValidationError(req.Kind, domain.ErrInvalidInput, req.Invalid...)
		e.Logger.Debugf("%s: unparseable fields %v", req.Kind, req.Invalid)
		return out
	}

	result, err := e.dispatch(req)
	if err != nil {
		out.Err = err
		e.Logger.Debugf("%s: result unavailable: %v", req.Kind, err)
		return out
	}

	out.Result = result
	out.Breakdown = BreakdownFor(req.Input, result)
	e.Logger.Debugf("%s: calculated %q", req.Kind, req.Name)
	return out
}

func (e *Engine) dispatch(req domain.Request) (domain.Result, error) {
	switch in := req.Input.(type) {
	case domain.EMIInput:
		if err := checkKind(req.Kind, domain.KindEMI); err != nil {
			return nil, err
		}
		return nilOnError(CalculateEMI(in))
	case domain.FDInput:
		if err := checkKind(req.Kind, domain.KindFD); err != nil {
			return nil, err
		}
		return nilOnError(CalculateFD(in))
	case domain.GSTInput:
		if err := checkKind(req.Kind, domain.KindGST); err != nil {
			return nil, err
		}
		return nilOnError(CalculateGST(in))
	case domain.HRAInput:
		if err := checkKind(req.Kind, domain.KindHRA); err != nil {
			return nil, err
		}
		res, err := CalculateHRA(in)
		if err != nil {
			return nil, err
		}
		if e.Policy.ClampNegativeHRA {
			res = ClampHRA(in, res)
		}
		return res, nil
	case domain.InterestInput:
		if err := checkKind(req.Kind, domain.KindInterest); err != nil {
			return nil, err
		}
		return nilOnError(CalculateInterest(in))
	case domain.PPFInput:
		if err := checkKind(req.Kind, domain.KindPPF); err != nil {
			return nil, err
		}
		return nilOnError(CalculatePPFAtRate(in, e.Policy.PPFRatePct))
	case domain.ROIInput:
		if err := checkKind(req.Kind, domain.KindROI); err != nil {
			return nil, err
		}
		return nilOnError(CalculateROI(in))
	case domain.SIPInput:
		if err := checkKind(req.Kind, domain.KindSIP); err != nil {
			return nil, err
		}
		return nilOnError(CalculateSIP(in))
	case domain.NPSInput:
		if err := checkKind(req.Kind, domain.KindNPS); err != nil {
			return nil, err
		}
		return nilOnError(CalculateNPS(in))
	case nil:
		return nil, fmt.Errorf("%s: request has no input", req.Kind)
	default:
		return nil, fmt.Errorf("%s: unsupported input type %T", req.Kind, req.Input)
	}
}

// nilOnError drops the zero-value result when err is set, so callers see a
// nil domain.Result for unavailable outcomes
func nilOnError(r domain.Result, err error) (domain.Result, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func checkKind(got, want domain.Kind) error {
	if got != "" && got != want {
		return fmt.Errorf("calculator %q does not accept %s input", got, want)
	}
	return nil
}

// CalculateAll evaluates a batch of requests in order. Cancellation stops the
// batch; outcomes for requests not yet evaluated carry the context error.
func (e *Engine) CalculateAll(ctx context.Context, reqs []domain.Request) domain.Report {
	report := domain.Report{
		GeneratedAt: time.Now(),
		Outcomes:    make([]domain.Outcome, 0, len(reqs)),
	}

	e.Logger.Infof("calculating %d requests", len(reqs))
	for _, req := range reqs {
		report.Outcomes = append(report.Outcomes, e.Calculate(ctx, req))
	}

	if n := len(reqs) - report.AvailableCount(); n > 0 {
		e.Logger.Warnf("%d of %d results unavailable", n, len(reqs))
	}
	return report
}
