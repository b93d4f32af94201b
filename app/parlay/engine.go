package parlay

import (
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/models"
)

// evaluator implements the Evaluator interface
type evaluator struct {
	config *Config
}

// NewEvaluator creates a new parlay evaluator
func NewEvaluator(config *Config) Evaluator {
	return &evaluator{
		config: config,
	}
}

// Evaluate derives the full parlay result from the legs and stake. It
// is pure and never fails; degeneracy (zero combined probability) is
// carried in the result as unbounded odds rather than an error or an
// IEEE infinity.
//
// Implied odds here are the fair odds, the reciprocal of the combined
// probability. Because expected value is computed from that same
// probability, EV is exactly zero for every non-degenerate parlay.
// That is the quoting model this evaluator implements; see
// EvaluateWithQuotedOdds for EV against venue-quoted odds.
func (e *evaluator) Evaluate(legs []models.ParlayLeg, stake decimal.Decimal) models.ParlayResult {
	if len(legs) == 0 {
		// Nothing to evaluate. Zero everything and signal "hold" so an
		// empty slip never implies a judgement.
		return models.ParlayResult{
			CombinedProbability: decimal.Zero,
			ImpliedOdds:         models.FiniteOdds(decimal.Zero),
			PotentialPayout:     models.FiniteOdds(decimal.Zero),
			ExpectedValue:       decimal.Zero,
			RiskLevel:           models.RiskLow,
			Recommendation:      models.RecommendationHold,
		}
	}

	combined := e.combinedProbability(legs)

	var odds models.Odds
	if combined.IsZero() {
		odds = models.UnboundedOdds()
	} else {
		odds = models.FiniteOdds(decimal.NewFromInt(1).Div(combined))
	}

	payout := odds.Mul(stake)

	var ev decimal.Decimal
	if odds.IsUnbounded() {
		// Zero-probability parlay: the stake is lost with certainty.
		ev = stake.Neg()
	} else {
		// p × (stake/p) − stake is identically zero. Computing it
		// through the rounded quotient would leave a division residue,
		// so the identity is applied directly.
		ev = decimal.Zero
	}

	return models.ParlayResult{
		CombinedProbability: combined,
		ImpliedOdds:         odds,
		PotentialPayout:     payout,
		ExpectedValue:       ev,
		RiskLevel:           e.classifyRisk(combined),
		Recommendation:      e.recommend(ev, combined, stake),
	}
}

// EvaluateWithQuotedOdds prices the parlay against externally quoted
// decimal odds instead of the fair odds implied by the legs. This is
// the variant where expected value is meaningful: the win probability
// still comes from the legs, but the payout comes from the quote.
func (e *evaluator) EvaluateWithQuotedOdds(legs []models.ParlayLeg, stake, quotedOdds decimal.Decimal) models.ParlayResult {
	if len(legs) == 0 {
		return e.Evaluate(legs, stake)
	}

	combined := e.combinedProbability(legs)
	odds := models.FiniteOdds(quotedOdds)
	payout := odds.Mul(stake)

	payoutValue, _ := payout.Value()
	ev := combined.Mul(payoutValue).Sub(stake)

	return models.ParlayResult{
		CombinedProbability: combined,
		ImpliedOdds:         odds,
		PotentialPayout:     payout,
		ExpectedValue:       ev,
		RiskLevel:           e.classifyRisk(combined),
		Recommendation:      e.recommend(ev, combined, stake),
	}
}

// combinedProbability is the product of the legs' frozen probabilities.
// Legs are assumed statistically independent; no correlation adjustment
// is modeled. A stored probability outside [0,1] (upstream data error)
// propagates unchanged instead of being clamped.
func (e *evaluator) combinedProbability(legs []models.ParlayLeg) decimal.Decimal {
	combined := decimal.NewFromInt(1)
	for i := range legs {
		combined = combined.Mul(legs[i].Probability)
	}
	return combined
}

// classifyRisk buckets the combined probability into a risk tier.
func (e *evaluator) classifyRisk(combined decimal.Decimal) models.RiskLevel {
	switch {
	case combined.GreaterThanOrEqual(e.config.LowRiskMinProbability):
		return models.RiskLow
	case combined.GreaterThanOrEqual(e.config.MediumRiskMinProbability):
		return models.RiskMedium
	case combined.GreaterThanOrEqual(e.config.HighRiskMinProbability):
		return models.RiskHigh
	default:
		return models.RiskExtreme
	}
}

// recommend applies the recommendation bands in order, first match
// wins. The EV ratio is only defined for a positive stake; with no
// stake there is no edge to measure and the ratio stays zero.
func (e *evaluator) recommend(ev, combined, stake decimal.Decimal) models.Recommendation {
	evRatio := decimal.Zero
	if stake.GreaterThan(decimal.Zero) {
		evRatio = ev.Div(stake)
	}

	switch {
	case evRatio.GreaterThan(e.config.StrongBuyMinEVRatio) &&
		combined.GreaterThan(e.config.StrongBuyMinProbability):
		return models.RecommendationStrongBuy
	case evRatio.GreaterThan(e.config.BuyMinEVRatio) &&
		combined.GreaterThan(e.config.BuyMinProbability):
		return models.RecommendationBuy
	case evRatio.GreaterThan(e.config.HoldMinEVRatio):
		return models.RecommendationHold
	default:
		return models.RecommendationAvoid
	}
}
