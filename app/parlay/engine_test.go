package parlay

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakehouse/parlay/models"
)

func legWithProbability(p float64) models.ParlayLeg {
	prob := decimal.NewFromFloat(p)
	return models.ParlayLeg{
		Market: models.Market{
			ID:       "m-" + prob.String(),
			Question: "test market",
			YesPrice: prob,
			NoPrice:  decimal.NewFromInt(1).Sub(prob),
			Platform: "demo",
		},
		Outcome:     models.OutcomeYes,
		Probability: prob,
	}
}

func legsWithProbabilities(ps ...float64) []models.ParlayLeg {
	legs := make([]models.ParlayLeg, 0, len(ps))
	for _, p := range ps {
		legs = append(legs, legWithProbability(p))
	}
	return legs
}

func TestEvaluator_Evaluate(t *testing.T) {
	eval := NewEvaluator(GetDefaultConfig())
	ten := decimal.NewFromInt(10)

	t.Run("empty slip yields zeroes and hold", func(t *testing.T) {
		result := eval.Evaluate(nil, decimal.NewFromInt(25))

		assert.True(t, result.CombinedProbability.IsZero())
		odds, err := result.ImpliedOdds.Value()
		require.NoError(t, err)
		assert.True(t, odds.IsZero())
		payout, err := result.PotentialPayout.Value()
		require.NoError(t, err)
		assert.True(t, payout.IsZero())
		assert.True(t, result.ExpectedValue.IsZero())
		assert.Equal(t, models.RiskLow, result.RiskLevel)
		assert.Equal(t, models.RecommendationHold, result.Recommendation)
	})

	t.Run("single leg passes its probability through", func(t *testing.T) {
		result := eval.Evaluate(legsWithProbabilities(0.62), ten)

		assert.True(t, result.CombinedProbability.Equal(decimal.NewFromFloat(0.62)))
		odds, err := result.ImpliedOdds.Value()
		require.NoError(t, err)
		assert.True(t, odds.Equal(decimal.NewFromInt(1).Div(decimal.NewFromFloat(0.62))))
		assert.Equal(t, models.RiskLow, result.RiskLevel)
	})

	t.Run("two legs multiply into medium risk at the boundary", func(t *testing.T) {
		result := eval.Evaluate(legsWithProbabilities(0.5, 0.4), ten)

		assert.True(t, result.CombinedProbability.Equal(decimal.NewFromFloat(0.20)))

		odds, err := result.ImpliedOdds.Value()
		require.NoError(t, err)
		assert.True(t, odds.Equal(decimal.NewFromInt(5)))

		payout, err := result.PotentialPayout.Value()
		require.NoError(t, err)
		assert.True(t, payout.Equal(decimal.NewFromInt(50)))

		// 0.20 exactly is medium, not high.
		assert.Equal(t, models.RiskMedium, result.RiskLevel)
	})

	t.Run("long shot is extreme risk", func(t *testing.T) {
		result := eval.Evaluate(legsWithProbabilities(0.03), ten)

		odds, err := result.ImpliedOdds.Value()
		require.NoError(t, err)
		assert.True(t, odds.Round(2).Equal(decimal.NewFromFloat(33.33)))
		assert.Equal(t, models.RiskExtreme, result.RiskLevel)
	})

	t.Run("leg order does not change the result", func(t *testing.T) {
		forward := eval.Evaluate(legsWithProbabilities(0.9, 0.5, 0.3), ten)
		reversed := eval.Evaluate(legsWithProbabilities(0.3, 0.5, 0.9), ten)

		assert.True(t, forward.CombinedProbability.Equal(reversed.CombinedProbability))
		assert.True(t, forward.ExpectedValue.Equal(reversed.ExpectedValue))
		assert.Equal(t, forward.RiskLevel, reversed.RiskLevel)
		assert.Equal(t, forward.Recommendation, reversed.Recommendation)
	})

	t.Run("fair odds make expected value zero", func(t *testing.T) {
		// Includes probabilities whose reciprocal does not terminate, so
		// recomputing EV from the rounded odds would leave a residue.
		cases := [][]float64{
			{0.5},
			{0.62},
			{0.03},
			{0.5, 0.4},
			{0.9, 0.8, 0.7},
			{0.25, 0.25, 0.25, 0.25},
		}
		for _, probs := range cases {
			result := eval.Evaluate(legsWithProbabilities(probs...), ten)
			assert.True(t, result.ExpectedValue.IsZero(),
				"EV should be exactly zero for probabilities %v, got %s", probs, result.ExpectedValue)
		}
	})

	t.Run("zero-probability leg makes the parlay degenerate", func(t *testing.T) {
		result := eval.Evaluate(legsWithProbabilities(0.5, 0), ten)

		assert.True(t, result.CombinedProbability.IsZero())
		assert.True(t, result.ImpliedOdds.IsUnbounded())
		assert.True(t, result.PotentialPayout.IsUnbounded())
		// The stake is lost with certainty.
		assert.True(t, result.ExpectedValue.Equal(ten.Neg()))
		assert.Equal(t, models.RiskExtreme, result.RiskLevel)
		assert.Equal(t, models.RecommendationAvoid, result.Recommendation)
	})

	t.Run("zero stake yields hold", func(t *testing.T) {
		result := eval.Evaluate(legsWithProbabilities(0.5), decimal.Zero)

		assert.True(t, result.ExpectedValue.IsZero())
		assert.Equal(t, models.RecommendationHold, result.Recommendation)
	})
}

func TestEvaluator_ClassifyRisk(t *testing.T) {
	eval := NewEvaluator(GetDefaultConfig())
	ten := decimal.NewFromInt(10)

	cases := []struct {
		probability float64
		want        models.RiskLevel
	}{
		{0.95, models.RiskLow},
		{0.40, models.RiskLow},
		{0.399, models.RiskMedium},
		{0.20, models.RiskMedium},
		{0.199, models.RiskHigh},
		{0.05, models.RiskHigh},
		{0.049, models.RiskExtreme},
		{0.001, models.RiskExtreme},
	}

	for _, tc := range cases {
		result := eval.Evaluate(legsWithProbabilities(tc.probability), ten)
		assert.Equal(t, tc.want, result.RiskLevel, "probability %v", tc.probability)
	}
}

func TestEvaluator_EvaluateWithQuotedOdds(t *testing.T) {
	eval := NewEvaluator(GetDefaultConfig())
	ten := decimal.NewFromInt(10)
	legs := legsWithProbabilities(0.5, 0.4)

	t.Run("positive edge above both strong buy bands", func(t *testing.T) {
		// p = 0.20, payout = 65, EV = 0.20*65 - 10 = 3, ratio 0.30.
		result := eval.EvaluateWithQuotedOdds(legs, ten, decimal.NewFromFloat(6.5))

		assert.True(t, result.ExpectedValue.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, models.RecommendationStrongBuy, result.Recommendation)
	})

	t.Run("modest edge lands in buy", func(t *testing.T) {
		// payout = 55, EV = 1, ratio 0.10.
		result := eval.EvaluateWithQuotedOdds(legs, ten, decimal.NewFromFloat(5.5))

		assert.True(t, result.ExpectedValue.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, models.RecommendationBuy, result.Recommendation)
	})

	t.Run("small negative edge holds", func(t *testing.T) {
		// payout = 48, EV = -0.40, ratio -0.04.
		result := eval.EvaluateWithQuotedOdds(legs, ten, decimal.NewFromFloat(4.8))

		assert.Equal(t, models.RecommendationHold, result.Recommendation)
	})

	t.Run("deep negative edge avoids", func(t *testing.T) {
		// payout = 40, EV = -2, ratio -0.20.
		result := eval.EvaluateWithQuotedOdds(legs, ten, decimal.NewFromInt(4))

		assert.Equal(t, models.RecommendationAvoid, result.Recommendation)
	})

	t.Run("empty slip falls back to the fair evaluation", func(t *testing.T) {
		result := eval.EvaluateWithQuotedOdds(nil, ten, decimal.NewFromInt(4))

		assert.True(t, result.CombinedProbability.IsZero())
		assert.Equal(t, models.RecommendationHold, result.Recommendation)
	})
}
