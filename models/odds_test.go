package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOdds_ZeroValueIsFiniteZero(t *testing.T) {
	var o Odds
	assert.False(t, o.IsUnbounded())
	v, err := o.Value()
	assert.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestOdds_Value(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		o := FiniteOdds(decimal.NewFromFloat(5.0))
		v, err := o.Value()
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(5.0).Equal(v))
	})

	t.Run("unbounded", func(t *testing.T) {
		o := UnboundedOdds()
		assert.True(t, o.IsUnbounded())
		_, err := o.Value()
		assert.ErrorIs(t, err, ErrUnboundedOddsValue)
	})
}

func TestOdds_Mul(t *testing.T) {
	t.Run("finite scaling", func(t *testing.T) {
		payout := FiniteOdds(decimal.NewFromFloat(5.0)).Mul(decimal.NewFromInt(10))
		v, err := payout.Value()
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(v))
	})

	t.Run("unbounded sticks", func(t *testing.T) {
		payout := UnboundedOdds().Mul(decimal.NewFromInt(10))
		assert.True(t, payout.IsUnbounded())
	})
}

func TestOdds_String(t *testing.T) {
	assert.Equal(t, "unbounded", UnboundedOdds().String())
	assert.Equal(t, "2.5", FiniteOdds(decimal.NewFromFloat(2.5)).String())
}

func TestOdds_JSONRoundTrip(t *testing.T) {
	t.Run("finite", func(t *testing.T) {
		data, err := json.Marshal(FiniteOdds(decimal.NewFromFloat(33.33)))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"finite":true,"value":"33.33"}`, string(data))

		var out Odds
		assert.NoError(t, json.Unmarshal(data, &out))
		assert.False(t, out.IsUnbounded())
		v, err := out.Value()
		assert.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(33.33).Equal(v))
	})

	t.Run("finite zero keeps its value key", func(t *testing.T) {
		data, err := json.Marshal(FiniteOdds(decimal.Zero))
		assert.NoError(t, err)
		assert.JSONEq(t, `{"finite":true,"value":"0"}`, string(data))
	})

	t.Run("unbounded never becomes a number", func(t *testing.T) {
		data, err := json.Marshal(UnboundedOdds())
		assert.NoError(t, err)
		assert.JSONEq(t, `{"finite":false}`, string(data))

		var out Odds
		assert.NoError(t, json.Unmarshal(data, &out))
		assert.True(t, out.IsUnbounded())
	})

	t.Run("finite payload without a value decodes as zero", func(t *testing.T) {
		var out Odds
		assert.NoError(t, json.Unmarshal([]byte(`{"finite":true}`), &out))
		assert.False(t, out.IsUnbounded())
		v, err := out.Value()
		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	})

	t.Run("invalid payload", func(t *testing.T) {
		var out Odds
		assert.Error(t, json.Unmarshal([]byte(`"inf"`), &out))
	})
}
