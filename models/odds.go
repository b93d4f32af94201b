package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Odds is a decimal payout multiplier that may be unbounded. The
// unbounded state is the reciprocal of a zero probability; it is a
// tagged variant rather than IEEE infinity because JSON and decimal
// columns cannot carry Inf losslessly. The zero value is finite zero.
type Odds struct {
	unbounded bool
	value     decimal.Decimal
}

// FiniteOdds wraps a finite multiplier.
func FiniteOdds(v decimal.Decimal) Odds {
	return Odds{value: v}
}

// UnboundedOdds returns the unbounded variant.
func UnboundedOdds() Odds {
	return Odds{unbounded: true}
}

// IsUnbounded reports whether the odds are the unbounded variant.
func (o Odds) IsUnbounded() bool {
	return o.unbounded
}

// Value returns the finite multiplier, or ErrUnboundedOddsValue for the
// unbounded variant so callers cannot mistake it for a number.
func (o Odds) Value() (decimal.Decimal, error) {
	if o.unbounded {
		return decimal.Decimal{}, ErrUnboundedOddsValue
	}
	return o.value, nil
}

// Mul scales the odds by a finite factor. Unbounded stays unbounded.
func (o Odds) Mul(factor decimal.Decimal) Odds {
	if o.unbounded {
		return o
	}
	return Odds{value: o.value.Mul(factor)}
}

func (o Odds) String() string {
	if o.unbounded {
		return "unbounded"
	}
	return o.value.String()
}

// Value is a pointer so the unbounded variant carries no value key at
// all; omitempty alone would still emit a zero decimal.
type oddsJSON struct {
	Finite bool             `json:"finite"`
	Value  *decimal.Decimal `json:"value,omitempty"`
}

// MarshalJSON emits {"finite":true,"value":...} or {"finite":false}.
func (o Odds) MarshalJSON() ([]byte, error) {
	if o.unbounded {
		return json.Marshal(oddsJSON{Finite: false})
	}
	v := o.value
	return json.Marshal(oddsJSON{Finite: true, Value: &v})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Odds) UnmarshalJSON(data []byte) error {
	var raw oddsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Finite {
		*o = UnboundedOdds()
		return nil
	}
	if raw.Value == nil {
		*o = FiniteOdds(decimal.Zero)
		return nil
	}
	*o = FiniteOdds(*raw.Value)
	return nil
}
