package domain

import (
	"encoding/json"
	"fmt"
)

const (
	docFieldName  = "name"
	docFieldCoins = "coins"
	docFieldSpins = "spins"
)

// MarshalJSON flattens Extra next to the score fields.
func (d ScoreDocument) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Extra)+3)
	for k, v := range d.Extra {
		m[k] = v
	}
	m[docFieldName] = d.Name
	if d.Coins != nil {
		m[docFieldCoins] = *d.Coins
	}
	if d.Spins != nil {
		m[docFieldSpins] = *d.Spins
	}
	return json.Marshal(m)
}

// UnmarshalJSON collects unknown fields into Extra.
func (d *ScoreDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = ScoreDocument{}
	for k, v := range raw {
		switch k {
		case docFieldName:
			if err := json.Unmarshal(v, &d.Name); err != nil {
				return fmt.Errorf("document name: %w", err)
			}
		case docFieldCoins:
			var n int
			if err := json.Unmarshal(v, &n); err != nil {
				return fmt.Errorf("document coins: %w", err)
			}
			d.Coins = &n
		case docFieldSpins:
			var n int
			if err := json.Unmarshal(v, &n); err != nil {
				return fmt.Errorf("document spins: %w", err)
			}
			d.Spins = &n
		default:
			var anyVal any
			if err := json.Unmarshal(v, &anyVal); err != nil {
				return fmt.Errorf("document field %s: %w", k, err)
			}
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			d.Extra[k] = anyVal
		}
	}
	return nil
}

// Merge overlays the fields present in update onto d and returns the result.
// Fields absent from update keep their current value.
func (d ScoreDocument) Merge(update ScoreDocument) ScoreDocument {
	out := ScoreDocument{Name: d.Name, Coins: d.Coins, Spins: d.Spins}
	if len(d.Extra) > 0 || len(update.Extra) > 0 {
		out.Extra = make(map[string]any, len(d.Extra)+len(update.Extra))
		for k, v := range d.Extra {
			out.Extra[k] = v
		}
		for k, v := range update.Extra {
			out.Extra[k] = v
		}
	}
	if update.Name != "" {
		out.Name = update.Name
	}
	if update.Coins != nil {
		out.Coins = update.Coins
	}
	if update.Spins != nil {
		out.Spins = update.Spins
	}
	return out
}
