package predictor

import (
	"fmt"
	"slices"
)

// LinearModel is a fitted linear regressor exported as JSON.
type LinearModel struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func (m *LinearModel) Predict(x Frame) ([]float64, error) {
	if err := x.validate(); err != nil {
		return nil, err
	}
	if len(x.Columns) != len(m.Coef) {
		return nil, fmt.Errorf("%w: model expects %d features, got %d", ErrShapeMismatch, len(m.Coef), len(x.Columns))
	}

	out := make([]float64, len(x.Rows))
	for i, row := range x.Rows {
		y := m.Intercept
		for j, v := range row {
			y += m.Coef[j] * v
		}
		out[i] = y
	}
	return out, nil
}

// Coefficients returns the fitted weights in column order.
func (m *LinearModel) Coefficients() []float64 {
	return slices.Clone(m.Coef)
}

// StandardScaler centers and scales each column: (x - mean) / scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
	// FeatureNames, when exported, pins the column order the scaler was fitted on.
	FeatureNames []string `json:"feature_names_in,omitempty"`
}

func (s *StandardScaler) Transform(x Frame) (Frame, error) {
	if err := x.validate(); err != nil {
		return Frame{}, err
	}
	if len(s.Mean) != len(s.Scale) {
		return Frame{}, fmt.Errorf("%w: scaler has %d means and %d scales", ErrShapeMismatch, len(s.Mean), len(s.Scale))
	}
	if len(x.Columns) != len(s.Mean) {
		return Frame{}, fmt.Errorf("%w: scaler expects %d features, got %d", ErrShapeMismatch, len(s.Mean), len(x.Columns))
	}
	if len(s.FeatureNames) > 0 && !slices.Equal(s.FeatureNames, x.Columns) {
		return Frame{}, fmt.Errorf("%w: feature names differ from those seen at fit time", ErrShapeMismatch)
	}

	out := Frame{Columns: x.Columns, Rows: make([][]float64, len(x.Rows))}
	for i, row := range x.Rows {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scale := s.Scale[j]
			if scale == 0 {
				scale = 1
			}
			scaled[j] = (v - s.Mean[j]) / scale
		}
		out.Rows[i] = scaled
	}
	return out, nil
}
