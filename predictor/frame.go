package predictor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch reports features that do not line up with the columns an
// artifact was fitted on.
var ErrShapeMismatch = errors.New("feature shape mismatch")

// Frame is a dense feature matrix with named, ordered columns.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

func (f Frame) validate() error {
	for i, row := range f.Rows {
		if len(row) != len(f.Columns) {
			return fmt.Errorf("%w: row %d has %d values for %d columns", ErrShapeMismatch, i, len(row), len(f.Columns))
		}
	}
	return nil
}

// Regressor predicts one target value per row.
type Regressor interface {
	Predict(x Frame) ([]float64, error)
}

// Transformer maps a frame onto another frame with the same columns.
type Transformer interface {
	Transform(x Frame) (Frame, error)
}
