// Package predictor turns a brand/category selection into a price estimate
// using exported regression artifacts.
package predictor

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"digikala-dashboard/config"
)

var (
	ErrMissingSelection = errors.New("brand and category are required")
	ErrModelUnavailable = errors.New("model artifacts are not loaded")
	ErrNonFinite        = errors.New("prediction is not a finite number")
)

// Result is what one press of the predict button produces.
type Result struct {
	Text  string              `json:"output"`
	Price decimal.NullDecimal `json:"price"`
}

// Service scores requests against a fixed set of artifacts.
type Service struct {
	artifacts   *Artifacts
	brandCol    string
	categoryCol string
}

// NewService wraps artifacts, which may be nil when loading failed.
func NewService(artifacts *Artifacts, cols config.Columns) *Service {
	return &Service{
		artifacts:   artifacts,
		brandCol:    cols.Brand,
		categoryCol: cols.Category,
	}
}

// Loaded reports whether predictions are possible.
func (s *Service) Loaded() bool {
	return s.artifacts.Loaded()
}

// Predict estimates the price for brand and category. The model works on
// log1p(price), so its output is mapped back with expm1.
func (s *Service) Predict(brand, category string) (decimal.Decimal, error) {
	if brand == "" || category == "" {
		return decimal.Zero, ErrMissingSelection
	}
	if !s.Loaded() {
		return decimal.Zero, ErrModelUnavailable
	}
	a := s.artifacts

	encoded, err := OneHot(RawFeatures(s.brandCol, brand, s.categoryCol, category, a.Defaults))
	if err != nil {
		return decimal.Zero, fmt.Errorf("encode features: %w", err)
	}

	scaled, err := a.Scaler.Transform(encoded.Reindex(a.Columns))
	if err != nil {
		return decimal.Zero, fmt.Errorf("scale features: %w", err)
	}

	logPrices, err := a.Model.Predict(scaled)
	if err != nil {
		return decimal.Zero, fmt.Errorf("predict: %w", err)
	}
	if len(logPrices) != 1 {
		return decimal.Zero, fmt.Errorf("%w: model returned %d predictions for one row", ErrShapeMismatch, len(logPrices))
	}

	price := math.Expm1(logPrices[0])
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return decimal.Zero, ErrNonFinite
	}
	return decimal.NewFromFloat(price), nil
}

// Handle answers a button press. Nothing is shown before the first click;
// every failure becomes a message for the output region.
func (s *Service) Handle(clicks int, brand, category string) Result {
	if clicks <= 0 {
		return Result{}
	}

	price, err := s.Predict(brand, category)
	switch {
	case err == nil:
		return Result{Text: FormatPrice(price), Price: decimal.NewNullDecimal(price)}
	case errors.Is(err, ErrMissingSelection):
		return Result{Text: MsgSelectAll}
	case errors.Is(err, ErrModelUnavailable):
		return Result{Text: MsgModelUnavailable}
	default:
		return Result{Text: FormatError(err)}
	}
}

// Importance returns the model columns with their absolute weights when the
// model exposes coefficients.
func (s *Service) Importance() ([]string, []float64, bool) {
	if !s.Loaded() {
		return nil, nil, false
	}
	m, ok := s.artifacts.Model.(interface{ Coefficients() []float64 })
	if !ok {
		return nil, nil, false
	}
	coef := m.Coefficients()
	if len(coef) != len(s.artifacts.Columns) {
		return nil, nil, false
	}
	for i, c := range coef {
		coef[i] = math.Abs(c)
	}
	return s.artifacts.Columns, coef, true
}
