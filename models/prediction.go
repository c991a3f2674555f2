package models

// PredictionRequest is the body of POST /api/predict.
type PredictionRequest struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	NClicks  int    `json:"n_clicks"`
}

// PredictionResponse carries the text shown under the predict button.
type PredictionResponse struct {
	Output string `json:"output"`
}

// Option is a dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BrandOptionsResponse is returned when the category dropdown changes. Value
// is always nil so the client clears its previous brand selection.
type BrandOptionsResponse struct {
	Options []Option `json:"options"`
	Value   *string  `json:"value"`
}

// NewOptions builds dropdown options whose label and value are the same.
func NewOptions(values []string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Label: v, Value: v})
	}
	return opts
}
