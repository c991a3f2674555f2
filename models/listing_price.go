package models

import "math"

// ListingPrice is one dataset row: a product's brand and category with its
// actual price and the price predicted for it offline.
type ListingPrice struct {
	ID             uint    `json:"-" gorm:"primaryKey"`
	Brand          string  `json:"brand" gorm:"column:brand;not null"`
	Category       string  `json:"category" gorm:"column:category;not null"`
	ActualPrice    float64 `json:"actual_price" gorm:"column:actual_price"`
	PredictedPrice float64 `json:"predicted_price" gorm:"column:predicted_price"`
}

// Plottable reports whether both prices are usable as chart coordinates.
func (l ListingPrice) Plottable() bool {
	return !math.IsNaN(l.ActualPrice) && !math.IsNaN(l.PredictedPrice) &&
		!math.IsInf(l.ActualPrice, 0) && !math.IsInf(l.PredictedPrice, 0)
}
