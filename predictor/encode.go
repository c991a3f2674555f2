package predictor

import (
	"fmt"
	"sort"
)

// Feature is one raw input column before encoding.
type Feature struct {
	Name  string
	Value any
}

// RawFeatures builds the single input row: the two selections followed by
// the default values in key order. A default sharing a name with a
// selection column overrides it in place.
func RawFeatures(brandCol, brand, categoryCol, category string, defaults map[string]any) []Feature {
	features := []Feature{{Name: brandCol, Value: brand}, {Name: categoryCol, Value: category}}
	index := map[string]int{brandCol: 0, categoryCol: 1}

	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if i, ok := index[k]; ok {
			features[i].Value = defaults[k]
			continue
		}
		index[k] = len(features)
		features = append(features, Feature{Name: k, Value: defaults[k]})
	}
	return features
}

// Encoded is a one-row record after one-hot encoding.
type Encoded struct {
	Columns []string
	Values  map[string]float64
}

// OneHot keeps numeric features as they are and expands string features into
// "<name>_<value>" indicator columns set to 1. Numeric columns come first,
// followed by the indicators, each group in input order.
func OneHot(features []Feature) (Encoded, error) {
	var numeric, dummies []string
	values := make(map[string]float64, len(features))

	for _, f := range features {
		switch v := f.Value.(type) {
		case string:
			col := f.Name + "_" + v
			dummies = append(dummies, col)
			values[col] = 1
		case float64:
			numeric = append(numeric, f.Name)
			values[f.Name] = v
		case int:
			numeric = append(numeric, f.Name)
			values[f.Name] = float64(v)
		case bool:
			numeric = append(numeric, f.Name)
			if v {
				values[f.Name] = 1
			} else {
				values[f.Name] = 0
			}
		case nil:
			return Encoded{}, fmt.Errorf("feature %q has no value", f.Name)
		default:
			return Encoded{}, fmt.Errorf("feature %q has unsupported type %T", f.Name, f.Value)
		}
	}

	return Encoded{Columns: append(numeric, dummies...), Values: values}, nil
}

// Reindex lays the record out in the given column order. Columns absent from
// the record are 0; record columns not listed are dropped.
func (e Encoded) Reindex(columns []string) Frame {
	row := make([]float64, len(columns))
	for i, col := range columns {
		row[i] = e.Values[col]
	}
	return Frame{Columns: columns, Rows: [][]float64{row}}
}
