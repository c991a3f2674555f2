package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Paths locates the exported model artifacts on disk.
type Paths struct {
	Model    string
	Scaler   string
	Columns  string
	Defaults string
}

// Artifacts bundles everything needed to score one request. It is read-only
// after loading.
type Artifacts struct {
	Model    Regressor
	Scaler   Transformer
	Columns  []string
	Defaults map[string]any
}

// Loaded reports whether every artifact is present and non-empty.
func (a *Artifacts) Loaded() bool {
	return a != nil && a.Model != nil && a.Scaler != nil && len(a.Columns) > 0 && len(a.Defaults) > 0
}

// LoadArtifacts reads all four artifact files.
func LoadArtifacts(p Paths) (*Artifacts, error) {
	var model LinearModel
	if err := readJSON(p.Model, &model); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	var scaler StandardScaler
	if err := readJSON(p.Scaler, &scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	var columns []string
	if err := readJSON(p.Columns, &columns); err != nil {
		return nil, fmt.Errorf("load model columns: %w", err)
	}
	var defaults map[string]any
	if err := readJSON(p.Defaults, &defaults); err != nil {
		return nil, fmt.Errorf("load default values: %w", err)
	}

	return &Artifacts{
		Model:    &model,
		Scaler:   &scaler,
		Columns:  columns,
		Defaults: defaults,
	}, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
