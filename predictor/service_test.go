package predictor

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"digikala-dashboard/config"
)

var testColumns = config.Columns{Brand: "Brand", Category: "Category1"}

type stubModel struct {
	out   float64
	calls int
	seen  Frame
}

func (m *stubModel) Predict(x Frame) ([]float64, error) {
	m.calls++
	m.seen = x
	return []float64{m.out}, nil
}

type identityScaler struct{}

func (identityScaler) Transform(x Frame) (Frame, error) { return x, nil }

type failingScaler struct{}

func (failingScaler) Transform(Frame) (Frame, error) {
	return Frame{}, errors.New("boom")
}

func stubArtifacts(model Regressor) *Artifacts {
	return &Artifacts{
		Model:    model,
		Scaler:   identityScaler{},
		Columns:  []string{"rating", "Brand_Apple", "Brand_Samsung", "Category1_Mobile", "Category1_TV"},
		Defaults: map[string]any{"rating": 4.0},
	}
}

func TestHandleBeforeFirstClick(t *testing.T) {
	m := &stubModel{out: 10}
	s := NewService(stubArtifacts(m), testColumns)

	if got := s.Handle(0, "Samsung", "Mobile"); got.Text != "" || got.Price.Valid {
		t.Errorf("Handle(0) = %+v; want empty", got)
	}
	if m.calls != 0 {
		t.Errorf("model called %d times; want 0", m.calls)
	}
}

func TestHandleMissingSelection(t *testing.T) {
	m := &stubModel{out: 10}
	s := NewService(stubArtifacts(m), testColumns)

	for _, in := range [][2]string{{"", "Mobile"}, {"Samsung", ""}, {"", ""}} {
		got := s.Handle(1, in[0], in[1])
		if got.Text != "لطفاً تمام ویژگی‌ها را انتخاب کنید." {
			t.Errorf("Handle(%q, %q) = %q", in[0], in[1], got.Text)
		}
	}
	if m.calls != 0 {
		t.Errorf("model called %d times; want 0", m.calls)
	}
}

func TestHandleModelUnavailable(t *testing.T) {
	cases := map[string]*Artifacts{
		"nil artifacts":  nil,
		"nil model":      {Scaler: identityScaler{}, Columns: []string{"a"}, Defaults: map[string]any{"a": 1.0}},
		"nil scaler":     {Model: &stubModel{}, Columns: []string{"a"}, Defaults: map[string]any{"a": 1.0}},
		"empty columns":  {Model: &stubModel{}, Scaler: identityScaler{}, Defaults: map[string]any{"a": 1.0}},
		"empty defaults": {Model: &stubModel{}, Scaler: identityScaler{}, Columns: []string{"a"}},
	}

	for name, a := range cases {
		s := NewService(a, testColumns)
		if got := s.Handle(3, "Samsung", "Mobile").Text; got != "فایل‌های مدل به درستی بارگذاری نشده‌اند." {
			t.Errorf("%s: Handle = %q", name, got)
		}
		if _, err := s.Predict("Samsung", "Mobile"); !errors.Is(err, ErrModelUnavailable) {
			t.Errorf("%s: Predict err = %v; want ErrModelUnavailable", name, err)
		}
	}
}

func TestHandleFormatsInverseLog(t *testing.T) {
	tests := []struct {
		log  float64
		want string
	}{
		{10, "قیمت پیش‌بینی شده: 22,025 تومان"},
		{15, "قیمت پیش‌بینی شده: 3,269,016 تومان"},
		{math.Log1p(999), "قیمت پیش‌بینی شده: 999 تومان"},
	}

	for _, tt := range tests {
		s := NewService(stubArtifacts(&stubModel{out: tt.log}), testColumns)
		got := s.Handle(1, "Samsung", "Mobile")
		if got.Text != tt.want {
			t.Errorf("log=%v: Handle = %q; want %q", tt.log, got.Text, tt.want)
		}
		if !got.Price.Valid {
			t.Errorf("log=%v: price not set", tt.log)
		}
	}
}

func TestPredictFeedsAlignedFeatures(t *testing.T) {
	m := &stubModel{out: 1}
	a := stubArtifacts(m)
	s := NewService(a, testColumns)

	price, err := s.Predict("Samsung", "TV")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if want := decimal.NewFromFloat(math.Expm1(1)); !price.Equal(want) {
		t.Errorf("price = %s; want %s", price, want)
	}
	if !reflect.DeepEqual(m.seen.Columns, a.Columns) {
		t.Errorf("columns = %v; want %v", m.seen.Columns, a.Columns)
	}
	if want := [][]float64{{4, 0, 1, 0, 1}}; !reflect.DeepEqual(m.seen.Rows, want) {
		t.Errorf("rows = %v; want %v", m.seen.Rows, want)
	}
}

func TestHandleReportsPipelineErrors(t *testing.T) {
	a := stubArtifacts(&stubModel{})
	a.Scaler = failingScaler{}
	s := NewService(a, testColumns)

	if got := s.Handle(1, "Samsung", "Mobile").Text; got != "خطا در هنگام پیش‌بینی: scale features: boom" {
		t.Errorf("Handle = %q", got)
	}
}

func TestHandleShapeMismatchIsInline(t *testing.T) {
	a := stubArtifacts(&LinearModel{Coef: []float64{1, 2}})
	s := NewService(a, testColumns)

	_, err := s.Predict("Samsung", "Mobile")
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v; want ErrShapeMismatch", err)
	}
	if got := s.Handle(1, "Samsung", "Mobile").Text; got != FormatError(err) {
		t.Errorf("Handle = %q; want %q", got, FormatError(err))
	}
}

func TestPredictNonFinite(t *testing.T) {
	s := NewService(stubArtifacts(&stubModel{out: math.Inf(1)}), testColumns)
	if _, err := s.Predict("Samsung", "Mobile"); !errors.Is(err, ErrNonFinite) {
		t.Errorf("err = %v; want ErrNonFinite", err)
	}
}

func TestFormatPriceRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{2.5, "قیمت پیش‌بینی شده: 2 تومان"},
		{3.5, "قیمت پیش‌بینی شده: 4 تومان"},
		{1234567.49, "قیمت پیش‌بینی شده: 1,234,567 تومان"},
		{0, "قیمت پیش‌بینی شده: 0 تومان"},
		{1e20, "قیمت پیش‌بینی شده: 100,000,000,000,000,000,000 تومان"},
		{-1.5e19, "قیمت پیش‌بینی شده: -15,000,000,000,000,000,000 تومان"},
	}
	for _, tt := range tests {
		if got := FormatPrice(decimal.NewFromFloat(tt.price)); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q; want %q", tt.price, got, tt.want)
		}
	}
}

func TestImportance(t *testing.T) {
	a := stubArtifacts(&LinearModel{Coef: []float64{-3, 1, 0, 2, -0.5}})
	cols, weights, ok := NewService(a, testColumns).Importance()
	if !ok {
		t.Fatal("Importance not available")
	}
	if !reflect.DeepEqual(cols, a.Columns) {
		t.Errorf("cols = %v", cols)
	}
	if want := []float64{3, 1, 0, 2, 0.5}; !reflect.DeepEqual(weights, want) {
		t.Errorf("weights = %v; want %v", weights, want)
	}

	if _, _, ok := NewService(stubArtifacts(&stubModel{}), testColumns).Importance(); ok {
		t.Error("Importance available for model without coefficients")
	}
	if _, _, ok := NewService(nil, testColumns).Importance(); ok {
		t.Error("Importance available without artifacts")
	}
}

func TestLoadArtifacts(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	paths := Paths{
		Model:    write("model.json", `{"coef": [0.1, 0.2, 0.3], "intercept": 5}`),
		Scaler:   write("scaler.json", `{"mean": [0, 0, 0], "scale": [1, 1, 1], "feature_names_in": ["rating", "Brand_Samsung", "Category1_Mobile"]}`),
		Columns:  write("cols.json", `["rating", "Brand_Samsung", "Category1_Mobile"]`),
		Defaults: write("defaults.json", `{"rating": 4.5}`),
	}

	a, err := LoadArtifacts(paths)
	if err != nil {
		t.Fatalf("LoadArtifacts: %v", err)
	}
	if !a.Loaded() {
		t.Fatal("artifacts not loaded")
	}

	price, err := NewService(a, testColumns).Predict("Samsung", "Mobile")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := math.Expm1(5 + 0.1*4.5 + 0.2 + 0.3)
	if got := price.InexactFloat64(); math.Abs(got-want) > 1e-9 {
		t.Errorf("price = %v; want %v", got, want)
	}

	paths.Scaler = filepath.Join(dir, "missing.json")
	if _, err := LoadArtifacts(paths); err == nil {
		t.Error("expected error for missing scaler")
	}
}
