package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"digikala-dashboard/config"
	"digikala-dashboard/models"
)

// Markers read as missing: the pandas read_csv defaults plus gota's "<nil>".
var naValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null", "<nil>",
}

// LoadCSV reads the dataset file at path.
func LoadCSV(path string, cols config.Columns) ([]models.ListingPrice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, cols)
}

// ReadCSV parses dataset rows from r. Rows missing a brand or category are
// skipped; unparsable prices become NaN.
func ReadCSV(r io.Reader, cols config.Columns) ([]models.ListingPrice, error) {
	df := dataframe.ReadCSV(r,
		dataframe.NaNValues(naValues),
		dataframe.WithTypes(map[string]series.Type{
			cols.Brand:          series.String,
			cols.Category:       series.String,
			cols.ActualPrice:    series.Float,
			cols.PredictedPrice: series.Float,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: parse csv: %w", df.Err)
	}

	brand, err := column(df, cols.Brand)
	if err != nil {
		return nil, err
	}
	category, err := column(df, cols.Category)
	if err != nil {
		return nil, err
	}
	actual, err := column(df, cols.ActualPrice)
	if err != nil {
		return nil, err
	}
	predicted, err := column(df, cols.PredictedPrice)
	if err != nil {
		return nil, err
	}

	rows := make([]models.ListingPrice, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		b, c := brand.Elem(i), category.Elem(i)
		if b.IsNA() || c.IsNA() {
			continue
		}
		rows = append(rows, models.ListingPrice{
			Brand:          b.String(),
			Category:       c.String(),
			ActualPrice:    actual.Elem(i).Float(),
			PredictedPrice: predicted.Elem(i).Float(),
		})
	}
	return rows, nil
}

func column(df dataframe.DataFrame, name string) (series.Series, error) {
	s := df.Col(name)
	if s.Err != nil {
		return s, fmt.Errorf("dataset: column %q: %w", name, s.Err)
	}
	return s, nil
}
