package charts

import (
	"bytes"
	"sync"

	"digikala-dashboard/dataset"
	"digikala-dashboard/predictor"
)

// ImportanceTopN caps the number of bars in the importance chart.
const ImportanceTopN = 10

type rendered struct {
	once sync.Once
	png  []byte
	err  error
}

func (r *rendered) get(draw func(*bytes.Buffer) error) ([]byte, error) {
	r.once.Do(func() {
		var buf bytes.Buffer
		if r.err = draw(&buf); r.err == nil {
			r.png = buf.Bytes()
		}
	})
	return r.png, r.err
}

// Cache renders each chart once; its inputs never change after startup.
type Cache struct {
	data    *dataset.Dataset
	service *predictor.Service

	scatter    rendered
	importance rendered
}

func NewCache(data *dataset.Dataset, service *predictor.Service) *Cache {
	return &Cache{data: data, service: service}
}

// Scatter returns the actual-vs-predicted PNG.
func (c *Cache) Scatter() ([]byte, error) {
	return c.scatter.get(func(buf *bytes.Buffer) error {
		return Scatter(buf, c.data.Rows())
	})
}

// Importance returns the feature-importance PNG.
func (c *Cache) Importance() ([]byte, error) {
	return c.importance.get(func(buf *bytes.Buffer) error {
		cols, weights, ok := c.service.Importance()
		if !ok {
			return ErrNoData
		}
		return Importance(buf, cols, weights, ImportanceTopN)
	})
}
