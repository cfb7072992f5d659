package frame

import (
	"sync"
	"sync/atomic"

	"github.com/go-gota/gota/dataframe"

	"github.com/JamieAP/xgboost-go/pkg/errors"
)

// Pool recycles dense buffers across conversions to reduce GC pressure in
// prediction loops that convert many frames of similar shape.
type Pool struct {
	pool     sync.Pool
	inUse    int64
	created  int64
	recycled int64
	mu       sync.RWMutex
	stats    PoolStats
}

// PoolStats tracks pool performance metrics.
type PoolStats struct {
	TotalAllocated   int64
	TotalRecycled    int64
	CurrentInUse     int64
	PeakUsage        int64
	AverageReuseRate float64
}

// NewPool creates a new dense-buffer pool.
func NewPool() *Pool {
	p := &Pool{}

	p.pool = sync.Pool{
		New: func() interface{} {
			atomic.AddInt64(&p.created, 1)
			return &Dense{}
		},
	}

	return p
}

// Get retrieves a dense buffer sized for rows x cols from the pool.
func (p *Pool) Get(rows, cols int) *Dense {
	atomic.AddInt64(&p.inUse, 1)

	d := p.pool.Get().(*Dense)

	if cap(d.Values) < rows*cols {
		d.Values = make([]float32, rows*cols)
	}
	d.Values = d.Values[:rows*cols]
	d.Rows = rows
	d.Cols = cols

	current := atomic.LoadInt64(&p.inUse)
	p.updatePeakUsage(current)

	return d
}

// Put returns a dense buffer to the pool. The buffer must not be used after
// Put; its backing array is handed to the next Get.
func (p *Pool) Put(d *Dense) {
	if d == nil {
		return
	}

	atomic.AddInt64(&p.inUse, -1)
	atomic.AddInt64(&p.recycled, 1)

	for i := range d.Values {
		d.Values[i] = 0
	}
	d.Rows = 0
	d.Cols = 0

	p.pool.Put(d)
}

// FromDataFrame converts a DataFrame using a pooled buffer. The returned
// Dense must be handed back with Put once the caller is done with it.
func (p *Pool) FromDataFrame(df dataframe.DataFrame) (*Dense, error) {
	rows, cols := df.Nrow(), df.Ncol()
	if rows == 0 || cols == 0 {
		return nil, errors.NewEmptyInputError("frame.FromDataFrame", rows, cols)
	}

	d := p.Get(rows, cols)
	out, err := convertDataFrame(df, d.Values)
	if err != nil {
		p.Put(d)
		return nil, err
	}
	d.Values = out.Values
	d.Rows = out.Rows
	d.Cols = out.Cols
	return d, nil
}

// GetStats returns current pool statistics.
func (p *Pool) GetStats() PoolStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	total := atomic.LoadInt64(&p.created)
	recycled := atomic.LoadInt64(&p.recycled)
	inUse := atomic.LoadInt64(&p.inUse)

	reuseRate := float64(0)
	if total > 0 {
		reuseRate = float64(recycled) / float64(total)
	}

	return PoolStats{
		TotalAllocated:   total,
		TotalRecycled:    recycled,
		CurrentInUse:     inUse,
		PeakUsage:        p.stats.PeakUsage,
		AverageReuseRate: reuseRate,
	}
}

func (p *Pool) updatePeakUsage(current int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if current > p.stats.PeakUsage {
		p.stats.PeakUsage = current
	}
}
