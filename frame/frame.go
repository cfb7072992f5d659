// Package frame converts tabular input into the dense row-major float32
// buffers the XGBoost predict call requires.
//
// Two input sources are supported: gota DataFrames (named columns of
// heterogeneous types) and gonum matrices. Column order defines feature
// order. Conversion walks the source column by column because tabular
// engines store data column-contiguous; this gives sequential reads from the
// source and strided writes into the row-major destination, and the per
// column coercion cost dominates either way.
//
// Null cells are a hard input error, not a missing-value sentinel. Callers
// that want the engine's missing-value handling must write NaN into the
// source explicitly.
package frame

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/JamieAP/xgboost-go/pkg/errors"
)

// Dense is a rows x cols matrix flattened into a row-major float32 buffer.
// Invariant: len(Values) == Rows*Cols.
type Dense struct {
	Values []float32
	Rows   int
	Cols   int
}

// At returns the value at the given row and column.
func (d *Dense) At(row, col int) float32 {
	return d.Values[row*d.Cols+col]
}

// FromDataFrame converts a gota DataFrame to a dense float32 buffer. All
// columns are used as features, in DataFrame column order.
//
// Conversion fails with EmptyInputError for a zero-row or zero-column frame,
// CastFailureError for a non-numeric column, and NullValueError (carrying
// row and column indexes) for an NA cell.
func FromDataFrame(df dataframe.DataFrame) (*Dense, error) {
	return convertDataFrame(df, nil)
}

// FromDataFrameColumns converts only the named columns, in the order given.
// It fails with ColumnNotFoundError if any name is absent from the frame,
// then applies the same conversion rules as FromDataFrame.
func FromDataFrameColumns(df dataframe.DataFrame, columns []string) (*Dense, error) {
	selected, err := selectColumns(df, columns)
	if err != nil {
		return nil, err
	}
	return convertDataFrame(selected, nil)
}

// FromMatrix converts a gonum matrix to a dense float32 buffer, narrowing
// each element from float64. It fails with EmptyInputError for an empty
// matrix and NullValueError for a NaN cell (gonum has no null representation
// besides NaN, so NaN is treated as an absent value here).
func FromMatrix(m mat.Matrix) (*Dense, error) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.NewEmptyInputError("frame.FromMatrix", rows, cols)
	}

	d := &Dense{
		Values: make([]float32, rows*cols),
		Rows:   rows,
		Cols:   cols,
	}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := m.At(i, j)
			if v != v { // NaN
				return nil, errors.NewNullValueError(i, j, "")
			}
			d.Values[i*cols+j] = float32(v)
		}
	}
	return d, nil
}

func selectColumns(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	if len(columns) == 0 {
		return df, errors.NewEmptyInputError("frame.FromDataFrameColumns", df.Nrow(), 0)
	}

	available := df.Names()
	present := make(map[string]bool, len(available))
	for _, name := range available {
		present[name] = true
	}
	for _, name := range columns {
		if !present[name] {
			return df, errors.NewColumnNotFoundError(name, available)
		}
	}

	selected := df.Select(columns)
	if selected.Err != nil {
		return df, errors.Wrap(selected.Err, "frame: column selection failed")
	}
	return selected, nil
}

// convertDataFrame does the actual column-by-column conversion. When buf is
// non-nil and large enough it is used as the destination backing array.
func convertDataFrame(df dataframe.DataFrame, buf []float32) (d *Dense, err error) {
	// gota panics on some malformed inputs; keep the no-panic contract.
	defer errors.Recover(&err, "frame.FromDataFrame")

	numRows := df.Nrow()
	numCols := df.Ncol()
	if numRows == 0 || numCols == 0 {
		return nil, errors.NewEmptyInputError("frame.FromDataFrame", numRows, numCols)
	}

	total := numRows * numCols
	if cap(buf) >= total {
		buf = buf[:total]
	} else {
		buf = make([]float32, total)
	}

	for colIdx, name := range df.Names() {
		col := df.Col(name)
		if err := col.Err; err != nil {
			return nil, errors.Wrapf(err, "frame: column %q", name)
		}
		if !coercible(col.Type()) {
			return nil, errors.NewCastFailureError(name, string(col.Type()))
		}

		for rowIdx := 0; rowIdx < numRows; rowIdx++ {
			elem := col.Elem(rowIdx)
			if elem.IsNA() {
				return nil, errors.NewNullValueError(rowIdx, colIdx, name)
			}
			buf[rowIdx*numCols+colIdx] = float32(elem.Float())
		}
	}

	return &Dense{Values: buf, Rows: numRows, Cols: numCols}, nil
}

// coercible reports whether a gota series type can be coerced to float32.
// Strings are rejected even when they happen to hold digits; the cast rules
// follow the column's declared type, not its contents.
func coercible(t series.Type) bool {
	switch t {
	case series.Float, series.Int, series.Bool:
		return true
	default:
		return false
	}
}
