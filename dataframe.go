package xgboost

import (
	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"

	"github.com/JamieAP/xgboost-go/frame"
)

// PredictDataFrame converts a gota DataFrame to the dense format the engine
// expects and runs prediction. All columns are used as features, in
// DataFrame column order.
//
// Example:
//
//	df := dataframe.New(
//	    series.New([]float64{1, 2, 3}, series.Float, "feature1"),
//	    series.New([]float64{4, 5, 6}, series.Float, "feature2"),
//	)
//	preds, err := b.PredictDataFrame(df, xgboost.PredictNormal, false)
func (b *Booster) PredictDataFrame(df dataframe.DataFrame, optionMask PredictOption, training bool) ([]float32, error) {
	d, err := frame.FromDataFrame(df)
	if err != nil {
		return nil, err
	}
	return b.Predict(d.Values, d.Rows, d.Cols, optionMask, training)
}

// PredictDataFrameColumns predicts using only the named columns, in the
// order given. It fails with ColumnNotFoundError if any name is absent.
func (b *Booster) PredictDataFrameColumns(df dataframe.DataFrame, columns []string, optionMask PredictOption, training bool) ([]float32, error) {
	d, err := frame.FromDataFrameColumns(df, columns)
	if err != nil {
		return nil, err
	}
	return b.Predict(d.Values, d.Rows, d.Cols, optionMask, training)
}

// PredictMatrix predicts from a gonum matrix, narrowing each element to
// float32.
func (b *Booster) PredictMatrix(m mat.Matrix, optionMask PredictOption, training bool) ([]float32, error) {
	d, err := frame.FromMatrix(m)
	if err != nil {
		return nil, err
	}
	return b.Predict(d.Values, d.Rows, d.Cols, optionMask, training)
}
