// This file defines standard attribute keys for binding operations. Using
// these keys consistently enables filtering and analysis of logs produced by
// applications embedding the binding.
//
// The keys follow a hierarchical naming convention (e.g., "model.path",
// "data.rows") to enable structured log analysis.

package log

// Model and operation context
const (
	// ModelPathKey is the filesystem path a model was loaded from or saved to.
	ModelPathKey = "model.path"

	// ModelFeaturesKey is the feature count the loaded model expects.
	ModelFeaturesKey = "model.num_features"

	// OperationKey specifies the binding operation being performed.
	// Standard values: "load", "load_from_buffer", "predict", "save", "close"
	OperationKey = "xgb.operation"

	// CallKey identifies the native C API entry point involved in an
	// operation, e.g. "XGBoosterPredict".
	CallKey = "xgb.call"
)

// Data shape
const (
	// RowsKey is the number of rows in a prediction request.
	RowsKey = "data.rows"

	// FeaturesKey is the number of feature columns in a prediction request.
	FeaturesKey = "data.features"

	// ColumnsKey names the dataframe columns selected for conversion.
	ColumnsKey = "data.columns"
)

// Prediction parameters and results
const (
	// OptionMaskKey is the integer option mask passed through to the engine.
	OptionMaskKey = "predict.option_mask"

	// TrainingKey is the training-mode flag of a predict call.
	TrainingKey = "predict.training"

	// OutputLenKey is the length of the prediction output sequence.
	OutputLenKey = "predict.output_len"
)

// Performance
const (
	// DurationMsKey is the wall-clock duration of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ThroughputKey is rows processed per second.
	ThroughputKey = "perf.rows_per_sec"
)
