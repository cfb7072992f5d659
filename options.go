package xgboost

// PredictOption is the bit-flag option mask of XGBoosterPredict. The bit
// values and their semantics are defined by the engine; the wrapper passes
// the mask through unchanged and only names the values the engine's own C
// API documents. Flags combine with |.
type PredictOption uint32

const (
	// PredictNormal produces the regular transformed output (e.g.
	// probabilities for a logistic objective).
	PredictNormal PredictOption = 0

	// PredictOutputMargin produces the raw untransformed margin instead.
	PredictOutputMargin PredictOption = 1

	// PredictLeafIndex produces the predicted leaf index per tree.
	PredictLeafIndex PredictOption = 2

	// PredictContributions produces per-feature contribution values.
	PredictContributions PredictOption = 4

	// PredictApproxContributions produces approximate contribution values.
	PredictApproxContributions PredictOption = 8

	// PredictInteractions produces feature interaction contributions.
	PredictInteractions PredictOption = 16
)
