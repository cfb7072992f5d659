package xgboost

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/JamieAP/xgboost-go/pkg/errors"
)

// Booster wraps exactly one native XGBoost model handle. It is created by
// LoadModel or LoadModelFromBuffer, owns the handle exclusively for its
// lifetime, and releases it exactly once through Close (or, as a backstop,
// through a finalizer when an unclosed Booster becomes unreachable).
//
// # Thread safety
//
// Thread safety depends on the XGBoost version: predictions on tree models
// are thread-safe from 1.4 onward, while older versions and mutation paths
// carry no documented guarantee. This wrapper therefore does not add any
// locking of its own and must not be shared across goroutines implicitly.
// For concurrent use, pick one of two disciplines:
//
//  1. One Booster per goroutine (works with all engine versions):
//
//     b, err := xgboost.LoadModel("model.json")
//     go func() {
//     defer b.Close()
//     b.Predict(...)
//     }()
//
//  2. A single Booster guarded by a caller-owned mutex serializing all calls:
//
//     var mu sync.Mutex
//     mu.Lock()
//     out, err := b.Predict(...)
//     mu.Unlock()
//
// Within one Booster, operations take effect in the order the caller issues
// them; nothing is reordered or batched internally.
type Booster struct {
	handle boosterHandle
	closed bool
}

// LoadModel loads an XGBoost model from a file. The engine auto-detects the
// format from the content: JSON, native binary, or the deprecated text
// format all work.
//
// The path must be non-empty, valid UTF-8, and free of embedded NUL bytes;
// anything else fails with InvalidPathError before touching native state.
// If the native load fails, the freshly created handle is released before
// the error is returned, so a failed load never leaks.
func LoadModel(path string) (*Booster, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	handle, err := xgbBoosterCreate()
	if err != nil {
		return nil, err
	}
	if err := xgbBoosterLoadModel(handle, path); err != nil {
		_ = xgbBoosterFree(handle)
		return nil, err
	}

	return newBooster(handle), nil
}

// LoadModelFromBuffer loads an XGBoost model from an in-memory buffer. The
// buffer only needs to remain valid for the duration of the call. A failed
// load releases the partially created handle and constructs no Booster.
func LoadModelFromBuffer(buf []byte) (*Booster, error) {
	if len(buf) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyBuffer)
	}

	handle, err := xgbBoosterCreate()
	if err != nil {
		return nil, err
	}
	if err := xgbBoosterLoadModelFromBuffer(handle, buf); err != nil {
		_ = xgbBoosterFree(handle)
		return nil, err
	}

	return newBooster(handle), nil
}

func newBooster(handle boosterHandle) *Booster {
	b := &Booster{handle: handle}
	runtime.SetFinalizer(b, (*Booster).finalize)
	return b
}

// Predict runs inference on a dense row-major float32 buffer of shape
// rows x features. NaN cells are treated by the engine as missing values.
//
// optionMask selects the output kind (see PredictOption); it is passed
// through to the engine unchanged. training selects the engine's
// training-mode prediction and should be false for inference. All trees are
// used; there is no tree-limit parameter.
//
// The transient native matrix built for the call is released on every exit
// path once created, and the engine-owned output buffer is copied into a
// fresh slice strictly before that release, so the result never aliases
// native memory.
func (b *Booster) Predict(data []float32, rows, features int, optionMask PredictOption, training bool) ([]float32, error) {
	if b.closed {
		return nil, errors.NewHandleReleasedError("Predict")
	}
	if rows <= 0 || features <= 0 {
		return nil, errors.NewEmptyInputError("Predict", rows, features)
	}
	if len(data) != rows*features {
		return nil, errors.NewDimensionError("Predict", rows*features, len(data))
	}

	matrix, err := xgbDMatrixCreateFromMat(data, rows, features)
	if err != nil {
		return nil, err
	}
	defer func() { _ = xgbDMatrixFree(matrix) }()

	results, err := xgbBoosterPredict(b.handle, matrix, uint32(optionMask), training)
	runtime.KeepAlive(b)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// NumFeatures returns the number of features the model expects per row.
func (b *Booster) NumFeatures() (int, error) {
	if b.closed {
		return 0, errors.NewHandleReleasedError("NumFeatures")
	}
	n, err := xgbBoosterGetNumFeature(b.handle)
	runtime.KeepAlive(b)
	return n, err
}

// SaveModel persists the model to a file. The format is chosen by the engine
// from the file extension (".json" for JSON, anything else for the binary
// format). Saving does not change the Booster's state; the same instance
// stays usable afterwards.
func (b *Booster) SaveModel(path string) error {
	if b.closed {
		return errors.NewHandleReleasedError("SaveModel")
	}
	if err := validatePath(path); err != nil {
		return err
	}
	err := xgbBoosterSaveModel(b.handle, path)
	runtime.KeepAlive(b)
	return err
}

// Close releases the native handle. It is safe to call more than once; only
// the first call releases, and every operation after Close fails with
// HandleReleasedError. A Booster that is never closed is released by the
// runtime when it becomes unreachable.
func (b *Booster) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	runtime.SetFinalizer(b, nil)
	return xgbBoosterFree(b.handle)
}

// finalize is the GC backstop for Boosters that were never closed. Close
// removes it, so the handle can never be released twice.
func (b *Booster) finalize() {
	_ = b.Close()
}

// validatePath rejects paths that cannot cross the C boundary as a native
// string.
func validatePath(path string) error {
	if path == "" {
		return errors.NewInvalidPathError(path, "empty path")
	}
	if !utf8.ValidString(path) {
		return errors.NewInvalidPathError(path, "not valid UTF-8")
	}
	if strings.IndexByte(path, 0) >= 0 {
		return errors.NewInvalidPathError(path, "embedded NUL byte")
	}
	return nil
}
