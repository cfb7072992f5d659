package xgboost

/*
#cgo LDFLAGS: -lxgboost
#cgo CFLAGS: -I/usr/local/include

#include <stdlib.h>
#include <xgboost/c_api.h>
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/JamieAP/xgboost-go/pkg/errors"
)

// nan32 is the float32 value the engine interprets as "no value present" for
// a matrix cell.
var nan32 = float32(math.NaN())

// boosterHandle and dmatrixHandle are opaque engine-defined identifiers, not
// dereferenceable structures. They are meaningful only to the native engine
// and are passed by value to native calls.
type (
	boosterHandle C.BoosterHandle
	dmatrixHandle C.DMatrixHandle
)

// checkCall is the single choke point translating native status codes into
// structured errors. On a non-zero status it reads the engine's last-error
// message, which lives in process-global state and must be captured on the
// calling goroutine immediately, before any other native call can overwrite
// it. No native call result is interpreted anywhere else.
func checkCall(status C.int, call string) error {
	if status == 0 {
		return nil
	}
	msg := C.GoString(C.XGBGetLastError())
	return errors.NewNativeCallError(call, int(status), msg)
}

// xgbBoosterCreate allocates a fresh booster handle with empty configuration.
func xgbBoosterCreate() (boosterHandle, error) {
	var handle C.BoosterHandle
	err := checkCall(C.XGBoosterCreate(nil, 0, &handle), "XGBoosterCreate")
	if err != nil {
		return nil, err
	}
	return boosterHandle(handle), nil
}

// xgbBoosterFree releases a booster handle.
func xgbBoosterFree(h boosterHandle) error {
	return checkCall(C.XGBoosterFree(C.BoosterHandle(h)), "XGBoosterFree")
}

// xgbBoosterLoadModel loads model data from a file into an existing handle.
// The engine auto-detects the format (JSON, binary, or deprecated text).
func xgbBoosterLoadModel(h boosterHandle, path string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return checkCall(C.XGBoosterLoadModel(C.BoosterHandle(h), cPath), "XGBoosterLoadModel")
}

// xgbBoosterLoadModelFromBuffer loads model data from memory. The buffer only
// has to stay valid for the duration of the call; the engine copies what it
// needs.
func xgbBoosterLoadModelFromBuffer(h boosterHandle, buf []byte) error {
	return checkCall(C.XGBoosterLoadModelFromBuffer(
		C.BoosterHandle(h),
		unsafe.Pointer(&buf[0]),
		C.bst_ulong(len(buf)),
	), "XGBoosterLoadModelFromBuffer")
}

// xgbBoosterSaveModel persists the handle's state to a file.
func xgbBoosterSaveModel(h boosterHandle, path string) error {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return checkCall(C.XGBoosterSaveModel(C.BoosterHandle(h), cPath), "XGBoosterSaveModel")
}

// xgbBoosterGetNumFeature returns the feature count the model expects.
func xgbBoosterGetNumFeature(h boosterHandle) (int, error) {
	var out C.bst_ulong
	err := checkCall(C.XGBoosterGetNumFeature(C.BoosterHandle(h), &out), "XGBoosterGetNumFeature")
	if err != nil {
		return 0, err
	}
	return int(out), nil
}

// xgbDMatrixCreateFromMat builds a DMatrix from a dense row-major float32
// buffer. NaN is the engine's missing-value sentinel.
func xgbDMatrixCreateFromMat(data []float32, rows, cols int) (dmatrixHandle, error) {
	var handle C.DMatrixHandle
	err := checkCall(C.XGDMatrixCreateFromMat(
		(*C.float)(unsafe.Pointer(&data[0])),
		C.bst_ulong(rows),
		C.bst_ulong(cols),
		C.float(nan32),
		&handle,
	), "XGDMatrixCreateFromMat")
	if err != nil {
		return nil, err
	}
	return dmatrixHandle(handle), nil
}

// xgbDMatrixFree releases a DMatrix handle.
func xgbDMatrixFree(h dmatrixHandle) error {
	return checkCall(C.XGDMatrixFree(C.DMatrixHandle(h)), "XGDMatrixFree")
}

// xgbBoosterPredict runs prediction and copies the engine-owned output
// buffer into caller-owned memory before returning. The native buffer's
// lifetime is not guaranteed beyond the call, so no reference to it escapes.
func xgbBoosterPredict(h boosterHandle, m dmatrixHandle, optionMask uint32, training bool) ([]float32, error) {
	var (
		outLen    C.bst_ulong
		outResult *C.float
	)

	cTraining := C.int(0)
	if training {
		cTraining = 1
	}

	err := checkCall(C.XGBoosterPredict(
		C.BoosterHandle(h),
		C.DMatrixHandle(m),
		C.int(optionMask),
		C.uint(0), // ntree_limit: 0 means use all trees
		cTraining,
		&outLen,
		&outResult,
	), "XGBoosterPredict")
	if err != nil {
		return nil, err
	}

	results := make([]float32, int(outLen))
	if outLen > 0 {
		native := unsafe.Slice((*float32)(unsafe.Pointer(outResult)), int(outLen))
		copy(results, native)
	}
	return results, nil
}
