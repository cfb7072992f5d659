// Package xgboost is a cgo binding for the XGBoost C API, focused on
// inference: loading a trained model, running predictions, and saving it
// back out, with strict native-handle lifecycle management.
//
// # Features
//
// - Handle safety: every native handle is released exactly once, on every
// code path, including load failures and prediction errors
// - Dense bridge: gota DataFrames and gonum matrices convert to the
// row-major float32 buffers the engine expects (see the frame package)
// - Structured errors: every failure carries the native status and the
// engine's own error message (see pkg/errors)
// - No hidden state: no internal logging, retries, or caching
//
// # Requirements
//
// The XGBoost shared library and headers must be installed where cgo can
// find them (libxgboost plus xgboost/c_api.h).
//
// # Quick start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    xgboost "github.com/JamieAP/xgboost-go"
//	)
//
//	func main() {
//	    b, err := xgboost.LoadModel("model.json")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer b.Close()
//
//	    // 2 rows, 2 features, row-major
//	    data := []float32{1.0, 2.0, 3.0, 4.0}
//	    preds, err := b.Predict(data, 2, 2, xgboost.PredictNormal, false)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("Predictions:", preds)
//	}
//
// A Booster must not be shared across goroutines without external
// synchronization; see the Booster type documentation for the two supported
// sharing disciplines.
package xgboost
