// Package model assembles a trained beta vector and its support/centroid
// indices into an owned, inference-ready Model, persists it to a fixed
// binary wire format, and evaluates the decision function at prediction
// time.
package model
