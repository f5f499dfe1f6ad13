package model

import "errors"

// ErrIO marks a malformed or truncated model file: I/O errors terminate
// with a clear message and a non-zero exit rather than being recovered
// locally.
var ErrIO = errors.New("irwls: model I/O error")
