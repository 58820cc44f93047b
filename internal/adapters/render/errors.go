package render

import "errors"

// Sentinel kinds for render errors.
var (
	ErrBuildPlot = errors.New("build plot failed")
	ErrWriteFile = errors.New("write chart failed")
)
