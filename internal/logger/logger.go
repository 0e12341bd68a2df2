package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON in production, console output
// when development is set.
func NewLogger(development bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
