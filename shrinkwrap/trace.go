package shrinkwrap

import "github.com/sirupsen/logrus"

// traceLogger is nil by default: vector decoding stays silent unless a
// caller opts in. Mirrors the upstream crate's optional
// tracing-extended feature, given a concrete home in this port via
// logrus rather than a build tag.
var traceLogger *logrus.Logger

// SetTraceLogger installs logger as the destination for trace-level
// container decode events (vector element counts).
// Pass nil to disable tracing again.
func SetTraceLogger(logger *logrus.Logger) {
	traceLogger = logger
}

func traceVecElementCount(count uint32) {
	if traceLogger == nil {
		return
	}
	traceLogger.WithField("count", count).Trace("vec element count")
}
