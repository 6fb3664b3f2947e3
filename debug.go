package pinchzoom

import "github.com/charmbracelet/log"

// SetLogger attaches a logger that receives debug-level records of session
// transitions and animation start, finish and cancel. A nil logger (the
// default) disables logging.
func (v *Viewport) SetLogger(l *log.Logger) {
	v.logger = l
}

// debugLog writes a debug record when a logger is attached.
func (v *Viewport) debugLog(msg string, keyvals ...any) {
	if v.logger == nil {
		return
	}
	v.logger.Debug(msg, keyvals...)
}
