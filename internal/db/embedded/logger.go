package embedded

import "go.uber.org/zap"

// zapLogger adapts zap to badger.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Errorf(format string, args ...any)   { l.s.Errorf(format, args...) }
func (l *zapLogger) Warningf(format string, args ...any) { l.s.Warnf(format, args...) }
func (l *zapLogger) Infof(format string, args ...any)    { l.s.Debugf(format, args...) }
func (l *zapLogger) Debugf(format string, args ...any)   { l.s.Debugf(format, args...) }
