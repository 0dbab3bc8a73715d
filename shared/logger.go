package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_shared.go -package mocks disaster_board/shared ILogger,IUserAgent

// ILogger is the logging interface handed around through DI.
// *log.Logger from charmbracelet/log satisfies it.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}
