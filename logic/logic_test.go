package logic

// Shared no-op doubles for the feed client tests. The handler-level tests use
// the generated mocks; down here a silent logger and metrics sink are enough.

type nopLogger struct{}

func (nopLogger) Debug(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Debugf(format string, args ...interface{})     {}
func (nopLogger) Info(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Infof(format string, args ...interface{})      {}
func (nopLogger) Warn(msg interface{}, keyvals ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})      {}
func (nopLogger) Error(msg interface{}, keyvals ...interface{}) {}
func (nopLogger) Errorf(format string, args ...interface{})     {}
func (nopLogger) Printf(format string, args ...interface{})     {}

type nopMetrics struct{}

func (nopMetrics) ServiceStarted()                           {}
func (nopMetrics) StartFeedFetch(feed string) IFetchObserver { return nopObserver{} }
func (nopMetrics) FeedFetched(feed, outcome string)          {}

type nopObserver struct{}

func (nopObserver) Finish() {}
