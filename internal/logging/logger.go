// Package logging provides categorized logging for Cognos, one named
// logger per subsystem, backed by zap. Logging is a no-op until Init is
// called, so library consumers pay nothing unless they opt in.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup and wiring
	CategoryAgent      Category = "agent"      // Dispatcher decisions
	CategoryPerception Category = "perception" // Provider API calls
	CategoryParse      Category = "parse"      // Response normalization
	CategoryPrompt     Category = "prompt"     // Instruction composition
	CategoryTools      Category = "tools"      // Capability registry execution
	CategoryStore      Category = "store"      // Persistence operations
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	loggers = make(map[Category]*zap.SugaredLogger)
)

// Init installs a real logger. With debug true a development config is used
// (human-readable, debug level); otherwise a production config (JSON, info).
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the backing logger. Useful for tests that want to
// capture output through zaptest or observers.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	loggers = make(map[Category]*zap.SugaredLogger)
}

// Get returns the sugared logger for a category.
func Get(c Category) *zap.SugaredLogger {
	mu.RLock()
	if l, ok := loggers[c]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[c]; ok {
		return l
	}
	l := base.Named(string(c)).Sugar()
	loggers[c] = l
	return l
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// Category helpers, mirroring call sites like logging.Agent("...", args).

func Agent(format string, args ...any)           { Get(CategoryAgent).Infof(format, args...) }
func AgentDebug(format string, args ...any)      { Get(CategoryAgent).Debugf(format, args...) }
func AgentWarn(format string, args ...any)       { Get(CategoryAgent).Warnf(format, args...) }
func AgentError(format string, args ...any)      { Get(CategoryAgent).Errorf(format, args...) }
func Perception(format string, args ...any)      { Get(CategoryPerception).Infof(format, args...) }
func PerceptionDebug(format string, args ...any) { Get(CategoryPerception).Debugf(format, args...) }
func PerceptionWarn(format string, args ...any)  { Get(CategoryPerception).Warnf(format, args...) }
func PerceptionError(format string, args ...any) { Get(CategoryPerception).Errorf(format, args...) }
func Parse(format string, args ...any)           { Get(CategoryParse).Infof(format, args...) }
func ParseDebug(format string, args ...any)      { Get(CategoryParse).Debugf(format, args...) }
func ParseWarn(format string, args ...any)       { Get(CategoryParse).Warnf(format, args...) }
func Prompt(format string, args ...any)          { Get(CategoryPrompt).Infof(format, args...) }
func PromptDebug(format string, args ...any)     { Get(CategoryPrompt).Debugf(format, args...) }
func Tools(format string, args ...any)           { Get(CategoryTools).Infof(format, args...) }
func ToolsDebug(format string, args ...any)      { Get(CategoryTools).Debugf(format, args...) }
func Store(format string, args ...any)           { Get(CategoryStore).Infof(format, args...) }
func StoreDebug(format string, args ...any)      { Get(CategoryStore).Debugf(format, args...) }
func StoreError(format string, args ...any)      { Get(CategoryStore).Errorf(format, args...) }
func Boot(format string, args ...any)            { Get(CategoryBoot).Infof(format, args...) }
