// Package logging provides categorized zap loggers for the exercise binaries.
// Every category is a named child of a single root logger built at startup.
// Categories can be switched off one by one; a disabled category, or any
// category requested before Initialize, gets a no-op logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup and flag handling
	CategoryQuiz     Category = "quiz"     // Question store and quiz sessions
	CategoryConfig   Category = "config"   // Config file reading and decoding
	CategoryPrinter  Category = "printer"  // 3D printer state transitions
	CategoryExpr     Category = "expr"     // Expression evaluation demo
	CategoryFizzBuzz Category = "fizzbuzz" // FizzBuzz output
)

// Categories lists every known category.
var Categories = []Category{
	CategoryBoot,
	CategoryQuiz,
	CategoryConfig,
	CategoryPrinter,
	CategoryExpr,
	CategoryFizzBuzz,
}

// OnlyCategories returns a category map that enables the named categories and
// disables every other one. Unknown names are an error.
func OnlyCategories(names []string) (map[Category]bool, error) {
	enabled := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		enabled[c] = false
	}
	for _, name := range names {
		c := Category(name)
		if _, ok := enabled[c]; !ok {
			return nil, fmt.Errorf("unknown log category %q", name)
		}
		enabled[c] = true
	}
	return enabled, nil
}

// Config controls how the root logger is built.
type Config struct {
	// Verbose lowers the level from info to debug.
	Verbose bool
	// Console selects the human-readable encoder instead of JSON.
	Console bool
	// Categories disables a category when mapped to false. Categories that
	// are not listed stay enabled.
	Categories map[Category]bool
}

var (
	root   = zap.NewNop()
	config Config
)

// Initialize builds the root logger from cfg. It replaces any logger set up
// earlier.
func Initialize(cfg Config) error {
	zc := zap.NewProductionConfig()
	if cfg.Console {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if cfg.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Replace(l, cfg)
	Get(CategoryBoot).Debug("logging initialized",
		zap.Bool("verbose", cfg.Verbose),
		zap.Bool("console", cfg.Console))
	return nil
}

// Replace installs l as the root logger. Tests use it with an observer core.
func Replace(l *zap.Logger, cfg Config) {
	if l == nil {
		l = zap.NewNop()
	}
	root = l
	config = cfg
}

// Reset restores the no-op root logger.
func Reset() {
	Replace(nil, Config{})
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	enabled, exists := config.Categories[category]
	return !exists || enabled
}

// Get returns the logger for category, or a no-op logger if the category is
// disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	return root.Named(string(category))
}

// Sync flushes buffered entries of the root logger.
func Sync() error {
	return root.Sync()
}
