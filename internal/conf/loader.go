package conf

import (
	"fmt"
	"os"
	"reflect"

	"dario.cat/mergo"
	"github.com/ilyakaznacheev/cleanenv"
)

// Error wraps a configuration failure with a stable code so callers
// can distinguish a missing file from a bad value.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
)

// Validatable is implemented by config structs that can check their
// own invariants after loading.
type Validatable interface {
	Validate() error
}

// Loader reads configuration into a struct: file first (when present),
// then environment variables on top, then validation. The target is
// expected to carry its defaults before Load is called.
type Loader struct {
	fileName        string
	onlyEnvironment bool
	skipValidation  bool
}

// Option is a functional option for configuring the loader
type Option func(*Loader)

// WithFile sets the configuration file to read before the environment.
func WithFile(fileName string) Option {
	return func(l *Loader) {
		l.fileName = fileName
	}
}

// WithOnlyEnvironment disables file loading entirely.
func WithOnlyEnvironment() Option {
	return func(l *Loader) {
		l.onlyEnvironment = true
	}
}

// WithoutValidation skips the Validatable check after loading.
func WithoutValidation() Option {
	return func(l *Loader) {
		l.skipValidation = true
	}
}

// NewLoader creates a configuration loader
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates target from the configured sources.
func (l *Loader) Load(target interface{}) error {
	if reflect.ValueOf(target).Kind() != reflect.Ptr {
		return &Error{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", target),
		}
	}

	if !l.onlyEnvironment && l.fileName != "" {
		if err := l.loadFromFile(target); err != nil {
			return err
		}
	}

	if err := cleanenv.ReadEnv(target); err != nil {
		return &Error{
			Code:    ErrCodeEnvironment,
			Message: "failed to read environment variables",
			Cause:   err,
		}
	}

	if l.skipValidation {
		return nil
	}
	if v, ok := target.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return &Error{
				Code:    ErrCodeValidation,
				Message: "configuration validation failed",
				Cause:   err,
			}
		}
	}
	return nil
}

func (l *Loader) loadFromFile(target interface{}) error {
	if _, err := os.Stat(l.fileName); err != nil {
		return &Error{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("configuration file %s not found", l.fileName),
			Cause:   err,
		}
	}

	// Read the file into a fresh copy, then overlay it on the defaults
	// already present in target.
	fileCfg := reflect.New(reflect.ValueOf(target).Elem().Type()).Interface()
	if err := cleanenv.ReadConfig(l.fileName, fileCfg); err != nil {
		return &Error{
			Code:    ErrCodeFileNotFound,
			Message: fmt.Sprintf("failed to read configuration file %s", l.fileName),
			Cause:   err,
		}
	}

	if err := mergo.MergeWithOverwrite(target, fileCfg); err != nil {
		return &Error{
			Code:    ErrCodeMerge,
			Message: "failed to merge file configuration",
			Cause:   err,
		}
	}
	return nil
}
