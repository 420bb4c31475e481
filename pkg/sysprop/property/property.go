// Package property provides fallback-aware access to process-level named configuration values.
// A lookup never fails: a missing key, an unreadable store and a malformed number all fall back
// to the caller's default.
package property

import (
	stderrors "errors"
	"regexp"
	"strconv"

	"sysprop.dev/pkg/errors"
	"sysprop.dev/pkg/sysprop/logging"
)

var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

type logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Accessor reads properties from a Store. The zero value is not usable; use New.
// An Accessor is safe for concurrent use.
type Accessor struct {
	store  Store
	logger logger
}

// Option configures an Accessor in New.
type Option func(*Accessor)

// WithLogger reports swallowed store failures at DEBUG and out-of-range integers at ERROR.
func WithLogger(l logger) Option {
	return func(a *Accessor) {
		a.logger = l
	}
}

// New returns an Accessor reading from store.
func New(store Store, opts ...Option) *Accessor {
	a := &Accessor{store: store}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Get returns the value of key and whether one was found. A store that panics is treated
// like one that returned an error.
func (a *Accessor) Get(key string) (value string, found bool) {
	defer func() {
		if re := recover(); re != nil {
			if a.logger != nil {
				logging.LogPanic(re, a.logger)
			}

			value, found = "", false
		}
	}()

	v, err := a.store.Lookup(key)
	if err == nil {
		return v, true
	}

	if !isNotFound(err) && a.logger != nil {
		a.logger.Debugf("lookup of property %q failed: %v", key, err)
	}

	return "", false
}

func isNotFound(err error) bool {
	var (
		nf  errors.NotFound
		nfp *errors.NotFound
	)

	return stderrors.As(err, &nf) || stderrors.As(err, &nfp)
}

// GetOrDefault returns the value of key verbatim, or defaultValue when there is none.
// A key set to the empty string is returned as "".
func (a *Accessor) GetOrDefault(key, defaultValue string) string {
	if v, ok := a.Get(key); ok {
		return v
	}

	return defaultValue
}

// GetInt returns the value of key as an int. defaultValue is returned when the key is absent,
// when the value is not an optional minus sign followed by decimal digits, and when it
// does not fit in an int. The last case is logged as an error.
func (a *Accessor) GetInt(key string, defaultValue int) int {
	v, err := a.LookupInt(key, defaultValue)
	if err != nil && a.logger != nil {
		a.logger.Errorf("%v, using default %d", err, defaultValue)
	}

	return v
}

// LookupInt behaves like GetInt but reports an out-of-range value as errors.OutOfRange
// alongside defaultValue. Absent and malformed values are not errors.
func (a *Accessor) LookupInt(key string, defaultValue int) (int, error) {
	v, ok := a.Get(key)
	if !ok || !intPattern.MatchString(v) {
		return defaultValue, nil
	}

	i, err := strconv.ParseInt(v, 10, strconv.IntSize)
	if err != nil {
		return defaultValue, errors.OutOfRange{Key: key, Value: v}
	}

	return int(i), nil
}

var env = New(Env{})

// Get returns the value of the environment variable key and whether it is set.
func Get(key string) (string, bool) {
	return env.Get(key)
}

// GetOrDefault returns the environment variable key, or defaultValue when it is unset.
func GetOrDefault(key, defaultValue string) string {
	return env.GetOrDefault(key, defaultValue)
}

// GetInt returns the environment variable key as an int, or defaultValue. See Accessor.GetInt.
func GetInt(key string, defaultValue int) int {
	return env.GetInt(key, defaultValue)
}

// LookupInt is the environment variant of Accessor.LookupInt.
func LookupInt(key string, defaultValue int) (int, error) {
	return env.LookupInt(key, defaultValue)
}
