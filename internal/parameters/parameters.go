// Package parameters handles generic configuration Params, a
// map[string]string parsed from the user's comma-separated config
// string (e.g. "uct,playouts=10000,resign=0.9").
package parameters

import (
	"strconv"
	"strings"

	"github.com/janpfeifer/goban/internal/generics"
	"github.com/pkg/errors"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString creates params from the user's configuration
// string: comma-separated entries, each "key" or "key=value". See
// GetParamOr and PopParamOr to read values back.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[strings.TrimSpace(key)] = value
	}
	return params
}

// ParamTypes are the value types params parse into.
type ParamTypes interface {
	bool | int | int64 | float32 | float64 | string
}

// PopParamOr is like GetParamOr, but also deletes the retrieved
// parameter from the map, so leftovers can be reported as unknown.
func PopParamOr[T ParamTypes](params Params, key string, defaultValue T) (T, error) {
	value, err := GetParamOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetParamOr parses the parameter under key into T if present, or
// returns defaultValue. For bool a key without a value means true.
func GetParamOr[T ParamTypes](params Params, key string, defaultValue T) (T, error) {
	value, exists := params[key]
	if !exists {
		return defaultValue, nil
	}
	var t T
	switch any(defaultValue).(type) {
	case string:
		return any(value).(T), nil
	case bool:
		switch strings.ToLower(value) {
		case "", "true", "1":
			return any(true).(T), nil
		case "false", "0":
			return any(false).(T), nil
		}
		return defaultValue, errors.Errorf("failed to parse configuration %s=%q to bool", key, value)
	case int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
		}
		return any(parsed).(T), nil
	case int64:
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to int64", key, value)
		}
		return any(parsed).(T), nil
	case float32:
		parsed, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		return any(float32(parsed)).(T), nil
	case float64:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return t, errors.Wrapf(err, "failed to parse configuration %s=%q to float", key, value)
		}
		return any(parsed).(T), nil
	}
	return defaultValue, nil
}

// CheckAllConsumed returns an error naming any parameter left in the
// map. Builders pop what they understand; anything remaining is a typo.
func CheckAllConsumed(params Params) error {
	if len(params) == 0 {
		return nil
	}
	return errors.Errorf("unknown configuration parameters %q",
		strings.Join(generics.KeysSlice(params), ", "))
}
