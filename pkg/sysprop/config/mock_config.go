package config

import (
	"sysprop.dev/pkg/errors"
	"sysprop.dev/pkg/sysprop/property"
)

// MockConfig is a map-backed property.Store for tests. A key present in Errors fails its lookup
// with that error, which is how a permission failure is simulated.
type MockConfig struct {
	Data   map[string]string
	Errors map[string]error
}

func (m *MockConfig) Lookup(key string) (string, error) {
	if err, ok := m.Errors[key]; ok {
		return "", err
	}

	if v, ok := m.Data[key]; ok {
		return v, nil
	}

	return "", errors.NotFound{Key: key}
}

func NewMockConfig(configMap map[string]string) Config {
	if configMap == nil {
		configMap = make(map[string]string)
	}

	return property.New(&MockConfig{Data: configMap})
}
