package config

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"sysprop.dev/pkg/errors"
	"sysprop.dev/pkg/sysprop/property"
)

func TestMockConfig_Lookup(t *testing.T) {
	m := &MockConfig{
		Data:   map[string]string{"mode": "fast", "secure": "hidden"},
		Errors: map[string]error{"secure": fs.ErrPermission},
	}

	tests := []struct {
		desc  string
		key   string
		value string
		err   error
	}{
		{"present", "mode", "fast", nil},
		{"error wins over data", "secure", "", fs.ErrPermission},
		{"missing", "timeout", "", errors.NotFound{Key: "timeout"}},
	}

	for i, tc := range tests {
		v, err := m.Lookup(tc.key)

		assert.Equal(t, tc.value, v, "TEST[%d], Failed.\n%s", i, tc.desc)
		assert.Equal(t, tc.err, err, "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestMockConfig_PermissionFailureMatchesMissingKey(t *testing.T) {
	a := property.New(&MockConfig{
		Data:   map[string]string{"secure": "42"},
		Errors: map[string]error{"secure": fs.ErrPermission},
	})

	for _, key := range []string{"secure", "missing"} {
		_, ok := a.Get(key)
		assert.False(t, ok, key)
		assert.Equal(t, "default", a.GetOrDefault(key, "default"), key)
		assert.Equal(t, 7, a.GetInt(key, 7), key)
	}
}

func TestNewMockConfig(t *testing.T) {
	conf := NewMockConfig(map[string]string{"retries": "3", "count": "12.0"})

	assert.Equal(t, 3, conf.GetInt("retries", 10))
	assert.Equal(t, -1, conf.GetInt("count", -1))
	assert.Equal(t, "slow", conf.GetOrDefault("mode", "slow"))

	empty := NewMockConfig(nil)

	_, ok := empty.Get("anything")
	assert.False(t, ok)
}
