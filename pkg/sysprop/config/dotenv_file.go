package config

import (
	"github.com/joho/godotenv"

	"sysprop.dev/pkg/errors"
)

// DotEnvFile is a property.Store over a single dotenv file. The file is read on every lookup,
// so edits are visible immediately and an unreadable file fails the lookup with the OS error.
type DotEnvFile struct {
	path string
}

func NewDotEnvFile(path string) *DotEnvFile {
	return &DotEnvFile{path: path}
}

func (f *DotEnvFile) Lookup(key string) (string, error) {
	content, err := godotenv.Read(f.path)
	if err != nil {
		return "", err
	}

	v, ok := content[key]
	if !ok {
		return "", errors.NotFound{Key: key}
	}

	return v, nil
}
