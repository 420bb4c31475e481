package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"sysprop.dev/pkg/sysprop/property"
)

const (
	defaultFileName         = "/.env"
	defaultOverrideFileName = "/.local.env"
)

type EnvLoader struct {
	logger logger
}

type logger interface {
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
	Errorf(format string, a ...any)
}

// NewEnvFile loads .env, .local.env and .<APP_ENV>.env from configFolder into the process
// environment and returns a Config that reads from it. Variables already set in the process
// environment are never overridden by file values.
func NewEnvFile(configFolder string, logger logger) Config {
	e := &EnvLoader{logger: logger}
	e.read(configFolder)

	return property.New(property.Env{}, property.WithLogger(logger))
}

func (e *EnvLoader) read(folder string) {
	initialEnv := e.captureInitialEnv()

	// APP_ENV must come from the real environment, not from a file being loaded.
	appEnv := os.Getenv("APP_ENV")

	envMap := e.loadEnvironmentFiles(folder, appEnv)

	e.applyEnvironmentVariables(envMap, initialEnv)
}

func (*EnvLoader) captureInitialEnv() map[string]bool {
	initialEnv := make(map[string]bool)

	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	return initialEnv
}

// loadEnvironmentFiles merges the files in increasing order of precedence.
func (e *EnvLoader) loadEnvironmentFiles(folder, appEnv string) map[string]string {
	envMap := make(map[string]string)

	e.loadFile(folder+defaultFileName, envMap, true)

	e.loadFile(folder+defaultOverrideFileName, envMap, false)

	if appEnv != "" {
		e.loadFile(fmt.Sprintf("%s/.%s.env", folder, appEnv), envMap, true)
	}

	return envMap
}

// loadFile merges path into envMap. A missing file is skipped silently; other read failures
// are logged when report is set and the file is skipped.
func (e *EnvLoader) loadFile(path string, envMap map[string]string, report bool) {
	content, err := godotenv.Read(path)
	if err != nil {
		if report && !errors.Is(err, fs.ErrNotExist) {
			e.logger.Errorf("Failed to load config from file: %v, Err: %v", path, err)
		}

		return
	}

	for k, v := range content {
		envMap[k] = v
	}

	e.logger.Infof("Loaded config from file: %v", path)
}

func (*EnvLoader) applyEnvironmentVariables(envMap map[string]string, initialEnv map[string]bool) {
	for key, value := range envMap {
		if !initialEnv[key] {
			os.Setenv(key, value)
		}
	}
}
