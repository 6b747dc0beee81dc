package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
)

// LoadEnvFile loads <root>/.env into the process environment. Variables that
// are already set keep their value. A missing file is not an error.
func LoadEnvFile(root string) error {
	path := filepath.Join(root, domain.EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}

	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}
	return nil
}

// DevModeFromEnv reports whether ARCO_ENV selects the development build mode.
func DevModeFromEnv() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(domain.EnvBuildMode)), domain.BuildModeDevelopment)
}

// MinifyDisabledFromEnv reports whether ARCO_DISABLE_MINIFY is set to a true value.
func MinifyDisabledFromEnv() bool {
	return truthy(os.Getenv(domain.EnvDisableMinify))
}

func truthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "yes", "y", "on":
		return true
	default:
		return false
	}
}
