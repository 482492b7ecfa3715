// Package config exposes typed, reloadable configuration lookups.
package config

import (
	"io"
	"os"
	"strings"
	"time"
)

const (
	defaultPath      = "/config/config.yaml"
	defaultLocalPath = "./config/config.yaml"
)

// Config retrieves configuration values by dotted key. Missing keys yield the
// zero value of the requested type.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetFloat64(key string) float64

	// GetSecond, GetMinute and GetHour read an integer and scale it to a duration.
	GetSecond(key string) time.Duration
	GetMinute(key string) time.Duration
	GetHour(key string) time.Duration

	// GetArray reads "a,b,c" and returns the trimmed, non-empty elements.
	GetArray(key string) []string

	// GetMap reads "k1:v1,k2:v2" into a map.
	GetMap(key string) map[string]string
}

// Path resolves the config file location from CONFIG_PATH, falling back to
// the container path or, when LOCAL=true, the repository path.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	if strings.EqualFold(os.Getenv("LOCAL"), "true") {
		return defaultLocalPath
	}
	return defaultPath
}
