package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyLogLevel = "log-level"
	KeyEval     = "eval"
	KeyOptions  = "options"

	envPrefix = "COUNTER"
	fileName  = "counter"
)

type Config struct {
	LogLevel string
	Eval     string
	// Options preset UCI options. Keys are lower case; option lookup ignores case.
	Options map[string]string
}

// OptionPreset is one configured option value.
type OptionPreset struct {
	Name  string
	Value string
}

// New returns a viper instance with defaults and the environment bound.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	var v = viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyEval, "")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and resolves every key.
// Precedence: flags, environment, file, defaults.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", fileName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return Config{
		LogLevel: v.GetString(KeyLogLevel),
		Eval:     v.GetString(KeyEval),
		Options:  v.GetStringMapString(KeyOptions),
	}, nil
}

// Presets returns the configured options sorted by name.
func (c Config) Presets() []OptionPreset {
	var result = make([]OptionPreset, 0, len(c.Options))
	for name, value := range c.Options {
		result = append(result, OptionPreset{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
