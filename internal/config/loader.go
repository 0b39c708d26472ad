package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/paramfix/internal/debug"
)

// keys lists every configuration key. Flags with the same name override the
// file and environment when set on the command line.
var keys = []string{"root", "filename", "exclude", "indent", "parallel", "verify", "report"}

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load resolves configuration. Priority, highest first: changed flags,
	// PARAMFIX_* environment variables, config file, defaults.
	Load() (*Config, error)
}

type loader struct {
	configFile string
	searchDir  string
	flags      *pflag.FlagSet
}

// NewLoader creates a loader. configFile may be empty, in which case
// .paramfix.yaml is looked up in the working directory and its absence is not
// an error. flags may be nil.
func NewLoader(configFile string, flags *pflag.FlagSet) Loader {
	return &loader{configFile: configFile, searchDir: ".", flags: flags}
}

func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".paramfix")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.searchDir)
	}

	v.SetEnvPrefix("PARAMFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := bindFlags(v, l.flags); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		debug.Debug("using config file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	debug.Debug("configuration resolved",
		"root", cfg.Root,
		"filename", cfg.Filename,
		"exclude", cfg.Exclude,
		"parallel", cfg.Parallel,
		"verify", cfg.Verify,
	)

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("root", defaults.Root)
	v.SetDefault("filename", defaults.Filename)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("indent", defaults.Indent)
	v.SetDefault("parallel", defaults.Parallel)
	v.SetDefault("verify", defaults.Verify)
	v.SetDefault("report", defaults.Report)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for _, key := range keys {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", key, err)
		}
	}

	return nil
}
