package serde

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadConfigFromEnvironment builds a Config from SERDE_* environment
// variables.
//
// envFiles are optional .env files read with godotenv. They never modify the
// process environment, and a variable set in the process environment wins
// over the same variable in a file. Unset variables keep their defaults.
//
//	cfg, err := serde.LoadConfigFromEnvironment(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts, _ := cfg.Options()
func LoadConfigFromEnvironment(envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	if err := applyEnvironment(&cfg, envFiles...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML configuration file. Fields missing from the
// file keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	cfg, err := readConfigFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

// LoadConfig reads the YAML file at path when path is not empty, then
// applies environment overrides from the process and envFiles.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := readConfigFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}
	if err := applyEnvironment(&cfg, envFiles...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	return cfg, nil
}

func readConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnvironment(cfg *Config, envFiles ...string) error {
	fileEnv := map[string]string{}
	if len(envFiles) > 0 {
		var err error
		fileEnv, err = godotenv.Read(envFiles...)
		if err != nil {
			return fmt.Errorf("failed to read env files: %w", err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	if v, ok := lookup(EnvByteOrder); ok {
		cfg.ByteOrder = v
	}
	if v, ok := lookup(EnvTextEncoding); ok {
		cfg.TextEncoding = v
	}
	if v, ok := lookup(EnvArrayPairPolicy); ok {
		cfg.ArrayPairPolicy = v
	}
	if v, ok := lookup(EnvStrictArrays); ok {
		strict, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, EnvStrictArrays, err)
		}
		cfg.StrictArrays = strict
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
		cfg.Logging.Enabled = true
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Logging.Format = v
	}
	return nil
}
