package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/maps"
)

const (
	EnvJetOld = "JET_OLD"
	EnvJetNew = "JET_NEW"

	DefaultVariant = "extended"
)

// Config holds the two base colors a run derives from.
type Config struct {
	JetOld string
	JetNew string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Missing environment variable: %s", e.Name)
}

// Resolve reads JET_OLD then JET_NEW. Non-empty overrides win over the
// environment. A variable that is set to "" counts as present.
func Resolve(lookup LookupFunc, overrides Config) (Config, error) {
	var cfg Config
	var err error

	if cfg.JetOld, err = resolveOne(lookup, EnvJetOld, overrides.JetOld); err != nil {
		return Config{}, err
	}
	if cfg.JetNew, err = resolveOne(lookup, EnvJetNew, overrides.JetNew); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveOne(lookup LookupFunc, name, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if lookup != nil {
		if v, ok := lookup(name); ok {
			return v, nil
		}
	}
	return "", &ConfigurationError{Name: name}
}

var builtinPipelines = map[string]string{
	"short":    ShortPipeline,
	"extended": ExtendedPipeline,
}

func Variants() []string {
	names := maps.Keys(builtinPipelines)
	sort.Strings(names)
	return names
}

// PipelineSource returns the YAML for a pipeline file when path is set,
// otherwise for the named built-in variant.
func PipelineSource(fs afero.Fs, variant, path string) ([]byte, error) {
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, fmt.Errorf("reading pipeline file: %w", err)
		}
		return data, nil
	}

	if variant == "" {
		variant = DefaultVariant
	}
	src, ok := builtinPipelines[strings.ToLower(variant)]
	if !ok {
		return nil, fmt.Errorf("unknown variant: %s (must be one of %s)", variant, strings.Join(Variants(), ", "))
	}
	return []byte(src), nil
}
