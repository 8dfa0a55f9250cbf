package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the user configuration file looked up under the
// XDG config directories.
const ConfigFileName = "resin/resin.toml"

// EnvPrefix is the prefix for environment overrides. Double
// underscores nest ("RESIN_TAB__WIDTH" -> tab.width) and single
// underscores become dashes ("RESIN_AUTO_WIDTH" -> auto-width).
const EnvPrefix = "RESIN_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Defaults returns the built-in default option tree.
func Defaults() map[string]interface{} {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are part of the binary; failing to
		// parse them is a build defect, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return k.Raw()
}

// loadGlobal assembles the process-wide configuration: embedded
// defaults, then the user config file if one exists, then RESIN_*
// environment overrides. Errors are returned as messages, not raised;
// the resolver folds them into the call diagnostic. widthSet reports
// whether a layer above the built-in defaults supplied a width, which
// gates the auto-width probe.
func loadGlobal() (merged map[string]interface{}, errs []string, widthSet bool) {
	merged = Defaults()

	if path, err := xdg.SearchConfigFile(ConfigFileName); err == nil {
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			errs = append(errs, fmt.Sprintf("config file %s: %v", path, err))
		} else {
			userMap := k.Raw()
			if _, ok := userMap["width"]; ok {
				widthSet = true
			}
			MergeMaps(merged, userMap)
		}
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		return strings.ReplaceAll(key, "_", "-")
	}), nil)
	if err != nil {
		errs = append(errs, fmt.Sprintf("environment: %v", err))
	} else {
		envMap := k.Raw()
		coerceEnvValues(envMap)
		if _, ok := envMap["width"]; ok {
			widthSet = true
		}
		MergeMaps(merged, envMap)
	}

	return merged, errs, widthSet
}

// coerceEnvValues converts string-typed environment values to the
// scalar types validation expects, in place.
func coerceEnvValues(m map[string]interface{}) {
	for key, val := range m {
		switch v := val.(type) {
		case map[string]interface{}:
			coerceEnvValues(v)
		case string:
			if b, ok := parseBool(v); ok {
				m[key] = b
				continue
			}
			if n, ok := parseInt(v); ok {
				m[key] = n
			}
		}
	}
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func parseInt(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// UserConfigPath returns where a user configuration file would be
// written, creating parent directories as needed.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(ConfigFileName)
}

// HasUserConfig reports whether a user configuration file exists.
func HasUserConfig() bool {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(path)
	return statErr == nil
}
