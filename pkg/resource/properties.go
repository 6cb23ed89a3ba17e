package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

const defaultPropertiesPath = "configs/application.yml"

var (
	props      = viper.New()
	defaults   = map[string]any{}
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Load reads application properties from the YAML file named by PROPERTIES_FILE_PATH,
// or configs/application.yml when unset.
func Load() error {
	path, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		path = defaultPropertiesPath
	}
	return Init(path)
}

// Init reads application properties from filepath and resolves ${ENV:default} placeholders.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	for key, value := range resolved {
		v.Set(key, value)
	}
	props = v
	return nil
}

// SetDefault registers a fallback for key, used when the file does not define it.
// Defaults survive later calls to Init.
func SetDefault(key string, value any) {
	defaults[key] = value
	props.SetDefault(key, value)
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the environment value or the default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func GetString(key string) string {
	return props.GetString(key)
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}

func GetFloat64(key string) float64 {
	return props.GetFloat64(key)
}
