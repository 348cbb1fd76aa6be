package morphofts

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/masamichhhhi/morphofts/morphology"
)

const envPrefix = "MORPHOFTS"

type Config struct {
	// Language variant, e.g. "fi-morpho" or "ja".
	Language string `mapstructure:"language"`
	// DictionaryPath is a SQLite file or mysql:// DSN for lexicon languages,
	// a dictionary name or file for Japanese.
	DictionaryPath string `mapstructure:"dictionary_path"`
	// Attribute of the first analysis emitted in place of the word.
	Attribute string `mapstructure:"attribute"`
	CacheSize int    `mapstructure:"cache_size"`
}

func DefaultConfig() Config {
	return Config{
		Language:  "fi-morpho",
		Attribute: morphology.AttrBaseForm,
		CacheSize: morphology.DefaultCacheSize,
	}
}

// LoadConfig reads a YAML/TOML/JSON config file, if path is not empty, and
// applies MORPHOFTS_* environment overrides on top of the defaults.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("language", def.Language)
	v.SetDefault("dictionary_path", def.DictionaryPath)
	v.SetDefault("attribute", def.Attribute)
	v.SetDefault("cache_size", def.CacheSize)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}
