// Package config loads tool configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration.
type Config struct {
	Vocab      VocabConfig  `yaml:"vocab"`
	Dictionary DictConfig   `yaml:"dictionary"`
	Speech     SpeechConfig `yaml:"speech"`
	Log        LogConfig    `yaml:"log"`
}

// VocabConfig points at the vocabulary source. An empty path means the
// embedded sample list.
type VocabConfig struct {
	Path string `yaml:"path" env:"RECITE_VOCAB_PATH"`
}

// DictConfig holds the supplementary dictionary resource settings.
// Path wins over URL when both are set; both empty disables lookup.
type DictConfig struct {
	Path    string        `yaml:"path"    env:"RECITE_DICT_PATH"`
	URL     string        `yaml:"url"     env:"RECITE_DICT_URL"`
	Timeout time.Duration `yaml:"timeout" env:"RECITE_DICT_TIMEOUT" env-default:"10s"`
}

// SpeechConfig holds the synthesis settings.
type SpeechConfig struct {
	Command      string  `yaml:"command"       env:"RECITE_SPEECH_COMMAND" env-default:"espeak-ng"`
	Rate         float64 `yaml:"rate"          env:"RECITE_RATE"           env-default:"1.0"`
	EnglishVoice string  `yaml:"english_voice" env:"RECITE_ENGLISH_VOICE"`
	ChineseVoice string  `yaml:"chinese_voice" env:"RECITE_CHINESE_VOICE"`
}

// LogConfig holds logging settings. The terminal belongs to the UI, so
// logs go to a file; an empty path discards them.
type LogConfig struct {
	Level string `yaml:"level" env:"RECITE_LOG_LEVEL" env-default:"info"`
	File  string `yaml:"file"  env:"RECITE_LOG_FILE"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). The YAML
// file path comes from RECITE_CONFIG (fallback "./recite.yaml"). If
// the file does not exist and RECITE_CONFIG was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("RECITE_CONFIG")
	explicitPath := path != ""
	if !explicitPath {
		path = "./recite.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
