package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Gemini  GeminiSettings  `mapstructure:"gemini"`
	Lesson  LessonSettings  `mapstructure:"lesson"`
	Quiz    QuizSettings    `mapstructure:"quiz"`
	Chat    ChatSettings    `mapstructure:"chat"`
	Catalog CatalogSettings `mapstructure:"catalog"`
	Log     LogSettings     `mapstructure:"log"`
	CORS    CORSSettings    `mapstructure:"cors"`
}

type ServerSettings struct {
	Port string `mapstructure:"port"`
}

type GeminiSettings struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type LessonSettings struct {
	DiscardStale bool `mapstructure:"discard_stale"`
}

type QuizSettings struct {
	QuestionCount int `mapstructure:"question_count"`
}

type ChatSettings struct {
	ReplayHistory bool `mapstructure:"replay_history"`
}

type CatalogSettings struct {
	Path string `mapstructure:"path"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const DefaultModel = "gemini-2.5-flash"

var envBindings = map[string][]string{
	"server.port":          {"PORT"},
	"gemini.api_key":       {"API_KEY", "GEMINI_API_KEY"},
	"gemini.model":         {"GEMINI_MODEL"},
	"lesson.discard_stale": {"LESSON_DISCARD_STALE"},
	"quiz.question_count":  {"QUIZ_QUESTION_COUNT"},
	"chat.replay_history":  {"CHAT_REPLAY_HISTORY"},
	"catalog.path":         {"CATALOG_PATH"},
	"log.level":            {"LOG_LEVEL"},
	"log.file":             {"LOG_FILE"},
	"cors.allowed_origins": {"CORS_ALLOWED_ORIGINS"},
}

// Load reads settings from an optional config.yaml under path and from the environment.
// A missing API key is not an error: generation calls fail on their own error path.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}

	v.SetDefault("server.port", "8080")
	v.SetDefault("gemini.model", DefaultModel)
	v.SetDefault("lesson.discard_stale", false)
	v.SetDefault("quiz.question_count", 3)
	v.SetDefault("chat.replay_history", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envBindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	s.CORS.AllowedOrigins = splitOrigins(s.CORS.AllowedOrigins)
	return &s, nil
}

// env values arrive as one comma separated string
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}
