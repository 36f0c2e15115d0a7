package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server ServerConfig
	FAQ    FAQConfig
	Match  MatchConfig
	Export ExportConfig
	Upload UploadConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	matchCfg, err := loadMatchConfig()
	if err != nil {
		return nil, err
	}

	upload, err := loadUploadConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		FAQ:    FAQConfig{CSVPath: getEnvOrDefault("FAQ_CSV_PATH", "faq.csv")},
		Match:  matchCfg,
		Export: ExportConfig{Path: getEnvOrDefault("EXPORT_PATH", "chat_history.txt")},
		Upload: upload,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// FAQConfig locates the FAQ data source.
type FAQConfig struct {
	CSVPath string
}

// MatchConfig tunes the fuzzy matcher.
type MatchConfig struct {
	Threshold   int
	TypingDelay time.Duration
}

func loadMatchConfig() (MatchConfig, error) {
	threshold := 60
	if override, err := parseOptionalIntEnv("MATCH_THRESHOLD"); err != nil {
		return MatchConfig{}, err
	} else if override != nil {
		if *override < 0 || *override > 100 {
			return MatchConfig{}, fmt.Errorf("MATCH_THRESHOLD must be within [0,100], got %d", *override)
		}
		threshold = *override
	}

	delayMS := 1000
	if override, err := parseOptionalIntEnv("TYPING_DELAY_MS"); err != nil {
		return MatchConfig{}, err
	} else if override != nil {
		if *override < 0 {
			delayMS = 0
		} else {
			delayMS = *override
		}
	}

	return MatchConfig{
		Threshold:   threshold,
		TypingDelay: time.Duration(delayMS) * time.Millisecond,
	}, nil
}

// ExportConfig names the chat export artifact.
type ExportConfig struct {
	Path string
}

// UploadConfig limits document uploads.
type UploadConfig struct {
	MaxBytes int64
}

func loadUploadConfig() (UploadConfig, error) {
	maxBytes := int64(16 << 20)
	if override, err := parseOptionalIntEnv("MAX_UPLOAD_BYTES"); err != nil {
		return UploadConfig{}, err
	} else if override != nil && *override > 0 {
		maxBytes = int64(*override)
	}
	return UploadConfig{MaxBytes: maxBytes}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
