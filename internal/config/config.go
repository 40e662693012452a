package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "LinguaBridge"
	AppVersion = "1.0.0"
)

type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string

	// SessionTTL is how long an idle chat session (and its saved
	// conversations) is kept before the janitor evicts it.
	SessionTTL time.Duration

	// Translator selects the translation provider: stub, openai,
	// anthropic or compatible. The stub needs no credentials.
	Translator     string
	AIAPIKey       string
	AIBaseURL      string
	AIModel        string
	AIQPS          int
	StubDelay      time.Duration

	// Speech engine commands. Empty means the corresponding speech
	// feature degrades to "unavailable" instead of failing requests.
	SpeakCommand  string
	ListenCommand string
	ListenTimeout time.Duration
}

func Load() Config {
	addr := os.Getenv("LB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	staticDir := os.Getenv("LB_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("LB_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	translator := os.Getenv("LB_TRANSLATOR")
	if translator == "" {
		translator = "stub"
	}

	return Config{
		Addr:          addr,
		StaticDir:     filepath.Clean(staticDir),
		LogLevel:      logLevel,
		SessionTTL:    durationEnv("LB_SESSION_TTL", 2*time.Hour),
		Translator:    translator,
		AIAPIKey:      os.Getenv("LB_AI_API_KEY"),
		AIBaseURL:     os.Getenv("LB_AI_BASE_URL"),
		AIModel:       os.Getenv("LB_AI_MODEL"),
		AIQPS:         intEnv("LB_AI_QPS", 10),
		StubDelay:     durationEnv("LB_STUB_DELAY", 500*time.Millisecond),
		SpeakCommand:  os.Getenv("LB_SPEAK_CMD"),
		ListenCommand: os.Getenv("LB_LISTEN_CMD"),
		ListenTimeout: durationEnv("LB_LISTEN_TIMEOUT", 15*time.Second),
	}
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
