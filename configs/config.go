package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// AdminChatIDs is parsed once here and handed to the authz checker;
	// nothing else reads the raw env var.
	AdminChatIDs []string

	BotToken  string
	BotAPIURL string

	MaxActiveOrders int
	LogLevel        string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process env")
	}

	return &Config{
		DBSource:        getEnv("DB_SOURCE", "shukrona.db"),
		Port:            getEnv("PORT", "8000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(24) * time.Hour,
		AdminChatIDs:    splitIDs(os.Getenv("ADMIN_CHAT_IDS")),
		BotToken:        os.Getenv("BOT_TOKEN"),
		BotAPIURL:       getEnv("BOT_API_URL", "https://api.telegram.org"),
		MaxActiveOrders: getEnvInt("MAX_ACTIVE_ORDERS", 3),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("bad int in env %s: %q", key, v)
	}
	return n
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
