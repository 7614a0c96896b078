package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

var (
	APP_ENV   string
	APP_PORT  string
	LOG_LEVEL string

	JWTSecret            string
	JWTExpiration        int
	JWTRefreshExpiration int
	RefreshTokenRotation bool

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAIRPS     float64

	PythonServerURL     string
	PythonServerTimeout time.Duration

	RedisURL string
	CacheTTL time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPSender   string

	allowedOrigins map[string]bool
)

// LoadConfig reads .env (when present) and fills the package configuration.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	APP_ENV = getEnv("APP_ENV", "development")
	APP_PORT = getEnv("APP_PORT", "8080")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	JWTSecret = getEnv("JWT_SECRET", "jiwoo_back_local_secret")
	JWTExpiration = getEnvAsInt("JWT_EXPIRATION", 1800)
	JWTRefreshExpiration = getEnvAsInt("JWT_REFRESH_EXPIRATION", 1209600)
	RefreshTokenRotation = getEnvAsBool("REFRESH_TOKEN_ROTATION", false)

	DBDriver = getEnv("DB_DRIVER", "mysql")
	DBHost = getEnv("DB_HOST", "localhost")
	DBPort = getEnv("DB_PORT", "3306")
	DBUser = getEnv("DB_USER", "jiwoo")
	DBPassword = getEnv("DB_PASSWORD", "jiwoo")
	DBName = getEnv("DB_NAME", "jiwoo")

	OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "")
	OpenAIModel = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	OpenAIRPS = getEnvAsFloat("OPENAI_RPS", 2)

	PythonServerURL = getEnv("PYTHON_SERVER_URL", "http://localhost:8000/search_similar_companies")
	PythonServerTimeout = getEnvAsDuration("PYTHON_SERVER_TIMEOUT", 10*time.Second)

	RedisURL = getEnv("REDIS_URL", "")
	CacheTTL = getEnvAsDuration("CACHE_TTL", 6*time.Hour)

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvAsInt("SMTP_PORT", 587)
	SMTPUser = getEnv("SMTP_USER", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPSender = getEnv("SMTP_SENDER", SMTPUser)

	loadAllowedOrigins()
}

func IsProduction() bool {
	return APP_ENV == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("10s") or plain seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func loadAllowedOrigins() {
	allowedOrigins = make(map[string]bool)
	originsStr := getEnv("ALLOWED_ORIGINS", "")

	if originsStr == "" {
		allowedOrigins = map[string]bool{
			"http://localhost:3000": true,
			"http://127.0.0.1:3000": true,
		}
		return
	}

	for _, origin := range strings.Split(originsStr, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
}

func SetupCORS(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if allowedOrigins[origin] {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			c.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	})
}

// GetRefreshTokenCookie mirrors the refresh token into an http-only cookie.
func GetRefreshTokenCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  time.Now().Add(time.Duration(JWTRefreshExpiration) * time.Second),
		HTTPOnly: true,
		SameSite: getEnv("COOKIE_SAMESITE", "Lax"),
		Path:     "/",
		Secure:   getEnvAsBool("COOKIE_SECURE", IsProduction()),
	}
}
