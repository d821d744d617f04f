package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultFallbackReply is sent to the client whenever the generation service
// cannot produce an acknowledgement.
const DefaultFallbackReply = "Oops! Something went wrong, and we couldn't generate a reply at this moment. " +
	"But don't worry, our team has received your inquiry and will be in touch with you soon. " +
	"Thanks for your patience!"

type Config struct {
	Port    string
	GinMode string
	// SMTP Configuration (Gmail by default)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	SMTPTimeout   time.Duration
	// Operator mailbox that receives every inquiry
	ContactEmailTo string
	// Closing lines of the client notice, one per line
	ReplySignature string
	// Text generation
	LLMProvider   string // openai, gemini or none
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	LLMTimeout    time.Duration
	FallbackReply string
	// HTTP surface
	CORSAllowedOrigins []string
	MaxBodyBytes       int64
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitInquiryThreshold int
	RateLimitFailClosed       bool // reject with 503 instead of counting in memory when Redis errors
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine outside local development
	_ = godotenv.Load()

	username := getEnv("SMTP_USERNAME", getEnv("EMAIL_USER", ""))

	cfg := &Config{
		Port:    getEnv("PORT", "5005"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "465"),
		SMTPUsername:   username,
		SMTPPassword:   getEnv("SMTP_PASSWORD", getEnv("EMAIL_PASS", "")),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", username),
		SMTPTimeout:    getEnvDuration("SMTP_TIMEOUT", 15*time.Second),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", username),
		ReplySignature: strings.ReplaceAll(getEnv("REPLY_SIGNATURE", "The Project Team"), `\n`, "\n"),
		// Text generation
		LLMProvider:   strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", "openai"))),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:    getEnvDuration("LLM_TIMEOUT", 20*time.Second),
		FallbackReply: getEnv("FALLBACK_REPLY", DefaultFallbackReply),
		// HTTP surface
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 64*1024)),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitInquiryThreshold: getEnvInt("RATE_LIMIT_INQUIRY_THRESHOLD", 5), // 5 inquiries per window
		RateLimitFailClosed:       getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials are missing. Inquiries will fail with 500 until EMAIL_USER/EMAIL_PASS are set.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("20s") or plain seconds ("20")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
