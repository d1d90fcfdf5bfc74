package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
)

// Config holds everything resolved from the environment at bootstrap.
// It is built once in Load and passed around by value; nothing mutates it
// after startup.
type Config struct {
	Port string

	// API keys allowed through the gate (comma separated in API_KEYS).
	APIKeys []string

	// Cloud mailer relay
	MailerURL      string
	MailerKey      string
	HostType       string
	SMTPHost       string
	MailerUsername string
	MailerPassword string
	FromEmail      string

	// Gateway verification
	PaystackVerifyURL string
	SquadVerifyURL    string
	SquadVerifyAmount bool
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}
}

// Load resolves the immutable app config. LoadEnv must run first.
func Load() Config {
	cfg := Config{
		Port: GetEnv("PORT", "3000"),

		MailerURL:      strings.TrimRight(GetEnv("MAILER_URL"), "/"),
		MailerKey:      GetEnv("CLOUD_MAILER_KEY"),
		HostType:       GetEnv("HOST_TYPE"),
		SMTPHost:       GetEnv("SMTP_HOST"),
		MailerUsername: GetEnv("CLOUD_MAILER_USERNAME"),
		MailerPassword: GetEnv("CLOUD_MAILER_PASSWORD"),
		FromEmail:      GetEnv("FROM_EMAIL"),

		PaystackVerifyURL: GetEnv("PAYSTACK_VERIFY_PAYMENT_URL", constants.PaystackVerifyPaymentURL),
		SquadVerifyAmount: getEnvBool("SQUAD_VERIFY_AMOUNT", false),
	}

	if getEnvBool("SQUAD_USE_LIVE", false) {
		cfg.SquadVerifyURL = GetEnv("SQUAD_VERIFY_PAYMENT_URL", constants.SquadLiveVerifyPaymentURL)
	} else {
		cfg.SquadVerifyURL = GetEnv("SQUAD_VERIFY_PAYMENT_URL", constants.SquadSandboxVerifyPaymentURL)
	}

	for _, key := range strings.Split(GetEnv("API_KEYS"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.APIKeys = append(cfg.APIKeys, key)
		}
	}

	if len(cfg.APIKeys) == 0 {
		log.Println("❌ API_KEYS not set, every gated route will reject!")
	}
	if cfg.MailerURL == "" {
		log.Println("❌ MAILER_URL not set, payment completion/cancellation will fail!")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
