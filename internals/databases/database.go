package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Emmynem/alphaprimeclub-api/internals/configs"
	applicationModel "github.com/Emmynem/alphaprimeclub-api/internals/features/applications/model"
	paymentModel "github.com/Emmynem/alphaprimeclub-api/internals/features/payments/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=alphaprimeclub&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true, // unique violations surface as gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the schema and the partial unique index that keeps
// at most one processing payment per application at the store level.
func Migrate() {
	if err := DB.AutoMigrate(
		&applicationModel.Application{},
		&paymentModel.Payment{},
		&paymentModel.AppDefault{},
		&paymentModel.PaymentGatewayEvent{},
	); err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}

	if err := DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_processing_payment_per_application
		 ON payments (application_unique_id)
		 WHERE payment_status = 'processing' AND status = 1`,
	).Error; err != nil {
		log.Fatalf("❌ processing-payment index failed: %v", err)
	}

	log.Println("✅ Migrations applied.")
}

func WarmUpQueries() {
	// run something light so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
