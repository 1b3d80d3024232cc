package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/models"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret []byte

	Port           string
	Environment    string
	AllowedOrigins []string
	UploadDir      string
	LogLevel       string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),

		Port:           envDefault("PORT", "3000"),
		Environment:    envDefault("NODE_ENV", "development"),
		AllowedOrigins: csv(os.Getenv("ALLOWED_ORIGINS")),
		UploadDir:      envDefault("UPLOAD_DIR", "uploads"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
}

func (c *Config) MustValidate() {
	if len(c.JWTSecret) == 0 {
		log.Fatal("missing required env JWT_SECRET")
	}
	if c.DBHost == "" || c.DBName == "" {
		log.Fatal("missing required env DB_HOST / DB_NAME")
	}
}

// InitDB opens the relational store and migrates the catalog and admin
// tables. The store owns durability; nothing is cached in-process.
func InitDB(c *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.Product{},
		&models.ProductTranslation{},
	)
}

func csv(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
