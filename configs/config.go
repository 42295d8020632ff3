package configs

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryBaseURL   string

	UploadTimeout  time.Duration
	RequestTimeout time.Duration
	MaxUploadBytes int64
	SeedDemo       bool
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading configuration from environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "booking.db")
	v.SetDefault("PORT", "8000")
	v.SetDefault("JWT_SECRET", "changeme")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("CLOUDINARY_BASE_URL", "https://api.cloudinary.com")
	v.SetDefault("UPLOAD_TIMEOUT", "30s")
	v.SetDefault("REQUEST_TIMEOUT", "2m")
	v.SetDefault("MAX_UPLOAD_BYTES", 32<<20)
	v.SetDefault("SEED_DEMO", false)

	return &Config{
		Env:       v.GetString("APP_ENV"),
		DBDriver:  v.GetString("DB_DRIVER"),
		DBSource:  v.GetString("DB_SOURCE"),
		Port:      v.GetString("PORT"),
		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		CloudinaryCloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryBaseURL:   v.GetString("CLOUDINARY_BASE_URL"),

		UploadTimeout:  v.GetDuration("UPLOAD_TIMEOUT"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		SeedDemo:       v.GetBool("SEED_DEMO"),
	}
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.CloudinaryCloudName == "" {
		errs = append(errs, errors.New("missing env: CLOUDINARY_CLOUD_NAME"))
	}
	if c.CloudinaryAPIKey == "" {
		errs = append(errs, errors.New("missing env: CLOUDINARY_API_KEY"))
	}
	if c.CloudinaryAPISecret == "" {
		errs = append(errs, errors.New("missing env: CLOUDINARY_API_SECRET"))
	}
	if c.DBDriver != "sqlite" && c.DBDriver != "postgres" {
		errs = append(errs, errors.New("DB_DRIVER must be sqlite or postgres"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
