package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env                 string
	Port                int
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	ShutdownSeconds     int
}

type MongoConf struct {
	URI        string
	Database   string
	Collection string
	UserCol    string
}

type AWSConf struct {
	Region   string
	Bucket   string
	Endpoint string
}

type RedisConf struct {
	Addr     string
	Password string
	DB       int
}

type JWTConf struct {
	Secret     string
	TTLMinutes int
}

type RateLimitConf struct {
	Limit         int
	WindowSeconds int
}

type Config struct {
	App       AppConf
	Mongo     MongoConf
	AWS       AWSConf
	Redis     RedisConf
	JWT       JWTConf
	RateLimit RateLimitConf

	// derived
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	TokenTTL        time.Duration
	RateLimitWindow time.Duration
}

// Load reads configuration from the environment (a .env file, if present,
// is loaded by the caller first). MONGO_URI and JWT_SECRET are required;
// the S3 bucket is not, so catalog-only reads keep working without it.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", 5000)
	v.SetDefault("READ_TIMEOUT_SECONDS", 30)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_SECONDS", 15)
	v.SetDefault("MONGO_DATABASE", "reelico")
	v.SetDefault("MONGO_VIDEO_COLLECTION", "videos")
	v.SetDefault("MONGO_USER_COLLECTION", "users")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("JWT_TTL_MINUTES", 60*24)
	v.SetDefault("UPLOAD_RATE_LIMIT", 20)
	v.SetDefault("UPLOAD_RATE_WINDOW_SECONDS", 3600)

	cfg := &Config{
		App: AppConf{
			Env:                 v.GetString("APP_ENV"),
			Port:                v.GetInt("PORT"),
			ReadTimeoutSeconds:  v.GetInt("READ_TIMEOUT_SECONDS"),
			WriteTimeoutSeconds: v.GetInt("WRITE_TIMEOUT_SECONDS"),
			ShutdownSeconds:     v.GetInt("SHUTDOWN_SECONDS"),
		},
		Mongo: MongoConf{
			URI:        v.GetString("MONGO_URI"),
			Database:   v.GetString("MONGO_DATABASE"),
			Collection: v.GetString("MONGO_VIDEO_COLLECTION"),
			UserCol:    v.GetString("MONGO_USER_COLLECTION"),
		},
		AWS: AWSConf{
			Region:   v.GetString("AWS_REGION"),
			Bucket:   v.GetString("S3_BUCKET"),
			Endpoint: v.GetString("S3_ENDPOINT"),
		},
		Redis: RedisConf{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConf{
			Secret:     v.GetString("JWT_SECRET"),
			TTLMinutes: v.GetInt("JWT_TTL_MINUTES"),
		},
		RateLimit: RateLimitConf{
			Limit:         v.GetInt("UPLOAD_RATE_LIMIT"),
			WindowSeconds: v.GetInt("UPLOAD_RATE_WINDOW_SECONDS"),
		},
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI not set")
	}
	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}

	cfg.ReadTimeout = time.Duration(cfg.App.ReadTimeoutSeconds) * time.Second
	cfg.WriteTimeout = time.Duration(cfg.App.WriteTimeoutSeconds) * time.Second
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSeconds) * time.Second
	cfg.TokenTTL = time.Duration(cfg.JWT.TTLMinutes) * time.Minute
	cfg.RateLimitWindow = time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
	return cfg, nil
}
