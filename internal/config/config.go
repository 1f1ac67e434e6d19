package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode)
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PresenceTTL time.Duration `mapstructure:"presence_ttl"`
}

type KafkaConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	DLQTopic string   `mapstructure:"dlq_topic"`
	GroupID  string   `mapstructure:"group_id"`
}

type OutboxConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	CloudFrontDomain string `mapstructure:"cloudfront_domain"`
}

// Enabled reports whether photo uploads are configured.
func (s S3Config) Enabled() bool {
	return s.Bucket != "" && s.Region != ""
}

// MailConfig addresses the SES account that account emails are sent from.
type MailConfig struct {
	Sender          string `mapstructure:"sender"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	// GroupID is shared by every instance so each verification email goes out once.
	GroupID string `mapstructure:"group_id"`
}

// Enabled reports whether emails are really sent rather than only logged.
func (m MailConfig) Enabled() bool {
	return m.Sender != "" && m.Region != ""
}

type AssignmentConfig struct {
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	BatchSize     int           `mapstructure:"batch_size"`
}

type UrgencyConfig struct {
	TimeZone string `mapstructure:"time_zone"`
}

type Config struct {
	LogLevel   string           `mapstructure:"log_level"`
	Server     ServerConfig     `mapstructure:"server"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Outbox     OutboxConfig     `mapstructure:"outbox"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	S3         S3Config         `mapstructure:"s3"`
	Mail       MailConfig       `mapstructure:"mail"`
	Assignment AssignmentConfig `mapstructure:"assignment"`
	Urgency    UrgencyConfig    `mapstructure:"urgency"`
}

// Location is the time zone required dates and times are written in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Urgency.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", c.Urgency.TimeZone, err)
	}
	return loc, nil
}

var envBindings = map[string]string{
	"log_level":                 "LOG_LEVEL",
	"server.addr":               "SERVER_ADDR",
	"server.shutdown_timeout":   "SERVER_SHUTDOWN_TIMEOUT",
	"postgres.host":             "DB_HOST",
	"postgres.port":             "DB_PORT",
	"postgres.user":             "POSTGRES_USER",
	"postgres.password":         "POSTGRES_PASSWORD",
	"postgres.db":               "POSTGRES_DB",
	"postgres.sslmode":          "POSTGRES_SSLMODE",
	"redis.addr":                "REDIS_ADDR",
	"redis.password":            "REDIS_PASSWORD",
	"redis.db":                  "REDIS_DB",
	"redis.presence_ttl":        "REDIS_PRESENCE_TTL",
	"kafka.enabled":             "KAFKA_ENABLED",
	"kafka.brokers":             "KAFKA_BROKERS",
	"kafka.topic":               "KAFKA_TOPIC",
	"kafka.dlq_topic":           "KAFKA_DLQ_TOPIC",
	"kafka.group_id":            "KAFKA_GROUP_ID",
	"outbox.poll_interval":      "OUTBOX_POLL_INTERVAL",
	"outbox.batch_size":         "OUTBOX_BATCH_SIZE",
	"outbox.max_attempts":       "OUTBOX_MAX_ATTEMPTS",
	"jwt.secret":                "JWT_SECRET",
	"s3.bucket":                 "S3_BUCKET",
	"s3.region":                 "S3_REGION",
	"s3.access_key_id":          "S3_ACCESS_KEY_ID",
	"s3.secret_access_key":      "S3_SECRET_ACCESS_KEY",
	"s3.cloudfront_domain":      "S3_CLOUDFRONT_DOMAIN",
	"mail.sender":               "SENDER_EMAIL",
	"mail.region":               "SES_REGION",
	"mail.access_key_id":        "SES_ACCESS_KEY_ID",
	"mail.secret_access_key":    "SES_SECRET_ACCESS_KEY",
	"mail.group_id":             "MAIL_GROUP_ID",
	"assignment.retry_interval": "ASSIGNMENT_RETRY_INTERVAL",
	"assignment.batch_size":     "ASSIGNMENT_BATCH_SIZE",
	"urgency.time_zone":         "URGENCY_TIME_ZONE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("server.addr", ":9000")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "smartplate")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.presence_ttl", 10*time.Minute)
	v.SetDefault("kafka.enabled", true)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "smartplate-events")
	v.SetDefault("kafka.dlq_topic", "smartplate-events-dlq")
	v.SetDefault("kafka.group_id", "")
	v.SetDefault("outbox.poll_interval", 2*time.Second)
	v.SetDefault("outbox.batch_size", 10)
	v.SetDefault("outbox.max_attempts", 3)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.cloudfront_domain", "")
	v.SetDefault("mail.sender", "")
	v.SetDefault("mail.region", "")
	v.SetDefault("mail.access_key_id", "")
	v.SetDefault("mail.secret_access_key", "")
	v.SetDefault("mail.group_id", "smartplate-mailer")
	v.SetDefault("assignment.retry_interval", 30*time.Second)
	v.SetDefault("assignment.batch_size", 20)
	v.SetDefault("urgency.time_zone", "Asia/Kolkata")
}

// Load reads .env files, an optional config.yaml and the environment, in increasing order
// of precedence. dirs are searched for both files; by default the working directory and
// its two parents.
func Load(dirs ...string) (Config, error) {
	if len(dirs) == 0 {
		dirs = defaultDirs()
	}
	loadEnv(dirs)

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.JWT.Secret == "":
		return errors.New("config: JWT_SECRET is required")
	case c.Postgres.Host == "":
		return errors.New("config: DB_HOST is required")
	case c.Kafka.Enabled && len(c.Kafka.Brokers) == 0:
		return errors.New("config: KAFKA_BROKERS is required when kafka is enabled")
	case c.Kafka.Enabled && c.Kafka.Topic == "":
		return errors.New("config: KAFKA_TOPIC is required when kafka is enabled")
	case c.Outbox.PollInterval <= 0 || c.Assignment.RetryInterval <= 0:
		return errors.New("config: poll and retry intervals must be positive")
	case c.Outbox.BatchSize <= 0 || c.Assignment.BatchSize <= 0:
		return errors.New("config: OUTBOX_BATCH_SIZE and ASSIGNMENT_BATCH_SIZE must be positive")
	case c.Outbox.MaxAttempts <= 0:
		return errors.New("config: OUTBOX_MAX_ATTEMPTS must be positive")
	case c.Mail.Enabled() && c.Kafka.Enabled && c.Mail.GroupID == "":
		return errors.New("config: MAIL_GROUP_ID is required when mail and kafka are enabled")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func defaultDirs() []string {
	wd, err := os.Getwd()
	if err != nil {
		return []string{"."}
	}
	return []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")}
}

// loadEnv loads the first .env found, falling back to .example.env. Variables already
// set in the process win.
func loadEnv(dirs []string) {
	for _, name := range []string{".env", ".example.env"} {
		for _, dir := range dirs {
			path := filepath.Join(dir, name)
			if err := godotenv.Load(path); err == nil {
				log.Printf("Loaded environment variables from %s", path)
				return
			}
		}
	}
}
