package configs

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StorageDriver  string
	UploadDir      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseTLS    bool

	KafkaBrokers    []string
	KafkaOrderTopic string

	NodeID int64

	AdminUsername string
	AdminPassword string

	Log *logger.Conf
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() *Config {
	// a missing .env is fine, real deployments pass env vars directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "reggie.db")
	v.SetDefault("JWT_SECRET", "changeme")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STORAGE_DRIVER", "local")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("MINIO_BUCKET", "reggie")
	v.SetDefault("KAFKA_ORDER_TOPIC", "reggie.orders")
	v.SetDefault("NODE_ID", 1)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "123456")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LOG_PATH", "./logs")
	v.SetDefault("LOG_LEVEL", "INFO")

	logConf := logger.SetDefaults()
	logConf.Output = v.GetString("LOG_OUTPUT")
	logConf.Path = v.GetString("LOG_PATH")
	logConf.Level = v.GetString("LOG_LEVEL")

	return &Config{
		Port:      v.GetString("PORT"),
		DBDriver:  strings.ToLower(v.GetString("DB_DRIVER")),
		DBSource:  v.GetString("DB_SOURCE"),
		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		StorageDriver:  strings.ToLower(v.GetString("STORAGE_DRIVER")),
		UploadDir:      v.GetString("UPLOAD_DIR"),
		MinioEndpoint:  v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: v.GetString("MINIO_SECRET_KEY"),
		MinioBucket:    v.GetString("MINIO_BUCKET"),
		MinioUseTLS:    v.GetBool("MINIO_USE_TLS"),

		KafkaBrokers:    splitList(v.GetString("KAFKA_BROKERS")),
		KafkaOrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),

		NodeID: v.GetInt64("NODE_ID"),

		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),

		Log: logConf,
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
