package configs

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is read from the environment after an optional .env load.
type Config struct {
	Port       string        `env:"PORT"          env-default:"3000"`
	MongoURI   string        `env:"MONGO_URI"     env-required:"true"`
	DBName     string        `env:"DB_NAME"       env-default:"prayershare"`
	JWTSecret  string        `env:"JWT_SECRET"    env-required:"true"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"     env-default:"168h"`
	LogLevel   string        `env:"LOG_LEVEL"     env-default:"info"`
	FeedbackTo string        `env:"FEEDBACK_TO"   env-default:"team@prayershare.app"`
	PageSize   int64         `env:"FEED_PAGE_SIZE" env-default:"9"`
	LiveDebug  bool          `env:"FEED_LIVE_DEBUG" env-default:"false"`
}

// Load reads .env if present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
