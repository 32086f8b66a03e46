package mongo

import "time"

// Config represents the configuration for the database.
type Config struct {
	URI             string        `env:"MONGODB_URI,required,notEmpty"`
	Database        string        `env:"MONGODB_DATABASE" envDefault:"gatekeep"`
	Timeout         time.Duration `env:"MONGODB_TIMEOUT" envDefault:"10s"` // per-operation deadline
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryAttempts   uint64        `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
}

func (c Config) operationTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 10 * time.Second
	}
	return c.Timeout
}
