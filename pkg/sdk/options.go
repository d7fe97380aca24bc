package mentorhub

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Storage drivers.
const (
	driverMemory = "memory"
	driverDisk   = "disk"
	driverRedis  = "redis"
	driverValkey = "valkey"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver   string
	addrs    []string
	password string
	path     string

	gcInterval     time.Duration
	gcDiscardRatio float64

	memoCapacity int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithMemory keeps all data in process memory. This is the default.
func WithMemory() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverMemory
	})
}

// WithPath persists data in an embedded database under dir.
func WithPath(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverDisk
		c.path = dir
	})
}

// WithValueLogGC sets how often the disk store reclaims value log space and
// the discard ratio a log file must reach to be rewritten. Only applies with
// WithPath. Default: every 5 minutes at 0.5. A zero interval disables GC.
func WithValueLogGC(interval time.Duration, discardRatio float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.gcInterval = interval
		c.gcDiscardRatio = discardRatio
	})
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithMemoCapacity sets how many filtered results are memoized per engine.
// Default: 256.
func WithMemoCapacity(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.memoCapacity = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
