package active

import (
	"golang.org/x/time/rate"

	"bardscore/internal/exec"
)

// Option is a functional option for configuring a batch of active objects
// built by the pool factory.
type Option func(*config)

type config struct {
	workerCount int
	limiter     *rate.Limiter
}

// WithWorkerCount bounds the batch to a shared pool of count worker
// goroutines instead of giving every active object its own. Started objects
// queue until a worker frees up; Start itself still returns immediately.
// If not specified, each object runs on its own goroutine.
func WithWorkerCount(count int) Option {
	return func(cfg *config) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithRateLimit gates execution starts across the batch with a shared token
// bucket. tasksPerSecond is the sustained rate, burst the bucket size. This
// is useful when the processing function calls out to an external service.
// If not specified, no rate limiting is applied.
func WithRateLimit(tasksPerSecond float64, burst int) Option {
	return func(cfg *config) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// executor builds the execution host for a batch of total objects.
func (cfg *config) executor(total int) exec.Executor {
	if cfg.workerCount > 0 && total > 0 {
		return exec.NewBounded(cfg.workerCount, total)
	}
	return exec.Go()
}
