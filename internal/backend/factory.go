package backend

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/events"
	"moneyflow/internal/log"
	"moneyflow/internal/store"
	"moneyflow/internal/store/memory"
	"moneyflow/internal/store/sqlite"
)

type DefaultFactory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &DefaultFactory{logger: logger.WithComponent(log.ComponentBackend)}
}

// CreateBackend opens the configured store. A broker that cannot be reached
// degrades to a no-op publisher instead of failing startup.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		st  store.Store
		err error
	)
	switch config.Type {
	case SQLiteBackend:
		st, err = sqlite.Open(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	case MemoryBackend:
		st = memory.New()
		f.logger.Info("Initialized memory backend")
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}

	pub := f.createPublisher(config)

	return &BackendResult{
		Store:     st,
		Publisher: pub,
		Cleanup: func() error {
			return errors.Join(pub.Close(), st.Close())
		},
	}, nil
}

func (f *DefaultFactory) createPublisher(config Config) events.Publisher {
	if config.AMQPURL == "" {
		return events.Noop{}
	}
	client, err := events.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue, f.logger)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without change events", log.FieldError, err)
		return events.Noop{}
	}
	f.logger.Info("Initialized AMQP client", "exchange", config.AMQPExchange, "queue", config.AMQPQueue)
	return client
}
