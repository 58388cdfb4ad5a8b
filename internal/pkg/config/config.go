package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the cross-service base URLs. Each backend has a fixed
// localhost port in local development; deployments override via env.
const (
	defaultCustomerBaseURL   = "http://localhost:4000"
	defaultDeliveryBaseURL   = "http://localhost:5500"
	defaultRestaurantBaseURL = "http://localhost:8000"

	defaultReadyOrderPollInterval = 10 * time.Second
	defaultOutboxDispatchInterval = 2 * time.Second
	defaultOutboxDispatchBatch    = 100
)

type (
	Tasks struct {
		OutboxDispatchInterval    time.Duration
		OutboxDispatchBatchSize   int
		ReadyOrderPollInterval    time.Duration
		AssignmentCleanupInterval time.Duration
		AssignmentStaleAfter      time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	// Services holds the base URLs of the other backends.
	Services struct {
		CustomerBaseURL   string
		DeliveryBaseURL   string
		RestaurantBaseURL string
		RequestTimeout    time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Services Services
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	outboxInterval, err := osGetEnvDurationDefault("BACKGROUND_OUTBOX_DISPATCH_INTERVAL", defaultOutboxDispatchInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatch, err := osGetInt("BACKGROUND_OUTBOX_DISPATCH_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if outboxBatch == 0 {
		outboxBatch = defaultOutboxDispatchBatch
	}

	readyPollInterval, err := osGetEnvDurationDefault("BACKGROUND_READY_ORDER_POLL_INTERVAL", defaultReadyOrderPollInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cleanupInterval, err := osGetEnvDuration("BACKGROUND_ASSIGNMENT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	staleAfter, err := osGetEnvDuration("BACKGROUND_ASSIGNMENT_STALE_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gatewayTimeout, err := osGetEnvDuration("GATEWAY_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			OutboxDispatchInterval:    outboxInterval,
			OutboxDispatchBatchSize:   outboxBatch,
			ReadyOrderPollInterval:    readyPollInterval,
			AssignmentCleanupInterval: cleanupInterval,
			AssignmentStaleAfter:      staleAfter,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Services: Services{
			CustomerBaseURL:   osGetEnvDefault("CUSTOMER_BACKEND_URL", defaultCustomerBaseURL),
			DeliveryBaseURL:   osGetEnvDefault("DELIVERY_BACKEND_URL", defaultDeliveryBaseURL),
			RestaurantBaseURL: osGetEnvDefault("RESTAURANT_BACKEND_URL", defaultRestaurantBaseURL),
			RequestTimeout:    gatewayTimeout,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Services.RequestTimeout == time.Duration(0) {
		return errors.New("GATEWAY_REQUEST_TIMEOUT is required")
	}

	return nil
}

// ValidateKafka checks the fields only the kafka-facing binaries need.
func (cfg *Config) ValidateKafka() error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	return nil
}

// ValidateConsumer checks the extra fields the consumer worker needs.
func (cfg *Config) ValidateConsumer() error {
	if err := cfg.ValidateKafka(); err != nil {
		return err
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

// ValidateCleanup checks the stale-assignment task fields.
func (cfg *Config) ValidateCleanup() error {
	if cfg.Tasks.AssignmentCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_ASSIGNMENT_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.AssignmentStaleAfter == time.Duration(0) {
		return errors.New("BACKGROUND_ASSIGNMENT_STALE_AFTER is required")
	}
	return nil
}

func osGetEnvDefault(s, def string) string {
	val := os.Getenv(s)
	if val == "" {
		return def
	}
	return val
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDurationDefault(s string, def time.Duration) (time.Duration, error) {
	res, err := osGetEnvDuration(s)
	if err != nil {
		return time.Duration(0), err
	}
	if res == time.Duration(0) {
		return def, nil
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
