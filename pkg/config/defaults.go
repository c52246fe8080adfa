package config

import "time"

const (
	StorageDriverMemory  = "memory"
	StorageDriverMongoDB = "mongodb"

	DefaultStorageDriver = StorageDriverMongoDB

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "hotelbooking"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultBookingLockTTL = 10 * time.Second
	DefaultSeedDemoData   = false

	DefaultKafkaEnabled      = false
	DefaultKafkaBrokers      = "localhost:9092"
	DefaultKafkaTopic        = "hotel.booking.events"
	DefaultKafkaBatchTimeout = 10 * time.Millisecond
	DefaultKafkaMaxAttempts  = 3
)
