package cmd

// Config carries the environment-provided settings of the service.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr         string
	RedisPassword     string
	RatingCacheTTLMin int

	KafkaHost             string
	KafkaOrderStatusTopic string

	// DispatchSchedule is a cron expression with a seconds field.
	DispatchSchedule string
}
