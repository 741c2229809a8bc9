package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	CloudWatch  CloudWatchConfig  `mapstructure:"cloudwatch"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	RequestTimeout    int `mapstructure:"request_timeout" validate:"required,min=1"`     // seconds (handler)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig points at the SQLite file holding log records.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig holds batch writer configuration.
type IngestionConfig struct {
	BatchSize int `mapstructure:"batch_size" validate:"required,min=1,max=100000"`
}

// AggregationConfig holds aggregation configuration.
type AggregationConfig struct {
	QuantileMethod string `mapstructure:"quantile_method" validate:"required,oneof=nearest_rank exclusive"`
}

// CloudWatchConfig holds the optional AWS settings for the CloudWatch Logs source.
type CloudWatchConfig struct {
	Region  string `mapstructure:"region"`
	Profile string `mapstructure:"profile"`
}
