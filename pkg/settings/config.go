package settings

type Config struct {
	Server Server `yaml:"server"`
	Logger Logger `yaml:"logger"`
	Queue  Queue  `yaml:"queue"`
}

// Server is the configuration for the server
type Server struct {
	Mode            string `yaml:"mode" validate:"oneof=debug release test"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port" validate:"gte=0,lte=65535"`
	ShutdownTimeout int    `yaml:"shutdown_timeout" validate:"gte=0"` // Seconds
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"` // Days
	MaxSize     int    `yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `yaml:"compress"`
}

// Queue is the configuration for the bounded queue
type Queue struct {
	Capacity int `yaml:"capacity" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Mode:            "release",
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 5,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Queue: Queue{
			Capacity: 10,
		},
	}
}
