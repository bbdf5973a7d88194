package config

const (
	// Shape Defaults
	DefaultShape = "envelope"

	// HTTP Defaults
	DefaultHTTPConnectTimeoutSecs = 15
	DefaultHTTPTimeoutSecs        = 0
	DefaultHTTPFollowRedirects    = true
	DefaultHTTPMaxRedirects       = 0
	DefaultHTTPEnableHTTP2        = true

	// Log Defaults
	DefaultLogLevel      = "disabled"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv names the environment variable holding a config file path
	ConfigPathEnv = "HTTPGET_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)
