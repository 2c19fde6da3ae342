package config

const (
	defaultLibraryDir     = "~/library"
	defaultStateDir       = "~/.local/share/sagelink"
	defaultLogDir         = "~/.local/share/sagelink/logs"
	defaultSagePort       = 8080
	defaultPageSize       = 100
	defaultPageDelayMs    = 100
	defaultRequestTimeout = 30
	defaultTVDir          = "TV Shows"
	defaultMoviesDir      = "Movies"
	defaultNotifyTimeout  = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			StateDir:   defaultStateDir,
			LogDir:     defaultLogDir,
		},
		SageTV: SageTV{
			Port:           defaultSagePort,
			PageSize:       defaultPageSize,
			PageDelayMs:    defaultPageDelayMs,
			RequestTimeout: defaultRequestTimeout,
		},
		Library: Library{
			TVDir:     defaultTVDir,
			MoviesDir: defaultMoviesDir,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
