// Package config loads application configuration from environment variables
// into tagged structs, with optional .env file support for development.
//
// Define a struct with env tags and load it:
//
//	type ServerConfig struct {
//	    Addr    string        `env:"SERVER_ADDR" envDefault:":8080"`
//	    Timeout time.Duration `env:"SERVER_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The default .env file in the working directory is loaded once per process
// before the first parse; a missing file is not an error. MustLoad panics on
// failure for configuration the process cannot start without.
package config
