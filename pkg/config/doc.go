// Package config loads environment variables into typed configuration
// structs using caarlos0/env, with an optional .env file loaded once per
// process via godotenv.
//
//	type appConfig struct {
//		Addr     string        `env:"ADDR" envDefault:":8080"`
//		Endpoint string        `env:"USERS_ENDPOINT,required"`
//		Timeout  time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg appConfig
//	config.MustLoad(&cfg)
package config
