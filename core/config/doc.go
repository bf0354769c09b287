// Package config provides configuration management for the development server.
//
// It utilizes Viper for loading configuration from environment variables,
// with an optional .env file (godotenv) layered underneath for local setups.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (host, starting port, probe budget,
//     served root, browser launch)
//   - Log: Logging level and format
//
// Defaults come from 'default' struct tags; every key can be overridden via
// SERVER_* / LOG_* environment variables.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
