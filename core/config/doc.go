// Package config provides configuration management for the content-state service.
//
// It utilizes Viper for loading configuration from environment variables and an optional .env file.
// Every key is declared through `mapstructure` and `default` struct tags; nested keys map to
// environment variables by replacing dots with underscores (consumption.required_update_fields
// becomes CONSUMPTION_REQUIRED_UPDATE_FIELDS). List options are comma separated.
//
// # Configuration Structure
//
//   - Server: HTTP port, optional API key, shutdown timeout
//   - Database: column store driver (mysql, postgres, sqlite) and connection details
//   - Storage: S3/MinIO credentials, export bucket and prefix
//   - Log: logging level and format
//   - Auth: user token header and signing secret
//   - Events: NATS URL and subject for state change events
//   - Consumption: read allow-list, required update fields, merge policy flags
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
