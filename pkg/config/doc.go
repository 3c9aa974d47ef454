// Package config loads application configuration from environment variables
// and YAML settings files.
//
// Environment loading wraps github.com/joho/godotenv and
// github.com/caarlos0/env/v11:
//
//   - Load parses the environment into any struct annotated with `env` tags.
//     The default .env file is read once if it exists. Each configuration
//     type is parsed once and cached for the life of the process.
//   - MustLoad panics instead of returning an error.
//   - LoadEnv reads additional .env files explicitly.
//   - ResetCache drops cached values, which is handy in tests.
//
// LoadYAML decodes a settings file with gopkg.in/yaml.v3. ${VAR} references
// are expanded from the environment first, and keys missing from the file
// leave the destination untouched, so defaults prepared by the caller survive.
//
// # Usage
//
//	var cookies cookie.Config
//	if err := config.Load(&cookies); err != nil {
//	    log.Fatal(err)
//	}
//
//	settings := session.DefaultSettings()
//	if err := config.LoadYAML("settings.yaml", &settings); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// ErrParsingConfig, ErrConfigNotLoaded, ErrNilPointer, ErrLoadingEnvFile,
// ErrReadingConfigFile and ErrParsingConfigFile can be matched with errors.Is.
package config
