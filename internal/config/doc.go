// Package config defines the application's configuration structures and
// loads them from environment variables and an optional config file.
// Values are validated before use, so the rest of the application can
// trust the Config it receives.
package config
