// Package config defines the application configuration and its loader.
// Values come from defaults, an optional config file and environment
// variables, in increasing order of precedence.
package config
