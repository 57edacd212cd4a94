// Package config loads the mdvars configuration with Viper.
//
// Configuration is read from config.yaml in the current directory or in
// the XDG config directory (~/.config/mdvars by default), with environment
// overrides under the MDVARS_ prefix. Every field maps onto one engine
// option; missing files fall back to the engine defaults, and unusable
// delimiter tokens fall back inside the pattern compiler rather than
// failing the load.
package config
