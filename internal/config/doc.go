// Package config defines the configuration for one provisioning run.
//
// A [Config] is assembled by the caller from, in increasing precedence,
// built-in defaults, environment variables ([LoadEnv]), an optional YAML
// file ([LoadFile]) and interactive answers. [Config.ApplyDefaults] fills
// anything still blank and [Config.Validate] rejects unusable input. The
// provisioning code only ever sees the finished struct; it never reads the
// environment itself.
package config
