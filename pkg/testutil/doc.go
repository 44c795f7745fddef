// Package testutil builds isolated font environments for fontproxy tests.
//
// Key components:
//   - TestEnvironment: a font directory, a filesystem and the two tables,
//     either fully in memory or on disk under a temporary directory
//   - Fonts: the Go font family bytes, whose family names are known
//   - Counter: a Rebooter that only counts how often it fired
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only to cover the file store
//     and the OS filesystem
//   - Seed state through the environment helpers so table and filesystem
//     contents stay consistent
package testutil
