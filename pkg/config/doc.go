// Package config loads fontproxy configuration.
//
// Values are layered, later layers overriding earlier ones:
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user config file, $XDG_CONFIG_HOME/fontproxy/config.toml unless
//     another file is given
//  3. FONTPROXY_* environment variables, FONTPROXY_REBOOT_ENABLED setting
//     reboot.enabled
//  4. explicit overrides, normally command line flags
package config
