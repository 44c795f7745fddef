// Package paths provides centralized path handling for fontproxy.
// It follows the XDG Base Directory specification for the tool's own files
// (configuration, table file, log file) and knows where the operating system
// keeps its installed fonts.
package paths
