package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvFontDir overrides the system font directory
	EnvFontDir = "FONTPROXY_FONT_DIR"

	// EnvDataDir overrides the XDG data directory for fontproxy
	EnvDataDir = "FONTPROXY_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for fontproxy
	EnvConfigDir = "FONTPROXY_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for fontproxy
	EnvStateDir = "FONTPROXY_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// EnvWindir points at the Windows installation directory
	EnvWindir = "WINDIR"
)

// File and directory names
const (
	// AppDirName is the directory name for fontproxy-specific files
	AppDirName = "fontproxy"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// TablesFileName is the name of the file-backed table store
	TablesFileName = "tables.toml"

	// LogFileName is the name of the log file
	LogFileName = "fontproxy.log"
)

// DataDir returns the directory holding fontproxy's persisted tables
func DataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ConfigDir returns the directory holding the user configuration file
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFilePath returns the default location of the user configuration file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// TablesFilePath returns the default location of the file-backed table store
func TablesFilePath() string {
	return filepath.Join(DataDir(), TablesFileName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DefaultFontDir returns the directory the operating system installs fonts
// into, terminated by a path separator.
//
// On Windows this is %WINDIR%\Fonts. Elsewhere the first XDG font directory
// (the per-user one) is used so that no elevated permissions are needed.
func DefaultFontDir() string {
	if dir := os.Getenv(EnvFontDir); dir != "" {
		return WithTrailingSeparator(ExpandHome(dir))
	}
	if runtime.GOOS == "windows" {
		windir := os.Getenv(EnvWindir)
		if windir == "" {
			windir = `C:\Windows`
		}
		return WithTrailingSeparator(windir + `\Fonts`)
	}
	if len(xdg.FontDirs) > 0 {
		return WithTrailingSeparator(xdg.FontDirs[0])
	}
	return WithTrailingSeparator(filepath.Join(xdg.DataHome, "fonts"))
}

// WithTrailingSeparator appends a separator to dir unless it already ends
// with one. Directories written with backslashes get a backslash.
func WithTrailingSeparator(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, `\`) {
		return dir
	}
	if strings.Contains(dir, `\`) && !strings.Contains(dir, "/") {
		return dir + `\`
	}
	return dir + string(filepath.Separator)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
