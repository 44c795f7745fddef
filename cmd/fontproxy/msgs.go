package fontproxy

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Redirect, replace and install system fonts"
	MsgRedirectShort   = "Redirect requests for one face to another"
	MsgReplaceShort    = "Back an installed face with a different font file"
	MsgInstallShort    = "Install font files from outside the font directory"
	MsgStatusShort     = "Show whether a face is redirected, replaced or original"
	MsgSearchShort     = "Find the installed face matching a name or file"
	MsgResolveShort    = "Show how a font reference is classified and converted"
	MsgFamiliesShort   = "List installed font families"
	MsgTablesShort     = "Show the substitution and installed-font tables"
	MsgExportShort     = "Export the tables as a Windows .reg file"
	MsgConfigShort     = "Print the effective configuration"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Long descriptions
	MsgRedirectLong = `Redirect writes ORIGINAL -> TARGET into the substitution table, so the
system answers requests for ORIGINAL with TARGET. Both may be given in any
reference form and are resolved to face names first.

With --disable the redirection of ORIGINAL is removed; removing one that does
not exist is not an error.`
	MsgReplaceLong = `Replace points the installed face ORIGINAL at the font named by NEW.

NEW may be a face name, a file name already present in the font directory,
or a path. A path outside the font directory is copied in with "_force"
appended to its name; an existing copy is never overwritten.`
	MsgInstallLong = `Install copies each font file into the font directory and registers the
family it declares. Files whose name already exists in the font directory,
and arguments that are not paths outside it, are skipped.`
	MsgStatusLong = `Status reports Redirected, Replaced, Original or Unknown for each
reference. Paths and file names are read to find the face they declare.

With --search the first installed face containing the name decides instead
of an exact match.`
	MsgResolveLong = `Resolve classifies REFERENCE as a face name, font file name, installed
path or uninstalled path, and shows what it converts to in every other
form. With --to only that conversion is printed.`

	// Examples
	MsgRedirectExample = `  fontproxy redirect "MS Sans Serif" Tahoma
  fontproxy redirect "MS Sans Serif" Tahoma --disable`
	MsgReplaceExample = `  fontproxy replace Arial 'D:\fonts\Inter.ttf'
  fontproxy replace "Courier New" consola.ttf`
	MsgInstallExample = `  fontproxy install ~/Downloads/Inter.ttf ~/Downloads/Inter-Bold.ttf`
	MsgStatusExample  = `  fontproxy status Arial
  fontproxy status --search cour`

	// Result messages
	MsgInstalledFormat = "Installed %d of %d font(s)"
	MsgExportedFormat  = "Exported tables to %s"
	MsgVersionFormat   = "fontproxy version %s\n  commit: %s\n  built:  %s\n"
	MsgSearchTitle     = "Match for %q"
	MsgFamiliesTitle   = "Families (%s%s)"
	MsgMonospaced      = ", monospaced"

	// Error messages
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrOpenStore    = "failed to open %s store: %w"
	MsgErrFormat       = "invalid output format: %w"
	MsgErrKind         = "invalid --to value: %w"
	MsgErrCharset      = "invalid --charset value: %w"
	MsgErrCreateExport = "failed to create %s: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/fontproxy/config.toml)"
	MsgFlagStore    = "Table backend: file, memory or registry"
	MsgFlagFontDir  = "System font directory"
	MsgFlagNoReboot = "Do not restart after a change"
	MsgFlagFormat   = "Output format: auto, term, text, json or yaml"
	MsgFlagDisable  = "Remove the redirection instead of adding it"
	MsgFlagSearch   = "Match installed faces by substring"
	MsgFlagTo       = "Only print the conversion to this kind"
	MsgFlagCharset  = "Only list families covering this character set"
	MsgFlagMono     = "Only list fixed-pitch families"
	MsgFlagOut      = "Write to this file instead of standard output"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
