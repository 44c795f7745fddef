package fontproxy

import (
	"fmt"

	"github.com/arthur-debert/fontproxy/internal/version"
	"github.com/arthur-debert/fontproxy/pkg/config"
	"github.com/arthur-debert/fontproxy/pkg/enumerate"
	"github.com/arthur-debert/fontproxy/pkg/filesystem"
	"github.com/arthur-debert/fontproxy/pkg/logging"
	"github.com/arthur-debert/fontproxy/pkg/paths"
	"github.com/arthur-debert/fontproxy/pkg/reboot"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/arthur-debert/fontproxy/pkg/topics"
	"github.com/arthur-debert/fontproxy/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	store      string
	fontDir    string
	noReboot   bool
	format     string
}

// environment holds the collaborators commands are built from
type environment struct {
	fs         filesystem.FS
	enumerator enumerate.Enumerator
	rebooter   func(cfg *config.Config) reboot.Rebooter
}

func defaultEnvironment() environment {
	return environment{
		fs:         filesystem.NewOS(),
		enumerator: enumerate.NewSystem(),
		rebooter: func(cfg *config.Config) reboot.Rebooter {
			return reboot.New(cfg.Reboot.Enabled, cfg.Reboot.Command)
		},
	}
}

// cli builds the subcommands around one environment and flag set
type cli struct {
	env   environment
	flags *globalFlags
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultEnvironment())
}

func newRootCmd(env environment) *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:     "fontproxy",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: flags.verbosity,
				Console:   cmd.ErrOrStderr(),
				LogFile:   paths.LogFilePath(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.store, "store", "", MsgFlagStore)
	pf.StringVar(&flags.fontDir, "font-dir", "", MsgFlagFontDir)
	pf.BoolVar(&flags.noReboot, "no-reboot", false, MsgFlagNoReboot)
	pf.StringVar(&flags.format, "format", "", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion(ui.FormatNames()...))
	_ = rootCmd.RegisterFlagCompletionFunc("store", fixedCompletion(store.BackendMemory, store.BackendFile, store.BackendRegistry))

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "inspect", Title: "INSPECT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	c := &cli{env: env, flags: flags}
	rootCmd.AddCommand(c.newRedirectCmd())
	rootCmd.AddCommand(c.newReplaceCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newFamiliesCmd())
	rootCmd.AddCommand(c.newTablesCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if _, err := topics.Initialize(rootCmd, topics.Content(), opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
