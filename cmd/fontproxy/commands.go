package fontproxy

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/fontproxy/internal/version"
	"github.com/arthur-debert/fontproxy/pkg/enumerate"
	"github.com/arthur-debert/fontproxy/pkg/fontref"
	"github.com/arthur-debert/fontproxy/pkg/regfile"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/arthur-debert/fontproxy/pkg/ui/view"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (c *cli) newRedirectCmd() *cobra.Command {
	var disable bool
	cmd := &cobra.Command{
		Use:     "redirect ORIGINAL TARGET",
		Short:   MsgRedirectShort,
		Long:    MsgRedirectLong,
		Example: MsgRedirectExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			out, err := s.proxy.Redirect(args[0], args[1], !disable)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(out)
		},
	}
	cmd.Flags().BoolVar(&disable, "disable", false, MsgFlagDisable)
	return cmd
}

func (c *cli) newReplaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "replace ORIGINAL NEW",
		Short:   MsgReplaceShort,
		Long:    MsgReplaceLong,
		Example: MsgReplaceExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			out, err := s.proxy.Replace(args[0], args[1])
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(out)
		},
	}
}

func (c *cli) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "install PATH...",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			installed, err := s.proxy.InstallAll(args)
			if err != nil {
				return err
			}
			return s.renderer.RenderMessage(fmt.Sprintf(MsgInstalledFormat, installed, len(args)))
		},
	}
}

func (c *cli) newStatusCmd() *cobra.Command {
	var search bool
	cmd := &cobra.Command{
		Use:     "status REFERENCE...",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "inspect",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			for _, ref := range args {
				report, err := s.proxy.Report(ref, search)
				if err != nil {
					return err
				}
				if err := s.renderer.RenderResult(report); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&search, "search", "s", false, MsgFlagSearch)
	return cmd
}

func (c *cli) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search QUERY",
		Short:   MsgSearchShort,
		GroupID: "inspect",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			face, err := s.proxy.Resolver().SearchFont(args[0])
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(view.List{
				Title: fmt.Sprintf(MsgSearchTitle, args[0]),
				Items: []string{face},
			})
		},
	}
}

func (c *cli) newResolveCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:     "resolve REFERENCE",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		GroupID: "inspect",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			resolver := s.proxy.Resolver()
			if to == "" {
				return s.renderer.RenderResult(resolver.Inspect(args[0]))
			}

			kind, err := fontref.ParseKind(to)
			if err != nil {
				return fmt.Errorf(MsgErrKind, err)
			}
			value, err := resolver.Resolve(args[0], kind)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(value)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	kinds := make([]string, 0, len(fontref.Kinds))
	for _, k := range fontref.Kinds {
		kinds = append(kinds, k.String())
	}
	_ = cmd.RegisterFlagCompletionFunc("to", fixedCompletion(kinds...))
	return cmd
}

func (c *cli) newFamiliesCmd() *cobra.Command {
	var (
		charsetName string
		mono        bool
	)
	cmd := &cobra.Command{
		Use:     "families",
		Short:   MsgFamiliesShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			charset, err := enumerate.ParseCharset(charsetName)
			if err != nil {
				return fmt.Errorf(MsgErrCharset, err)
			}
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			families, err := s.proxy.FindFamilies(charset, mono)
			if err != nil {
				return err
			}
			suffix := ""
			if mono {
				suffix = MsgMonospaced
			}
			return s.renderer.RenderResult(view.List{
				Title: fmt.Sprintf(MsgFamiliesTitle, charset, suffix),
				Items: families,
			})
		},
	}
	cmd.Flags().StringVar(&charsetName, "charset", enumerate.Default.String(), MsgFlagCharset)
	cmd.Flags().BoolVar(&mono, "mono", false, MsgFlagMono)
	_ = cmd.RegisterFlagCompletionFunc("charset", fixedCompletion(enumerate.CharsetNames()...))
	return cmd
}

func (c *cli) newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tables",
		Short:   MsgTablesShort,
		GroupID: "inspect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			tables := make([]view.Table, 0, len(store.Namespaces))
			for _, ns := range store.Namespaces {
				entries, err := store.Snapshot(s.store.Table(ns))
				if err != nil {
					return err
				}
				tables = append(tables, view.Table{Name: string(ns), Entries: entries})
			}
			return s.renderer.RenderResult(tables)
		},
	}
}

func (c *cli) newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.open(cmd)
			if err != nil {
				return err
			}
			if out == "" {
				return regfile.Write(cmd.OutOrStdout(), s.store)
			}

			var buf bytes.Buffer
			if err := regfile.Write(&buf, s.store); err != nil {
				return err
			}
			if err := c.env.fs.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf(MsgErrCreateExport, out, err)
			}
			log.Info().Str("path", out).Msg("Tables exported")
			return s.renderer.RenderMessage(fmt.Sprintf(MsgExportedFormat, out))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", MsgFlagOut)
	return cmd
}

func (c *cli) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			text, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.SetOut(cmd.OutOrStdout())
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
