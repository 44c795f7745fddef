package fontproxy

import (
	"fmt"

	"github.com/arthur-debert/fontproxy/pkg/config"
	"github.com/arthur-debert/fontproxy/pkg/fontname"
	"github.com/arthur-debert/fontproxy/pkg/proxy"
	"github.com/arthur-debert/fontproxy/pkg/store"
	"github.com/arthur-debert/fontproxy/pkg/ui"
	"github.com/spf13/cobra"
)

// session is everything a command needs once configuration is loaded
type session struct {
	cfg      *config.Config
	store    store.Store
	proxy    *proxy.Proxy
	renderer ui.Renderer
}

// overrides turns the global flags the user set into config keys
func (c *cli) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	changed := cmd.Flags().Changed
	if changed("store") {
		out["store.backend"] = c.flags.store
	}
	if changed("font-dir") {
		out["fonts.directory"] = c.flags.fontDir
	}
	if changed("no-reboot") && c.flags.noReboot {
		out["reboot.enabled"] = false
	}
	if changed("format") {
		out["output.format"] = c.flags.format
	}
	return out
}

func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		File:      c.flags.configFile,
		Overrides: c.overrides(cmd),
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func (c *cli) open(cmd *cobra.Command) (*session, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	st, err := store.Open(store.Options{
		Backend: cfg.Store.Backend,
		Path:    cfg.Store.Path,
		FS:      c.env.fs,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpenStore, cfg.Store.Backend, err)
	}

	p := proxy.New(proxy.Options{
		Layout:     cfg.Layout(),
		Store:      st,
		FS:         c.env.fs,
		Extractor:  fontname.NewSFNT(),
		Enumerator: c.env.enumerator,
		Rebooter:   c.env.rebooter(cfg),
	})

	return &session{cfg: cfg, store: st, proxy: p, renderer: renderer}, nil
}
