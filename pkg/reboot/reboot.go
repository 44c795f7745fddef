// Package reboot provides the capability fontproxy invokes after every
// successful state-changing operation. Font substitution and replacement
// only take effect once the operating system restarts.
package reboot

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/fontproxy/pkg/logging"
)

// Rebooter triggers a restart. Reboot is fire-and-forget: it never blocks on
// the restart and reports failures only through the log.
type Rebooter interface {
	Reboot()
}

// Func adapts a plain function to the Rebooter interface.
type Func func()

// Reboot calls f().
func (f Func) Reboot() { f() }

// Noop never restarts the machine. When Notice is set it logs that a restart
// is needed for the change to apply.
type Noop struct {
	Notice bool
}

func (n Noop) Reboot() {
	if n.Notice {
		logger := logging.GetLogger("reboot")
		logger.Warn().Msg("Restart the system for font changes to take effect")
	}
}

// Command starts an external command and does not wait for it.
type Command struct {
	Name string
	Args []string
}

func (c Command) Reboot() {
	logger := logging.GetLogger("reboot")
	cmd := exec.Command(c.Name, c.Args...)
	if err := cmd.Start(); err != nil {
		logger.Error().Err(err).Str("command", c.Name).Strs("args", c.Args).Msg("Failed to trigger reboot")
		return
	}
	logger.Info().Str("command", c.Name).Int("pid", cmd.Process.Pid).Msg("Reboot triggered")
	go func() { _ = cmd.Wait() }()
}

// DefaultCommand returns the platform reboot command, or nil where fontproxy
// does not restart the machine on its own.
func DefaultCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"shutdown", "/r", "/t", "0"}
	}
	return nil
}

// New builds the Rebooter for the given settings. A disabled trigger, or an
// enabled one without a command, only logs a notice.
func New(enabled bool, command []string) Rebooter {
	if !enabled {
		return Noop{}
	}
	if len(command) == 0 {
		command = DefaultCommand()
	}
	if len(command) == 0 {
		return Noop{Notice: true}
	}
	return Command{Name: command[0], Args: command[1:]}
}
