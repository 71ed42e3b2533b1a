package exec

import (
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nrun-sh/nrun/internal/pm"
)

// installHints tells the user how to get a missing package manager.
var installHints = map[string]string{
	"npm":  "npm ships with Node.js: https://nodejs.org",
	"yarn": "install yarn with: npm install -g yarn",
	"pnpm": "install pnpm with: npm install -g pnpm",
	"bun":  "install bun with: curl -fsSL https://bun.sh/install | bash",
}

// RunScript launches the named script through the detected package manager
// and returns the child's exit code. Extra args are appended after the
// script name. A missing executable prints an install hint and returns 127.
func RunScript(executor CommandExecutor, manager pm.PackageManager, script, dir string, env map[string]string, extraArgs []string) int {
	args := manager.RunArgs(script)
	args = append(args, extraArgs...)

	inv := Invocation{
		Name: manager.CommandName(),
		Args: args,
		Dir:  dir,
		Env:  env,
	}
	log.Debug("running script", "cmd", inv.Name, "args", strings.Join(args, " "), "dir", dir)

	code, err := executor.Run(inv)
	if err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "%s: command not found\n", inv.Name)
			if hint, ok := installHints[inv.Name]; ok {
				fmt.Fprintln(os.Stderr, hint)
			}
			return 127
		}
		fmt.Fprintf(os.Stderr, "failed to run %s: %v\n", inv.Name, err)
		return 1
	}
	return code
}
