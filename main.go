package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nrun-sh/nrun/internal/app"
	"github.com/nrun-sh/nrun/internal/config"
	"github.com/nrun-sh/nrun/internal/envfile"
	"github.com/nrun-sh/nrun/internal/exec"
	"github.com/nrun-sh/nrun/internal/manifest"
	"github.com/nrun-sh/nrun/internal/pm"
	"github.com/nrun-sh/nrun/internal/project"
	"github.com/nrun-sh/nrun/internal/store"
	"github.com/nrun-sh/nrun/internal/ui"
	"github.com/nrun-sh/nrun/internal/workspace"
)

const version = "0.2.0"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.BoolVar(showVersion, "V", false, "print version and exit")
	resetAll := flag.Bool("reset", false, "clear all saved state for this project")
	resetFavorites := flag.Bool("reset-favorites", false, "clear saved favorites for this project")
	resetRecents := flag.Bool("reset-recents", false, "clear execution history for this project")
	resetConfigs := flag.Bool("reset-configs", false, "clear saved script configs for this project")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("nrun " + version)
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
		os.Exit(1)
	}

	root, err := project.FindRoot(cwd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	projectID := project.ID(root.ConfigRoot())

	setupLogging()
	log.Debug("project discovered", "root", root.ConfigRoot(), "id", projectID)

	if *resetAll || *resetFavorites || *resetRecents || *resetConfigs {
		handleReset(projectID, *resetAll, *resetFavorites, *resetRecents, *resetConfigs)
		return
	}

	baseDir, err := store.BaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating config directory: %v\n", err)
		os.Exit(1)
	}
	ui.InitTheme(config.Load(baseDir).BuildTheme())

	pkg := manifest.Load(root.NearestPkg)
	var scripts map[string]string
	if pkg != nil {
		scripts = pkg.Scripts
	}

	var packages []workspace.Package
	if root.MonorepoRoot != "" {
		packages = workspace.Scan(root.MonorepoRoot)
	}

	if len(scripts) == 0 && len(packages) == 0 {
		fmt.Println("No scripts found in package.json.")
		fmt.Println("Add entries under \"scripts\" and run nrun again.")
		os.Exit(1)
	}

	projectDir, err := store.EnsureProjectDir(projectID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing state directory: %v\n", err)
		os.Exit(1)
	}

	opts := app.Options{
		RootItems:    app.RootItems(scripts),
		Packages:     packages,
		RootDir:      root.NearestPkg,
		MonorepoRoot: root.MonorepoRoot,
		Manager:      pm.Detect(root.ConfigRoot()),
		Favorites:    store.LoadFavorites(projectDir),
		Recents:      store.LoadRecents(projectDir),
		Configs:      store.LoadScriptConfigs(projectDir),
		ArgsHistory:  store.LoadArgsHistory(projectDir),
		GlobalEnv:    store.LoadGlobalEnv(projectDir),
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	m, ok := finalModel.(app.Model)
	if !ok {
		os.Exit(1)
	}

	saveState(projectDir, m, opts)

	if m.PendingRun == nil {
		return
	}
	run := m.PendingRun

	env := envfile.LoadAll(run.EnvFiles)
	code := exec.RunScript(exec.NewRealExecutor(), run.Manager, run.Script, run.Dir, env, run.ExtraArgs)
	os.Exit(code)
}

// saveState persists everything the session may have changed. Failures are
// logged, never fatal: the run itself matters more than the bookkeeping.
func saveState(projectDir string, m app.Model, opts app.Options) {
	if err := store.SaveFavorites(projectDir, opts.Favorites); err != nil {
		log.Warn("saving favorites failed", "err", err)
	}
	if err := store.SaveRecents(projectDir, opts.Recents); err != nil {
		log.Warn("saving recents failed", "err", err)
	}
	if m.PendingRun == nil {
		return
	}
	if err := store.SaveScriptConfigs(projectDir, opts.Configs); err != nil {
		log.Warn("saving script configs failed", "err", err)
	}
	if err := store.SaveArgsHistory(projectDir, opts.ArgsHistory); err != nil {
		log.Warn("saving args history failed", "err", err)
	}
	if err := store.SaveGlobalEnv(projectDir, opts.GlobalEnv); err != nil {
		log.Warn("saving env selection failed", "err", err)
	}
}

// setupLogging sends logs to a file in the config dir; stderr belongs to the
// TUI. NRUN_DEBUG=1 enables debug level.
func setupLogging() {
	log.SetLevel(log.WarnLevel)
	if os.Getenv("NRUN_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}

	baseDir, err := store.BaseDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(baseDir, "nrun.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	log.SetOutput(f)
}

func handleReset(projectID string, all, favorites, recents, configs bool) {
	dir, err := store.ProjectDir(projectID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating state directory: %v\n", err)
		os.Exit(1)
	}

	if all {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing state: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cleared all saved state for this project.")
		return
	}

	remove := func(name, what string) {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error clearing %s: %v\n", what, err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s for this project.\n", what)
	}
	if favorites {
		remove("favorites.json", "favorites")
	}
	if recents {
		remove("recents.json", "execution history")
	}
	if configs {
		remove("script_configs.json", "script configs")
		remove("args_history.json", "args history")
		remove("global_env.json", "env selection")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "nrun - interactive package.json script runner")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: nrun [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -V, --version        print version and exit")
	fmt.Fprintln(os.Stderr, "      --reset          clear all saved state for this project")
	fmt.Fprintln(os.Stderr, "      --reset-favorites  clear saved favorites")
	fmt.Fprintln(os.Stderr, "      --reset-recents    clear execution history")
	fmt.Fprintln(os.Stderr, "      --reset-configs    clear saved script configs")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys: type to search, enter to run, tab to configure,")
	fmt.Fprintln(os.Stderr, "space to favorite, ctrl+y to copy the command, esc to quit.")
}
