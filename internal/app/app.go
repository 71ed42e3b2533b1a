// Package app is the bubbletea root model for the interactive script picker.
package app

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nrun-sh/nrun/internal/envfile"
	"github.com/nrun-sh/nrun/internal/frecency"
	"github.com/nrun-sh/nrun/internal/pm"
	"github.com/nrun-sh/nrun/internal/rank"
	"github.com/nrun-sh/nrun/internal/store"
	"github.com/nrun-sh/nrun/internal/ui"
	"github.com/nrun-sh/nrun/internal/ui/modal"
	"github.com/nrun-sh/nrun/internal/ui/panes"
	"github.com/nrun-sh/nrun/internal/workspace"
)

// Tab identifies the active top-level tab.
type Tab int

const (
	TabScripts Tab = iota
	TabPackages
)

// RunRequest is the selection the TUI hands back for execution after it
// exits.
type RunRequest struct {
	Key       string
	Script    string
	Dir       string
	Manager   pm.PackageManager
	EnvFiles  []string // paths in merge order
	ExtraArgs []string
}

// Options carries everything the session needs, loaded by main.
type Options struct {
	RootItems    []rank.Item
	Packages     []workspace.Package
	RootDir      string // execution dir for root scripts
	MonorepoRoot string // empty outside monorepos
	Manager      pm.PackageManager

	Favorites   map[string]bool
	Recents     *frecency.Store
	Configs     store.ScriptConfigs
	ArgsHistory *store.ArgsHistory
	GlobalEnv   *store.GlobalEnv
}

// wizardState tracks the in-flight configure flow for one script.
type wizardState struct {
	item     rank.Item
	dir      string
	files    envfile.List
	selected []envfile.File
	args     string
}

// Model is the root bubbletea model for the application.
type Model struct {
	opts Options

	tab         Tab
	insidePkg   *workspace.Package
	query       string
	pkgQuery    string
	scriptsPane panes.ScriptsModel
	pkgsPane    panes.PackagesModel

	modalStack *modal.Stack
	wizard     *wizardState

	statusMsg string

	// PendingRun is set right before tea.Quit when the user chose a script.
	PendingRun *RunRequest

	width  int
	height int
	keys   KeyMap
}

// New creates a new application model.
func New(opts Options) Model {
	m := Model{
		opts:        opts,
		scriptsPane: panes.NewScriptsModel("Scripts"),
		pkgsPane:    panes.NewPackagesModel(opts.Packages),
		modalStack:  modal.NewStack(),
		keys:        DefaultKeyMap(),
	}
	m.scriptsPane.SetFocused(true)
	m.refresh()
	m.refreshPackages()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Resizes apply even while a modal is open, or the overlay and the
	// panes behind it would keep the stale dimensions.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.modalStack.SetSize(size.Width, size.Height)
		m.scriptsPane.SetSize(size.Width, size.Height-2)
		m.pkgsPane.SetSize(size.Width, size.Height-2)
		return m, nil
	}

	if m.modalStack.HasActive() {
		cmd := m.modalStack.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case modal.EnvResultMsg:
		return m.handleEnvResult(msg)

	case modal.ArgsResultMsg:
		return m.handleArgsResult(msg)

	case modal.ConfirmResultMsg:
		return m.handleConfirmResult(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		return m.handleEscape()

	case key.Matches(msg, m.keys.Enter):
		return m.handleEnter()

	case key.Matches(msg, m.keys.Configure):
		return m.startWizard()

	case key.Matches(msg, m.keys.Up):
		if m.onPackagePicker() {
			m.pkgsPane.MoveUp()
		} else {
			m.scriptsPane.MoveUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.onPackagePicker() {
			m.pkgsPane.MoveDown()
		} else {
			m.scriptsPane.MoveDown()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		m.switchTab()
		return m, nil

	case key.Matches(msg, m.keys.Favorite):
		m.toggleFavorite()
		return m, nil

	case key.Matches(msg, m.keys.CopyCmd):
		m.copyCommand()
		return m, nil

	case key.Matches(msg, m.keys.Backspace):
		if m.onPackagePicker() {
			if m.pkgQuery != "" {
				m.pkgQuery = trimLastRune(m.pkgQuery)
				m.refreshPackages()
			}
		} else if m.query != "" {
			m.query = trimLastRune(m.query)
			m.refresh()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		if m.onPackagePicker() {
			m.pkgQuery += string(msg.Runes)
			m.refreshPackages()
		} else {
			m.query += string(msg.Runes)
			m.refresh()
		}
	}
	return m, nil
}

// trimLastRune drops the final rune, not the final byte; queries hold
// arbitrary UTF-8.
func trimLastRune(s string) string {
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}

// onPackagePicker reports whether the package list (not a script list) is
// showing.
func (m Model) onPackagePicker() bool {
	return m.tab == TabPackages && m.insidePkg == nil
}

func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	if m.onPackagePicker() && m.pkgQuery != "" {
		m.pkgQuery = ""
		m.refreshPackages()
		return m, nil
	}
	if m.query != "" {
		m.query = ""
		m.refresh()
		return m, nil
	}
	if m.insidePkg != nil {
		m.insidePkg = nil
		m.refresh()
		return m, nil
	}
	return m, tea.Quit
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.onPackagePicker() {
		if pkg := m.pkgsPane.Selected(); pkg != nil {
			m.insidePkg = pkg
			m.query = ""
			m.refresh()
		}
		return m, nil
	}

	entry := m.scriptsPane.Selected()
	if entry == nil {
		return m, nil
	}
	item, dir := m.lookupItem(entry.Key)
	return m.finishRun(item, dir, nil, "")
}

func (m Model) startWizard() (tea.Model, tea.Cmd) {
	if m.onPackagePicker() {
		return m, nil
	}
	entry := m.scriptsPane.Selected()
	if entry == nil {
		return m, nil
	}

	item, dir := m.lookupItem(entry.Key)
	m.wizard = &wizardState{
		item:  item,
		dir:   dir,
		files: envfile.Scan(dir, m.opts.MonorepoRoot),
	}
	if cfg, ok := m.opts.Configs[item.Key]; ok {
		m.wizard.args = cfg.Args
	}

	m.modalStack.Push(modal.NewEnvSelectModal(item.Name, m.wizard.files, m.opts.GlobalEnv.LastEnvFiles))
	return m, nil
}

func (m Model) handleEnvResult(msg modal.EnvResultMsg) (tea.Model, tea.Cmd) {
	if m.wizard == nil {
		return m, nil
	}
	if msg.Canceled {
		m.wizard = nil
		return m, nil
	}
	m.wizard.selected = msg.Selected
	m.modalStack.Push(modal.NewArgsInputModal(m.wizard.item.Name, m.wizard.args, m.opts.ArgsHistory.Entries))
	return m, nil
}

func (m Model) handleArgsResult(msg modal.ArgsResultMsg) (tea.Model, tea.Cmd) {
	if m.wizard == nil {
		return m, nil
	}
	if msg.Back {
		m.modalStack.Push(modal.NewEnvSelectModal(m.wizard.item.Name, m.wizard.files, envPaths(m.wizard.selected)))
		return m, nil
	}
	m.wizard.args = msg.Value

	names := make([]string, len(m.wizard.selected))
	for i, f := range m.wizard.selected {
		names[i] = f.DisplayName
	}
	command := m.commandLine(m.wizard.item, m.wizard.args)
	m.modalStack.Push(modal.NewConfirmModal(command, m.wizard.dir, names))
	return m, nil
}

func (m Model) handleConfirmResult(msg modal.ConfirmResultMsg) (tea.Model, tea.Cmd) {
	if m.wizard == nil {
		return m, nil
	}
	if msg.Back {
		m.modalStack.Push(modal.NewArgsInputModal(m.wizard.item.Name, m.wizard.args, m.opts.ArgsHistory.Entries))
		return m, nil
	}
	if !msg.Confirmed {
		m.wizard = nil
		return m, nil
	}

	w := m.wizard
	m.wizard = nil

	m.opts.Configs.Remember(w.item.Key, w.args, envPaths(w.selected))
	m.opts.ArgsHistory.Add(w.args)
	m.opts.GlobalEnv.LastEnvFiles = envPaths(w.selected)

	return m.finishRun(w.item, w.dir, envPaths(w.selected), w.args)
}

// finishRun records the execution and quits the TUI; main spawns the
// process once the terminal is restored.
func (m Model) finishRun(item rank.Item, dir string, envFiles []string, args string) (tea.Model, tea.Cmd) {
	m.opts.Recents.RecordExecution(item.Key)

	m.PendingRun = &RunRequest{
		Key:       item.Key,
		Script:    item.Name,
		Dir:       dir,
		Manager:   m.opts.Manager,
		EnvFiles:  envFiles,
		ExtraArgs: splitArgs(args),
	}
	return m, tea.Quit
}

func (m *Model) switchTab() {
	if len(m.opts.Packages) == 0 {
		return
	}
	if m.tab == TabScripts {
		m.tab = TabPackages
	} else {
		m.tab = TabScripts
	}
	m.insidePkg = nil
	m.query = ""
	m.pkgQuery = ""
	m.refresh()
	m.refreshPackages()
}

func (m *Model) toggleFavorite() {
	if m.onPackagePicker() {
		return
	}
	entry := m.scriptsPane.Selected()
	if entry == nil {
		return
	}
	store.ToggleFavorite(m.opts.Favorites, entry.Key)
	m.refresh()
}

func (m *Model) copyCommand() {
	entry := m.scriptsPane.Selected()
	if entry == nil {
		return
	}
	item, _ := m.lookupItem(entry.Key)
	command := m.commandLine(item, "")
	if err := clipboard.WriteAll(command); err != nil {
		m.statusMsg = "clipboard unavailable"
		return
	}
	m.statusMsg = "copied: " + command
}

// currentItems is the item set for the visible script list.
func (m Model) currentItems() []rank.Item {
	if m.tab == TabScripts {
		return m.opts.RootItems
	}
	if m.insidePkg == nil {
		return nil
	}
	return PackageItems(*m.insidePkg)
}

// lookupItem resolves a key back to its item and execution directory.
func (m Model) lookupItem(key string) (rank.Item, string) {
	dir := m.opts.RootDir
	if m.insidePkg != nil {
		root := m.opts.MonorepoRoot
		if root == "" {
			root = m.opts.RootDir
		}
		dir = filepath.Join(root, filepath.FromSlash(m.insidePkg.RelPath))
	}
	for _, it := range m.currentItems() {
		if it.Key == key {
			return it, dir
		}
	}
	return rank.Item{Key: key, Name: key}, dir
}

// refresh re-ranks the visible list and pushes it into the pane.
func (m *Model) refresh() {
	items := m.currentItems()
	order := rank.Rank(items, m.opts.Favorites, m.opts.Recents, m.query)

	lastRun := make(map[string]time.Time)
	for _, r := range m.opts.Recents.Records() {
		lastRun[r.Key] = time.UnixMilli(r.LastUsedAt)
	}

	entries := make([]panes.ScriptEntry, 0, len(order))
	for _, idx := range order {
		it := items[idx]
		entries = append(entries, panes.ScriptEntry{
			Key:       it.Key,
			Name:      it.Name,
			Command:   it.Command,
			Favorite:  m.opts.Favorites[it.Key],
			LastRunAt: lastRun[it.Key],
		})
	}
	m.scriptsPane.SetQuery(m.query)
	m.scriptsPane.SetEntries(entries)

	title := "Scripts"
	if m.insidePkg != nil {
		title = "Scripts: " + m.insidePkg.Name
	}
	m.scriptsPane.SetTitle(title)
}

// refreshPackages re-ranks the workspace package list against the package
// query, reusing the same ranking engine as the script lists.
func (m *Model) refreshPackages() {
	if len(m.opts.Packages) == 0 {
		return
	}

	items := make([]rank.Item, len(m.opts.Packages))
	for i, pkg := range m.opts.Packages {
		items[i] = rank.Item{Key: "pkg:" + pkg.RelPath, Name: pkg.Name}
	}
	order := rank.Rank(items, nil, m.opts.Recents, m.pkgQuery)

	visible := make([]workspace.Package, len(order))
	for i, idx := range order {
		visible[i] = m.opts.Packages[idx]
	}
	m.pkgsPane.SetQuery(m.pkgQuery)
	m.pkgsPane.SetPackages(visible)
}

// commandLine renders the full command for display and clipboard use.
func (m Model) commandLine(item rank.Item, args string) string {
	parts := append([]string{m.opts.Manager.CommandName()}, m.opts.Manager.RunArgs(item.Name)...)
	if args != "" {
		parts = append(parts, args)
	}
	return strings.Join(parts, " ")
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var header string
	if len(m.opts.Packages) > 0 {
		tabs := []string{"Scripts", "Packages"}
		rendered := make([]string, len(tabs))
		for i, name := range tabs {
			style := ui.TabInactiveStyle
			if Tab(i) == m.tab {
				style = ui.TabActiveStyle
			}
			rendered[i] = style.Render(name)
		}
		header = strings.Join(rendered, "  ") + "\n"
	}

	var body string
	if m.onPackagePicker() {
		body = m.pkgsPane.View()
	} else {
		body = m.scriptsPane.View()
	}

	help := ui.HelpStyle.Render("[enter] run  [tab] configure  [space] favorite  [ctrl+y] copy  [esc] back")
	if m.statusMsg != "" {
		help = ui.SubtitleStyle.Render(m.statusMsg)
	}

	main := lipgloss.JoinVertical(lipgloss.Left, header+body, help)
	if m.modalStack.HasActive() {
		return m.modalStack.Render(main)
	}
	return main
}

// PackageItems converts a workspace package's scripts into rank items with
// package-scoped keys.
func PackageItems(pkg workspace.Package) []rank.Item {
	items := make([]rank.Item, 0, len(pkg.Scripts))
	for name, command := range pkg.Scripts {
		items = append(items, rank.Item{
			Key:     pkg.Name + ":" + name,
			Name:    name,
			Command: command,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// RootItems converts root-level scripts into rank items.
func RootItems(scripts map[string]string) []rank.Item {
	items := make([]rank.Item, 0, len(scripts))
	for name, command := range scripts {
		items = append(items, rank.Item{
			Key:     "root:" + name,
			Name:    name,
			Command: command,
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func envPaths(files []envfile.File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}

// splitArgs breaks the extra-args string on whitespace. Quoting is not
// supported; the wizard documents args as space-separated.
func splitArgs(args string) []string {
	return strings.Fields(args)
}
