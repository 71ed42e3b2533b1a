package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nrun-sh/nrun/internal/envfile"
)

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
}

func TestStackDeliversResult(t *testing.T) {
	stack := NewStack()
	stack.Push(NewConfirmModal("npm run dev", "/proj", nil))
	if !stack.HasActive() {
		t.Fatal("stack should be active after push")
	}

	cmd := stack.Update(keyPress(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("finished modal should emit its result")
	}
	msg := cmd()
	result, ok := msg.(ConfirmResultMsg)
	if !ok {
		t.Fatalf("result = %T, want ConfirmResultMsg", msg)
	}
	if !result.Confirmed {
		t.Error("enter should confirm")
	}
	if stack.HasActive() {
		t.Error("finished modal should be popped")
	}
}

func TestStackUpdateEmpty(t *testing.T) {
	stack := NewStack()
	if cmd := stack.Update(keyPress(tea.KeyEnter)); cmd != nil {
		t.Error("empty stack should ignore messages")
	}
}

func envList() envfile.List {
	return envfile.List{
		PackageFiles: []envfile.File{
			{Path: "/p/web/.env.local", DisplayName: ".env.local"},
		},
		RootFiles: []envfile.File{
			{Path: "/p/.env", DisplayName: ".env (root)", FromRoot: true},
		},
	}
}

func TestEnvSelectToggleAndConfirm(t *testing.T) {
	m := NewEnvSelectModal("dev", envList(), nil)

	m.Update(spaceKey())            // check .env.local
	m.Update(keyPress(tea.KeyDown)) // move to root file
	m.Update(spaceKey())            // check .env (root)
	m.Update(keyPress(tea.KeyEnter))

	if !m.IsDone() {
		t.Fatal("enter should finish the picker")
	}
	result := m.Result().(EnvResultMsg)
	if result.Canceled {
		t.Fatal("unexpected cancel")
	}
	if len(result.Selected) != 2 {
		t.Fatalf("Selected = %v, want 2 files", result.Selected)
	}
	if !result.Selected[0].FromRoot || result.Selected[1].FromRoot {
		t.Error("selection should list root files first for merging")
	}
}

func TestEnvSelectPreselected(t *testing.T) {
	m := NewEnvSelectModal("dev", envList(), []string{"/p/.env"})
	m.Update(keyPress(tea.KeyEnter))

	result := m.Result().(EnvResultMsg)
	if len(result.Selected) != 1 || result.Selected[0].Path != "/p/.env" {
		t.Errorf("Selected = %v, want the preselected root file", result.Selected)
	}
}

func TestEnvSelectCancel(t *testing.T) {
	m := NewEnvSelectModal("dev", envList(), nil)
	m.Update(keyPress(tea.KeyEsc))

	result := m.Result().(EnvResultMsg)
	if !result.Canceled {
		t.Error("esc should cancel the wizard")
	}
}

func TestArgsInputConfirmTrims(t *testing.T) {
	m := NewArgsInputModal("test", "  --watch  ", nil)
	m.Update(keyPress(tea.KeyEnter))

	result := m.Result().(ArgsResultMsg)
	if result.Value != "--watch" {
		t.Errorf("Value = %q, want trimmed", result.Value)
	}
	if result.Back {
		t.Error("unexpected Back")
	}
}

func TestArgsInputHistoryNavigation(t *testing.T) {
	m := NewArgsInputModal("test", "draft", []string{"--coverage", "--watch"})

	m.Update(keyPress(tea.KeyUp))
	if got := m.input.Value(); got != "--coverage" {
		t.Errorf("after up, value = %q", got)
	}
	m.Update(keyPress(tea.KeyUp))
	if got := m.input.Value(); got != "--watch" {
		t.Errorf("after second up, value = %q", got)
	}
	m.Update(keyPress(tea.KeyUp)) // at oldest, stays
	if got := m.input.Value(); got != "--watch" {
		t.Errorf("history should stop at oldest, value = %q", got)
	}

	m.Update(keyPress(tea.KeyDown))
	m.Update(keyPress(tea.KeyDown))
	if got := m.input.Value(); got != "draft" {
		t.Errorf("down past newest should restore draft, value = %q", got)
	}
}

func TestArgsInputBack(t *testing.T) {
	m := NewArgsInputModal("test", "", nil)
	m.Update(keyPress(tea.KeyEsc))

	result := m.Result().(ArgsResultMsg)
	if !result.Back {
		t.Error("esc should go back")
	}
}

func TestConfirmBackAndCancel(t *testing.T) {
	m := NewConfirmModal("yarn dev", "/proj", nil)
	m.Update(keyPress(tea.KeyEsc))
	if result := m.Result().(ConfirmResultMsg); !result.Back || result.Confirmed {
		t.Errorf("esc result = %+v, want Back", result)
	}

	m2 := NewConfirmModal("yarn dev", "/proj", nil)
	m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if result := m2.Result().(ConfirmResultMsg); result.Confirmed || result.Back {
		t.Errorf("n result = %+v, want plain cancel", result)
	}
}
