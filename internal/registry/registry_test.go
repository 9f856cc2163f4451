package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-shmup/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (s *stubGame) ID() string                    { return s.id }
func (s *stubGame) Title() string                 { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)      { s.state = core.GameState{Wave: 1} }
func (s *stubGame) Render(*core.Screen)           {}
func (s *stubGame) State() core.GameState         { return s.state }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.state.Score++
	return core.StepResult{State: s.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists() should report a registered mode")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	// Each call yields a fresh instance
	g.Step(core.NewInputFrame())
	g2, _ := Create("stub_a")
	if g2.State().Score != 0 {
		t.Error("Create() should return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_mode")
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create() error = %v, expected ErrUnknownMode", err)
	}
	if Exists("no_such_mode") {
		t.Error("Exists() should be false for an unknown mode")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub_m" {
			found = true
			if info.Title != "Stub stub_m" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_m")
			}
		}
	}
	if !found {
		t.Error("List() missing stub_m")
	}
}
