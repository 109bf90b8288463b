package registry

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct {
	id  string
	cfg config.FlappyConfig
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) OnInit(*core.Screen, core.RuntimeConfig) bool { return true }
func (g *stubGame) OnFrame(*core.Screen, float64, core.InputFrame) bool { return true }
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(cfg config.FlappyConfig) Game {
		return &stubGame{id: id, cfg: cfg}
	}
}

func TestRegisterAndList(t *testing.T) {
	Register("zz_stub_b", stubFactory("zz_stub_b"))
	Register("zz_stub_a", stubFactory("zz_stub_a"))

	if !Exists("zz_stub_a") || !Exists("zz_stub_b") {
		t.Fatal("registered stubs should exist")
	}
	if Exists("missing") {
		t.Error("unregistered id should not exist")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "zz_stub_a" {
			found = true
			if info.Title != "Stub zz_stub_a" {
				t.Errorf("title = %q, expected %q", info.Title, "Stub zz_stub_a")
			}
		}
	}
	if !found {
		t.Error("List() should include zz_stub_a")
	}
}

func TestCreatePassesConfig(t *testing.T) {
	Register("zz_stub_cfg", stubFactory("zz_stub_cfg"))

	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 42

	g, err := Create("zz_stub_cfg", cfg)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if got := g.(*stubGame).cfg.Physics.Gravity; got != 42 {
		t.Errorf("factory received gravity %g, expected 42", got)
	}

	if _, err := Create("missing", cfg); err == nil {
		t.Error("Create() should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", stubFactory("zz_stub_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub_dup", stubFactory("zz_stub_dup"))
}
