package server

import (
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/samdwyer/fogcrawl/internal/game"
)

func TestParseInput(t *testing.T) {
	quit := game.Action{Kind: game.ActionQuit}

	tests := []struct {
		name  string
		input []byte
		want  []game.Action
	}{
		{"arrow up", []byte("\x1b[A"), []game.Action{game.Move(game.DirUp)}},
		{"arrow down", []byte("\x1b[B"), []game.Action{game.Move(game.DirDown)}},
		{"arrow right", []byte("\x1b[C"), []game.Action{game.Move(game.DirRight)}},
		{"arrow left", []byte("\x1b[D"), []game.Action{game.Move(game.DirLeft)}},
		{"wasd", []byte("wasd"), []game.Action{
			game.Move(game.DirUp), game.Move(game.DirLeft), game.Move(game.DirDown), game.Move(game.DirRight),
		}},
		{"commands", []byte("rlt"), []game.Action{
			{Kind: game.ActionRegenerate}, {Kind: game.ActionToggleMode}, {Kind: game.ActionTrace},
		}},
		{"quit key", []byte("q"), []game.Action{quit}},
		{"ctrl-c", []byte{3}, []game.Action{quit}},
		{"bare escape", []byte{0x1b}, []game.Action{quit}},
		{"unknown sequence", []byte("\x1b[Z"), nil},
		{"ignored keys", []byte("xyz"), nil},
		{"mixed", []byte("\x1b[Aw\x1b[Bq"), []game.Action{
			game.Move(game.DirUp), game.Move(game.DirUp), game.Move(game.DirDown), quit,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInput(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("action %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEnsureHostKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	block, _ := pem.Decode(first)
	if block == nil || block.Type != "PRIVATE KEY" {
		t.Fatalf("host key is not a PEM private key")
	}

	// An existing key is left alone.
	if err := EnsureHostKey(path); err != nil {
		t.Fatalf("EnsureHostKey() second call error = %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if string(first) != string(second) {
		t.Error("existing host key was overwritten")
	}
}

func TestSessionConfigSeeds(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 100
	s, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}

	a := s.sessionConfig()
	b := s.sessionConfig()
	if a.Seed != 101 || b.Seed != 102 {
		t.Errorf("seeds = %d, %d, want 101, 102", a.Seed, b.Seed)
	}

	cfg.Seed = 0
	s, err = NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error = %v", err)
	}
	if got := s.sessionConfig().Seed; got != 0 {
		t.Errorf("zero base seed should stay zero for a time seed, got %d", got)
	}
}
