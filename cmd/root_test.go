package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vicquana/majian-game-1/internal/config"
	"github.com/vicquana/majian-game-1/internal/tile"
)

// execute runs the root command in a temporary home
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(append([]string{"--lang", "en"}, args...))
	err := RootCmd.Execute()
	return buf.String(), err
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"Triplet and pair", []string{"1", "1", "1", "2", "2"}, "Win: triplet + pair", false},
		{"Wild pair", []string{"5,5,5,dragon,wild"}, "Win: triplet + wildcard pair", false},
		{"No win", []string{"1", "2", "3", "4", "5"}, "Not a winning hand.", false},
		{"Four tiles", []string{"1", "1", "1", "2"}, "", true},
		{"Too many copies", []string{"1", "1", "1", "1", "1"}, "", true},
		{"Unknown tile", []string{"1", "1", "1", "2", "x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"check"}, tt.args...)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestOddsCommand(t *testing.T) {
	out, err := execute(t, "odds", "3", "--hand", "1,1,3,5", "--discards", "3,3,9")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Target: 3 Circles", "Left: 1 / 4", "1/34"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "odds", "3", "--discards", "3,3,3,3,3"); err == nil {
		t.Error("five copies of one tile were accepted")
	}
}

func TestDeckCommands(t *testing.T) {
	out, err := execute(t, "deck", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[Red Dragon] x4") || !strings.Contains(out, "41 tiles") {
		t.Errorf("unexpected deck:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "names.toml")
	if _, err := execute(t, "deck", "init-names", path); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "deck", "init-names", path); err == nil {
		t.Error("init-names overwrote an existing pack")
	}

	out, err = execute(t, "validate", path)
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "is valid") {
		t.Errorf("unexpected validation output:\n%s", out)
	}
}

func TestSetNames(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(good, []byte("dragon = \"Zhong\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("dragon = \"\"\n[circles]\n10 = \"ten\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if out, err := execute(t, "deck", "set-names", bad); err == nil {
		t.Errorf("invalid pack accepted:\n%s", out)
	}

	if _, err := execute(t, "deck", "set-names", good); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NamesFile != good {
		t.Errorf("names file = %q, want %q", cfg.NamesFile, good)
	}
}

func TestParseFaces(t *testing.T) {
	faces, err := parseFaces([]string{"1,2", "dragon", " wild ,"})
	if err != nil {
		t.Fatal(err)
	}
	want := []tile.Face{tile.CircleFace(1), tile.CircleFace(2), tile.DragonFace, tile.WildFace}
	if len(faces) != len(want) {
		t.Fatalf("got %v, want %v", faces, want)
	}
	for i := range want {
		if faces[i] != want[i] {
			t.Errorf("face %d = %v, want %v", i, faces[i], want[i])
		}
	}
}
