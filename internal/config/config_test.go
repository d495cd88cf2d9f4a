package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/04pril/imsweeper/internal/minesweeper"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Source{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
	if cfg.Game() != minesweeper.Beginner {
		t.Errorf("Game() = %+v, want beginner", cfg.Game())
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
}

func TestLoad_Layering(t *testing.T) {
	envFile := writeFile(t, ".env", "MINESWEEPER_DIFFICULTY=expert\nMINESWEEPER_SCALE=3\nMINESWEEPER_THEME=dark\n")
	yamlFile := writeFile(t, "settings.yaml", "scale: 4\nsound: false\ncustom:\n  width: 30\n  height: 30\n  bombs: 200\n")

	cases := []struct {
		name string
		src  Source
		want func(Config) bool
	}{
		{
			name: "env file",
			src:  Source{EnvFile: envFile},
			want: func(c Config) bool { return c.Difficulty == "expert" && c.Scale == 3 && c.Dark() },
		},
		{
			name: "process env beats env file",
			src:  Source{EnvFile: envFile, Lookup: env(map[string]string{"MINESWEEPER_SCALE": "5"})},
			want: func(c Config) bool { return c.Scale == 5 && c.Difficulty == "expert" },
		},
		{
			name: "yaml beats env",
			src:  Source{EnvFile: envFile, Args: []string{"--config", yamlFile}},
			want: func(c Config) bool { return c.Scale == 4 && !c.Sound && c.Custom.Bombs == 200 && c.Difficulty == "expert" },
		},
		{
			name: "yaml path from env",
			src:  Source{Lookup: env(map[string]string{"MINESWEEPER_CONFIG": yamlFile})},
			want: func(c Config) bool { return c.Scale == 4 },
		},
		{
			name: "flags beat yaml",
			src:  Source{EnvFile: envFile, Args: []string{"-c", yamlFile, "--scale", "1", "-d", "custom", "--sound"}},
			want: func(c Config) bool { return c.Scale == 1 && c.Sound && c.Game().Level == minesweeper.LevelCustom },
		},
		{
			name: "unset flags keep earlier layers",
			src:  Source{EnvFile: envFile, Args: []string{"--seed", "42"}},
			want: func(c Config) bool { return c.Seed == 42 && c.Scale == 3 && c.Theme == "dark" },
		},
		{
			name: "missing env file is fine",
			src:  Source{EnvFile: filepath.Join(t.TempDir(), "nope.env")},
			want: func(c Config) bool { return c == Default() },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(tc.src)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !tc.want(cfg) {
				t.Errorf("Load() = %+v", cfg)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	badYAML := writeFile(t, "bad.yaml", "scael: 3\n")
	cases := []struct {
		name    string
		src     Source
		wantErr string
	}{
		{"unknown difficulty", Source{Args: []string{"-d", "nightmare"}}, "unknown difficulty"},
		{"scale too big", Source{Args: []string{"--scale", "9"}}, "scale 9"},
		{"custom too narrow", Source{Args: []string{"-d", "custom", "--width", "2"}}, "custom width 2"},
		{"custom too tall", Source{Args: []string{"-d", "custom", "--height", "41"}}, "custom height 41"},
		{"theme", Source{Args: []string{"--theme", "neon"}}, "unknown theme"},
		{"log level", Source{Args: []string{"--log-level", "loud"}}, "log level"},
		{"language", Source{Args: []string{"--language", "tlh"}}, "unknown language"},
		{"env number", Source{Lookup: env(map[string]string{"MINESWEEPER_SEED": "many"})}, "MINESWEEPER_SEED"},
		{"env bool", Source{Lookup: env(map[string]string{"MINESWEEPER_SOUND": "loud"})}, "MINESWEEPER_SOUND"},
		{"unknown yaml field", Source{Args: []string{"-c", badYAML}}, "parse config"},
		{"missing yaml", Source{Args: []string{"-c", filepath.Join(t.TempDir(), "none.yaml")}}, "open config"},
		{"stray argument", Source{Args: []string{"extra"}}, "unexpected argument"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.src)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_Help(t *testing.T) {
	var out strings.Builder
	_, err := Load(Source{Args: []string{"--help"}, Output: &out})
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("Load(--help) error = %v, want ErrHelp", err)
	}
	if !strings.Contains(out.String(), "--difficulty") {
		t.Errorf("usage does not list --difficulty:\n%s", out.String())
	}
}

func TestValidate_CustomIgnoredForPresets(t *testing.T) {
	cfg := Default()
	cfg.Custom = minesweeper.Values{Width: 1, Height: 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil while difficulty is a preset", err)
	}
}
