package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `data:
  dir: "trips"
  default_file: "summer.csv"
search:
  top: 5
  default_length: "2 weeks"
  default_start: "2023-08-04"
  exclude: ["Alberich"]
logging:
  level: "debug"
  format: "console"
metrics:
  textfile: "out/tripwindow.prom"
output:
  presenters:
    - type: "text"
      conf:
        color: "never"
    - type: "json"
      conf:
        path: "out/result.json"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"data.dir", cfg.Data.Dir, "trips"},
		{"data.default_file", cfg.Data.DefaultPath(), filepath.Join("trips", "summer.csv")},
		{"search.top", cfg.Search.Top, 5},
		{"search.default_length", cfg.Search.Length().String(), "2 weeks"},
		{"search.default_start", cfg.Search.DefaultStart, "2023-08-04"},
		{"search.exclude", len(cfg.Search.Exclude) == 1 && cfg.Search.Exclude[0] == "Alberich", true},
		{"logging.level", cfg.Logging.Level, "debug"},
		{"logging.format", cfg.Logging.Format, "console"},
		{"metrics.textfile", cfg.Metrics.Textfile, "out/tripwindow.prom"},
		{"presenters", len(cfg.Output.Presenters), 2},
		{"presenter.type", cfg.Output.Presenters[1].Type, "json"},
		{"presenter.conf", cfg.Output.Presenters[1].Conf["path"], "out/result.json"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Data.DefaultPath() != filepath.Join("data", "vacations.csv") {
		t.Errorf("unexpected default data path %s", cfg.Data.DefaultPath())
	}
	if cfg.Search.Top != 3 || cfg.Search.DefaultLength != "6 days" {
		t.Errorf("unexpected search defaults %+v", cfg.Search)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if len(cfg.Output.Presenters) != 1 || cfg.Output.Presenters[0].Type != "text" {
		t.Errorf("unexpected presenters %+v", cfg.Output.Presenters)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if _, err := Load(DefaultPath); err != nil {
		t.Fatalf("missing default file should be ignored: %v", err)
	}
	if _, err := Load("other.yaml"); err == nil {
		t.Fatal("missing explicit file should fail")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TW_SEARCH__TOP", "7")
	t.Setenv("TW_SEARCH__DEFAULT_LENGTH", "3 days")
	t.Setenv("TW_DATA__DIR", "elsewhere")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Search.Top != 7 || cfg.Search.Length().Amount != 3 || cfg.Data.Dir != "elsewhere" {
		t.Fatalf("env overrides not applied: %+v %+v", cfg.Search, cfg.Data)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad length":   "search:\n  default_length: \"forever\"\n",
		"bad level":    "logging:\n  level: \"loud\"\n",
		"bad format":   "logging:\n  format: \"xml\"\n",
		"bad file":     "data:\n  default_file: \"trips.xlsx\"\n",
		"no presenter": "output:\n  presenters:\n    - conf: {}\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "config.toml")); err == nil {
		t.Error("expected unsupported format error")
	}
}
