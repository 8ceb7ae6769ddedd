// File: control/config_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aniketawati/pulseaudio-new-modules/control"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := control.Parse([]byte("table_capacity: 128\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.TableCapacity != 128 {
		t.Fatalf("TableCapacity = %d, want 128", cfg.TableCapacity)
	}
	def := control.Default()
	if cfg.FreeListBound != def.FreeListBound {
		t.Fatalf("FreeListBound = %d, want default %d", cfg.FreeListBound, def.FreeListBound)
	}
	if cfg.LogLevel != def.LogLevel {
		t.Fatalf("LogLevel = %q, want default %q", cfg.LogLevel, def.LogLevel)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := []string{
		"table_capacity: -1\n",
		"free_list_bound: -5\n",
		"log_level: loud\n",
		"table_capacity: {\n",
	}
	for _, doc := range cases {
		if _, err := control.Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) accepted invalid config", doc)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poller.yaml")
	doc := "table_capacity: 64\nfree_list_bound: 8\nforce_fallback_timer: true\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := control.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := control.Config{TableCapacity: 64, FreeListBound: 8, ForceFallbackTimer: true, LogLevel: "debug"}
	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestStoreNotifiesListeners(t *testing.T) {
	s := control.NewStore(control.Default())

	var got []control.Config
	s.OnReload(func(cfg control.Config) { got = append(got, cfg) })

	next := control.Default()
	next.TableCapacity = 256
	if err := s.Update(next); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(got) != 1 || got[0].TableCapacity != 256 {
		t.Fatalf("listener saw %+v, want one update with TableCapacity 256", got)
	}
	if s.Snapshot().TableCapacity != 256 {
		t.Fatalf("Snapshot() = %+v, want updated config", s.Snapshot())
	}
}

func TestStoreRejectsInvalidUpdate(t *testing.T) {
	s := control.NewStore(control.Default())
	bad := control.Default()
	bad.LogLevel = "nope"
	if err := s.Update(bad); err == nil {
		t.Fatal("Update() accepted invalid config")
	}
}
