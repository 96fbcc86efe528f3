package main

import (
	"bytes"
	"flag"
	"slices"
	"strings"
	"testing"

	"github.com/urfave/cli"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/window/headless"
)

func TestProbe(t *testing.T) {
	ws := headless.New()
	inst := gfx.NewInstance(ws)

	results := probe(inst, []string{"software", "opengl", "glide"}, backend.Config{})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].err != nil {
		t.Errorf("software: %v", results[0].err)
	}
	// Headless windows cannot host a GL context.
	if results[1].err == nil {
		t.Error("opengl succeeded on a headless window")
	}
	if results[2].err == nil {
		t.Error("unregistered backend succeeded")
	}
	if inst.Active() || ws.Live() != 0 {
		t.Error("probe left a backend bound")
	}

	var buf bytes.Buffer
	writeProbe(&buf, results)
	out := buf.String()
	for _, want := range []string{"software", "failed", "1/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("probe table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteBackends(t *testing.T) {
	var buf bytes.Buffer
	writeBackends(&buf, []string{"metal", "software"}, []string{"metal", "software"}, []string{"software"})
	out := buf.String()
	for _, want := range []string{"Metal", "Software", "Preferred"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRank(t *testing.T) {
	list := []string{"vulkan", "opengl"}
	if got := rank(list, "opengl"); got != "2" {
		t.Errorf("rank(opengl) = %q, want 2", got)
	}
	if got := rank(list, "metal"); got != "-" {
		t.Errorf("rank(metal) = %q, want -", got)
	}
}

func TestOpenWindowSystem(t *testing.T) {
	ws, err := openWindowSystem(headless.Name)
	if err != nil {
		t.Fatalf("openWindowSystem() error = %v", err)
	}
	if ws.Name() != headless.Name {
		t.Errorf("Name() = %q", ws.Name())
	}
	if _, err := openWindowSystem("wayland"); err == nil {
		t.Error("unknown window system opened")
	}
}

func TestLoadConfigBackendFlagCase(t *testing.T) {
	defer gfx.SetLogger(nil)

	set := flag.NewFlagSet("run", flag.ContinueOnError)
	set.Var(&cli.StringSlice{"Vulkan", "Software"}, "backend", "")
	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := loadConfig(ctx)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if want := []string{"vulkan", "software"}; !slices.Equal(cfg.Backends, want) {
		t.Errorf("Backends = %v, want %v", cfg.Backends, want)
	}
	for _, name := range cfg.Backends {
		if !backend.IsRegistered(name) {
			t.Errorf("backend %q not registered", name)
		}
	}
}
