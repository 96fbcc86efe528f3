package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/backend"
	"github.com/gogpu/gfx/config"
	"github.com/gogpu/gfx/engine"
)

// loadConfig reads the --config file, or the defaults, and applies the
// command flags on top.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Defaults()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if names := ctx.StringSlice("backend"); len(names) > 0 {
		cfg.Backends = names
	}
	if ws := ctx.String("window"); ws != "" {
		cfg.Window.System = ws
	}
	if ctx.IsSet("frames") {
		cfg.MaxFrames = ctx.Uint64("frames")
	}
	if ctx.Bool("device") {
		cfg.GPU.RequestDevice = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	setupLogging(ctx, cfg)
	return cfg, nil
}

// Run selects a backend and runs frames.
func Run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	ws, err := openWindowSystem(cfg.Window.System)
	if err != nil {
		return err
	}

	eng := engine.New(ws, cfg.Engine(), cfg.InstanceOptions()...)
	defer eng.Close()
	if err := eng.Start(); err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = eng.Run(sigCtx, nil)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Printf("%s: %d frames\n", eng.Backend().Name(), eng.Frames())
	return nil
}

// ListBackends prints the registered backends.
func ListBackends(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	writeBackends(os.Stdout, backend.Available(), backend.Priority(runtime.GOOS), cfg.Backends)
	return nil
}

func writeBackends(out io.Writer, names, priority, preferred []string) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Backend", "API", "Priority", "Preferred"})
	for _, name := range names {
		api := "-"
		if a, err := gfx.ParseAPI(name); err == nil {
			api = a.String()
		}
		table.Append([]string{name, api, rank(priority, name), rank(preferred, name)})
	}
	table.Render()
}

func rank(list []string, name string) string {
	if n := slices.Index(list, name); n >= 0 {
		return strconv.Itoa(n + 1)
	}
	return "-"
}

// probeResult is the outcome of one Init/Shutdown cycle.
type probeResult struct {
	name   string
	api    gfx.API
	window string
	err    error
}

// Probe initializes and shuts down each backend in turn.
func Probe(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	ws, err := openWindowSystem(cfg.Window.System)
	if err != nil {
		return err
	}
	defer ws.Close()

	names := cfg.Backends
	if len(names) == 0 {
		names = backend.Available()
	}
	inst := gfx.NewInstance(ws, cfg.InstanceOptions()...)
	results := probe(inst, names, cfg.Engine().Backend)
	writeProbe(os.Stdout, results)
	return nil
}

func probe(inst *gfx.Instance, names []string, bcfg backend.Config) []probeResult {
	results := make([]probeResult, 0, len(names))
	for _, name := range names {
		r := probeResult{name: name}
		b, err := backend.Get(name, bcfg)
		if err != nil {
			r.err = err
			results = append(results, r)
			continue
		}
		r.api = b.API()
		if r.err = b.Init(inst); r.err == nil {
			r.window = inst.WindowRect().String()
			b.Shutdown(inst)
		}
		results = append(results, r)
	}
	return results
}

func writeProbe(out io.Writer, results []probeResult) {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Backend", "API", "Result", "Window", "Error"})
	ok := 0
	for _, r := range results {
		status, msg := "ok", ""
		if r.err != nil {
			status, msg = "failed", r.err.Error()
		} else {
			ok++
		}
		table.Append([]string{r.name, r.api.String(), status, r.window, msg})
	}
	table.SetFooter([]string{"", "", "", "WORKING", fmt.Sprintf("%d/%d", ok, len(results))})
	table.Render()
}
