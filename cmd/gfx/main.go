// Command gfx selects a graphics backend, opens its window and runs
// frames until the window is closed.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/gogpu/gfx"
	_ "github.com/gogpu/gfx/backend/direct3d"
	_ "github.com/gogpu/gfx/backend/metal"
	_ "github.com/gogpu/gfx/backend/opengl"
	_ "github.com/gogpu/gfx/backend/software"
	_ "github.com/gogpu/gfx/backend/vulkan"
)

func init() {
	// Window systems must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	app := cli.NewApp()
	app.Name = "gfx"
	app.Usage = "select a graphics backend and drive it"
	app.Version = gfx.EngineVersion().String()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "run",
			Usage: "initialize the first working backend and run frames",
			Description: `
Try each backend of the preference list in order and keep the first one
that initializes. Frames run until the window is closed, the frame limit
is reached or the process is interrupted.`,
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "backend, b",
					Value: &cli.StringSlice{},
					Usage: "backend to try, repeat to set the preference order",
				},
				cli.StringFlag{
					Name:  "window, w",
					Usage: "window system: " + windowSystemNames(),
				},
				cli.Uint64Flag{
					Name:  "frames, n",
					Usage: "stop after this many frames (0 runs until closed)",
				},
				cli.BoolFlag{
					Name:  "device",
					Usage: "open a GPU device for GPU backends",
				},
			},
			Action: Run,
		},
		{
			Name:   "backends",
			Usage:  "list registered backends and their priority on this OS",
			Action: ListBackends,
		},
		{
			Name:  "probe",
			Usage: "initialize and shut down every backend, reporting the outcome",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "window, w",
					Usage: "window system: " + windowSystemNames(),
				},
				cli.BoolFlag{
					Name:  "device",
					Usage: "open a GPU device for GPU backends",
				},
			},
			Action: Probe,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gfx:", err)
		os.Exit(1)
	}
}
