// Package engine selects a graphics backend at startup and drives it.
//
// A Selector walks a preference list (by default backend.Priority for the
// running OS) and keeps the first backend whose Init succeeds. Engine
// builds on it with a frame loop:
//
//	eng := engine.New(headless.New(), engine.Config{MaxFrames: 60})
//	if err := eng.Start(); err != nil {
//		return err
//	}
//	defer eng.Close()
//	err := eng.Run(ctx, func(f engine.Frame) bool { return true })
//
// Backends are linked in by importing their packages.
package engine
