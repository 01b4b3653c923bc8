package clip

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Backend names accepted by New.
const (
	BackendAuto    = "auto"
	BackendNative  = "native"
	BackendCommand = "command"
	BackendOSC52   = "osc52"
)

// Names lists the concrete backends in the order they are reported.
var Names = []string{BackendNative, BackendCommand, BackendOSC52}

var constructors = map[string]func() (Backend, error){
	BackendNative:  newNative,
	BackendCommand: newCommand,
	BackendOSC52:   newOSC52,
}

// New returns the backend called name. "auto" (or "") tries the backends
// that suit the running platform and returns the first usable one.
func New(name string) (Backend, error) {
	if name == "" || name == BackendAuto {
		return auto(autoOrder(runtime.GOOS))
	}
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown clipboard backend %q (want auto, native, command or osc52)", name)
	}
	be, err := ctor()
	if err != nil {
		return nil, newError(KindUnavailable, name+" backend unavailable", err)
	}
	return be, nil
}

// autoOrder is the preference order for goos. Windows and macOS keep
// clipboard content after the writer exits, so their native API comes
// first. An X11 selection dies with its owner, so Linux prefers a utility
// that forks a long-lived owner.
func autoOrder(goos string) []string {
	switch goos {
	case "windows":
		return []string{BackendNative}
	case "darwin":
		return []string{BackendNative, BackendCommand}
	case "linux":
		return []string{BackendCommand, BackendNative, BackendOSC52}
	default:
		return []string{BackendCommand, BackendOSC52}
	}
}

func auto(order []string) (Backend, error) {
	var errs []error
	for _, name := range order {
		be, err := constructors[name]()
		if err != nil {
			slog.Debug("clipboard backend unusable", "backend", name, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		slog.Debug("clipboard backend selected", "backend", be.Name())
		return be, nil
	}
	return nil, newError(KindUnavailable, "no usable clipboard backend", errors.Join(errs...))
}

// Status is the probe result for one backend.
type Status struct {
	Name    string `json:"name"`
	Display string `json:"display,omitempty"`
	Auto    int    `json:"auto_rank,omitempty"` // 1-based position in the auto order; 0 = not tried
	Err     string `json:"error,omitempty"`
}

// Probe constructs every backend once and reports which are usable.
func Probe() []Status {
	rank := make(map[string]int)
	for i, name := range autoOrder(runtime.GOOS) {
		rank[name] = i + 1
	}
	out := make([]Status, 0, len(Names))
	for _, name := range Names {
		st := Status{Name: name, Auto: rank[name]}
		if be, err := constructors[name](); err != nil {
			st.Err = err.Error()
		} else {
			st.Display = be.Name()
		}
		out = append(out, st)
	}
	return out
}
