// Package system reads the operating system's light/dark preference.
package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/muesli/termenv"
)

// Runner executes a command and returns its trimmed stdout.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Appearance detects the OS dark-mode preference.
type Appearance struct {
	goos        string
	run         Runner
	fallback    bool
	fallbackSet bool
	timeout     time.Duration
}

// Option configures an Appearance.
type Option func(*Appearance)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(a *Appearance) { a.run = r }
}

// WithGOOS overrides the detected platform.
func WithGOOS(goos string) Option {
	return func(a *Appearance) { a.goos = goos }
}

// WithFallback sets the answer used when the platform cannot be queried.
func WithFallback(dark bool) Option {
	return func(a *Appearance) {
		a.fallback = dark
		a.fallbackSet = true
	}
}

// New returns a detector. Unless WithFallback is given, the fallback is the
// terminal's background as reported by termenv. That query reads from the
// terminal, so New must run before a UI takes over input.
func New(opts ...Option) *Appearance {
	a := &Appearance{
		goos:    runtime.GOOS,
		run:     execRunner,
		timeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	if !a.fallbackSet {
		a.fallback = termenv.NewOutput(os.Stdout).HasDarkBackground()
	}
	return a
}

// IsDark reports whether the OS currently prefers a dark appearance.
func (a *Appearance) IsDark() bool {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	switch a.goos {
	case "darwin":
		out, err := a.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			// The key is absent in light mode.
			return false
		}
		return strings.EqualFold(out, "dark")
	case "linux", "freebsd", "openbsd":
		out, err := a.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return a.fallback
		}
		switch strings.Trim(out, "'\"") {
		case "prefer-dark":
			return true
		case "prefer-light", "default":
			return false
		}
		return a.fallback
	default:
		return a.fallback
	}
}
