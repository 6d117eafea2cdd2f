// Command gghost-replay replays a scripted sequence of host events against
// a headless window and writes every presented frame as a PNG.
//
// Usage:
//
//	gghost-replay -script click.yaml -out frames/ [-config gghost.yaml]
//
// A script names the window and lists events:
//
//	window: {label: main, width: 320, height: 200, scale: 1}
//	events:
//	  - {type: cursor_moved, x: 40, y: 30}
//	  - {type: mouse, button: left, pressed: true}
//	  - {type: mouse, button: left, pressed: false}
//	  - {type: resized, width: 400, height: 240}
//	  - {type: text, text: "hi"}
//	  - {type: redraw}
//
// Redraws requested by the plugin are delivered after each event, the way
// a host loop would.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/gogpu/gpucontext"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gghost"
	"github.com/gogpu/gghost/host"
	"github.com/gogpu/gghost/internal/hosttest"
)

// Script is a replay file.
type Script struct {
	Window WindowSpec `yaml:"window"`
	Events []Step     `yaml:"events"`
}

// WindowSpec describes the headless window.
type WindowSpec struct {
	Label  string  `yaml:"label"`
	Width  uint32  `yaml:"width"`
	Height uint32  `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// Step is one scripted host event.
type Step struct {
	Type    string  `yaml:"type"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Button  string  `yaml:"button"`
	Pressed bool    `yaml:"pressed"`
	Width   uint32  `yaml:"width"`
	Height  uint32  `yaml:"height"`
	Factor  float64 `yaml:"factor"`
	Text    string  `yaml:"text"`
	Focused bool    `yaml:"focused"`
}

func main() {
	var (
		scriptPath = flag.String("script", "", "replay script (YAML)")
		configPath = flag.String("config", "", "gghost config file (YAML)")
		outDir     = flag.String("out", "frames", "directory for PNG frames")
	)
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*scriptPath, *configPath, *outDir); err != nil {
		log.Fatalf("gghost-replay: %v", err)
	}
}

func run(scriptPath, configPath, outDir string) error {
	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	cfg := gghost.DefaultConfig()
	if configPath != "" {
		if cfg, err = gghost.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if l := cfg.Logger(os.Stderr); l != nil {
		gghost.SetLogger(l)
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	// Frames are read back from the window, so only the software backend
	// makes sense here.
	opts = append(opts, gghost.WithBackend("software"))

	spec := script.Window
	win := hosttest.NewWindow(1, spec.Label, spec.Width, spec.Height, spec.Scale)
	loop := hosttest.NewLoop()
	p, err := gghost.New(hosttest.NewProvider(win), loop, opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	app := &counter{}
	if err := p.CreateWindow(spec.Label, app); err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	r := &replayer{plugin: p, loop: loop, win: win, outDir: outDir}
	for i, step := range script.Events {
		ev, err := step.event(win)
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if err := r.dispatch(ev); err != nil {
			return err
		}
	}
	log.Printf("replayed %d events, wrote %d frames to %s (count=%d)", len(script.Events), r.written, outDir, app.count)
	return nil
}

func loadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Window.Label == "" {
		s.Window.Label = "main"
	}
	if s.Window.Width == 0 || s.Window.Height == 0 {
		s.Window.Width, s.Window.Height = 320, 200
	}
	if s.Window.Scale == 0 {
		s.Window.Scale = 1
	}
	return &s, nil
}

var buttons = map[string]gpucontext.MouseButton{
	"left":   gpucontext.MouseButtonLeft,
	"right":  gpucontext.MouseButtonRight,
	"middle": gpucontext.MouseButtonMiddle,
}

func (s Step) event(w *hosttest.Window) (host.Event, error) {
	id := w.ID()
	switch s.Type {
	case "cursor_moved":
		return host.CursorMoved{ID: id, X: s.X, Y: s.Y}, nil
	case "cursor_left":
		return host.CursorLeft{ID: id}, nil
	case "mouse":
		b, ok := buttons[s.Button]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", s.Button)
		}
		return host.MouseInput{ID: id, Button: b, Pressed: s.Pressed}, nil
	case "wheel":
		return host.MouseWheel{ID: id, DeltaX: s.X, DeltaY: s.Y, Mode: gpucontext.ScrollDeltaLine}, nil
	case "resized":
		w.SetSize(s.Width, s.Height)
		return host.Resized{ID: id, Width: s.Width, Height: s.Height}, nil
	case "scale":
		w.SetScale(s.Factor)
		w.SetSize(s.Width, s.Height)
		return host.ScaleFactorChanged{ID: id, ScaleFactor: s.Factor, Width: s.Width, Height: s.Height}, nil
	case "text":
		return host.ReceivedText{ID: id, Text: s.Text}, nil
	case "focus":
		return host.Focused{ID: id, Focused: s.Focused}, nil
	case "redraw":
		return host.RedrawRequested{ID: id}, nil
	case "close":
		return host.CloseRequested{ID: id}, nil
	}
	return nil, fmt.Errorf("unknown event type %q", s.Type)
}

type replayer struct {
	plugin  *gghost.Plugin
	loop    *hosttest.Loop
	win     *hosttest.Window
	outDir  string
	written int
}

// dispatch delivers ev and every redraw it causes, then saves new frames.
func (r *replayer) dispatch(ev host.Event) error {
	r.plugin.HandleEvent(ev)
	// A widget that keeps requesting redraws would spin forever.
	for i := 0; i < 8; i++ {
		ids := r.loop.TakeRedraws()
		if len(ids) == 0 {
			break
		}
		seen := make(map[host.WindowID]bool)
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				r.plugin.HandleEvent(host.RedrawRequested{ID: id})
			}
		}
	}
	return r.save()
}

func (r *replayer) save() error {
	frames := r.win.Frames()
	for ; r.written < len(frames); r.written++ {
		path := filepath.Join(r.outDir, fmt.Sprintf("frame-%03d.png", r.written))
		if err := writePNG(path, frames[r.written]); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, f hosttest.Frame) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	return png.Encode(file, f.Image())
}
