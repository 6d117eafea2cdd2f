// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func softwareFactory(Options) (Manager, error) { return NewSoftwareManager(), nil }

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, softwareFactory, nil)

	entry, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if entry.Name != "test" || entry.Priority != 50 {
		t.Errorf("entry = %s/%d, want test/50", entry.Name, entry.Priority)
	}
	if !entry.Available() {
		t.Error("backend should be available (nil Available func)")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryOrder tests priority ordering and availability filtering.
func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, softwareFactory, nil)
	r.Register("high", 100, softwareFactory, nil)
	r.Register("mid", 50, softwareFactory, nil)
	r.Register("off", 200, softwareFactory, func() bool { return false })

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"list", r.List(), []string{"off", "high", "mid", "low"}},
		{"available", r.Available(), []string{"high", "mid", "low"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
			for i := range tt.want {
				if tt.got[i] != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, tt.got[i], tt.want[i])
				}
			}
		})
	}
}

// TestRegistryFallsBack tests that a failing factory yields to the next
// backend.
func TestRegistryFallsBack(t *testing.T) {
	r := NewRegistry()
	var tried []string
	r.Register("gpu", 100, func(Options) (Manager, error) {
		tried = append(tried, "gpu")
		return nil, ErrNoPool
	}, nil)
	r.Register("cpu", 10, func(Options) (Manager, error) {
		tried = append(tried, "cpu")
		return NewSoftwareManager(), nil
	}, nil)

	m, err := r.NewManager(Options{})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, ok := m.(*SoftwareManager); !ok {
		t.Errorf("manager = %T, want *SoftwareManager", m)
	}
	if len(tried) != 2 || tried[0] != "gpu" {
		t.Errorf("tried = %v, want [gpu cpu]", tried)
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	r.Register("unavailable", 50, softwareFactory, func() bool { return false })

	_, err := r.NewManagerByName("nonexistent", Options{})
	var notFound *BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "nonexistent" {
		t.Errorf("err = %v, want BackendNotFoundError", err)
	}

	_, err = r.NewManagerByName("unavailable", Options{})
	var unavailable *BackendUnavailableError
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want BackendUnavailableError", err)
	}

	if _, err := NewRegistry().NewManager(Options{}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry err = %v, want ErrNoBackendAvailable", err)
	}
}

// TestGlobalRegistry tests the built-in backends.
func TestGlobalRegistry(t *testing.T) {
	list := List()
	if len(list) < 2 || list[0] != "wgpu" {
		t.Fatalf("List() = %v, want wgpu first", list)
	}
	if _, err := NewManager("wgpu", Options{}); !errors.Is(err, ErrNoPool) {
		t.Errorf("wgpu without pool err = %v, want ErrNoPool", err)
	}
	m, err := NewManager("software", Options{})
	if err != nil {
		t.Fatalf("NewManager(software): %v", err)
	}
	defer m.Close()
	if _, ok := m.(*SoftwareManager); !ok {
		t.Errorf("manager = %T, want *SoftwareManager", m)
	}
}

func TestBackendErrorMessages(t *testing.T) {
	if msg := (&BackendNotFoundError{Name: "vulkan"}).Error(); msg != "surface: backend not found: vulkan" {
		t.Errorf("message = %q", msg)
	}
	if msg := (&BackendUnavailableError{Name: "metal"}).Error(); msg != "surface: backend unavailable: metal" {
		t.Errorf("message = %q", msg)
	}
}
