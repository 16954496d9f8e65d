// ABOUTME: Tests for module registry thread-safe operations and functionality.
// ABOUTME: Validates registration, retrieval, duplicate detection, and concurrent access.

package core

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// mockModule implements the Module interface for testing
type mockModule struct {
	name     string
	produces []string
	consumes []string
	clears   []string
}

func (m *mockModule) Name() string        { return m.name }
func (m *mockModule) Description() string { return "mock " + m.name }
func (m *mockModule) Produces() []string  { return m.produces }
func (m *mockModule) Consumes() []string  { return m.consumes }
func (m *mockModule) Clears() []string    { return m.clears }

func (m *mockModule) Seed(ctx context.Context, env Env) (Result, error) {
	return NewResult(), nil
}

// resetRegistry clears the registry for testing
func resetRegistry() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Module)
}

func TestRegister(t *testing.T) {
	resetRegistry()

	Register(&mockModule{name: "calls"})

	if len(registry) != 1 {
		t.Errorf("expected 1 module in registry, got %d", len(registry))
	}
	if _, exists := registry["calls"]; !exists {
		t.Error("module 'calls' not found in registry")
	}
}

func TestRegisterDuplicatePanic(t *testing.T) {
	resetRegistry()

	Register(&mockModule{name: "duplicate"})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, but didn't panic")
		}
	}()

	Register(&mockModule{name: "duplicate"})
}

func TestRegisterReservedNamePanics(t *testing.T) {
	resetRegistry()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when registering the reserved name")
		}
	}()

	Register(&mockModule{name: All})
}

func TestGet(t *testing.T) {
	resetRegistry()
	Register(&mockModule{name: "demo"})

	m, ok := Get("demo")
	if !ok {
		t.Fatal("expected to find 'demo', but it wasn't found")
	}
	if m.Name() != "demo" {
		t.Errorf("expected module name 'demo', got %q", m.Name())
	}

	if _, ok := Get("non-existent"); ok {
		t.Error("expected Get to return false for non-existent module")
	}
}

func TestModulesAndNamesSorted(t *testing.T) {
	resetRegistry()
	for _, name := range []string{"treatments", "calls", "hr"} {
		Register(&mockModule{name: name})
	}

	want := []string{"calls", "hr", "treatments"}
	names := Names()
	mods := Modules()
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
		if mods[i].Name() != name {
			t.Errorf("Modules()[%d] = %q, want %q", i, mods[i].Name(), name)
		}
	}
}

func TestThreadSafeConcurrentRegistration(t *testing.T) {
	resetRegistry()

	var wg sync.WaitGroup
	moduleCount := 100

	for i := 0; i < moduleCount; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			Register(&mockModule{name: fmt.Sprintf("module-%03d", index)})
		}(i)
	}
	wg.Wait()

	if len(Names()) != moduleCount {
		t.Errorf("expected %d modules after concurrent registration, got %d", moduleCount, len(Names()))
	}
}
