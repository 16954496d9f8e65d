// ABOUTME: Module registry for registering and retrieving seeding modules.
// ABOUTME: Modules register themselves in init() functions.

package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Module)
	mu       sync.RWMutex
)

// Register adds a module to the registry
func Register(m Module) {
	mu.Lock()
	defer mu.Unlock()

	name := m.Name()
	if name == All {
		panic(fmt.Sprintf("module name %q is reserved", name))
	}
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("module %q already registered", name))
	}
	registry[name] = m
}

// Get retrieves a module by name
func Get(name string) (Module, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := registry[name]
	return m, ok
}

// Modules returns all registered modules sorted by name
func Modules() []Module {
	mu.RLock()
	defer mu.RUnlock()

	mods := make([]Module, 0, len(registry))
	for _, m := range registry {
		mods = append(mods, m)
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].Name() < mods[j].Name() })
	return mods
}

// Names returns all registered module names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
