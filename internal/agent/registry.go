package agent

import (
	"fmt"
	"sort"
	"sync"
)

// Factory is a function that creates a new agent instance.
type Factory func() Agent

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an agent factory under the given name. Typically called from
// an init() function. Panics if the name is already taken.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("agent: %q already registered", name))
	}
	factories[name] = f
}

// List returns the names of all registered agents, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a registered agent by name.
func Create(name string) (Agent, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("agent: unknown agent %q", name)
	}
	return f(), nil
}

// Exists checks whether an agent with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
