package checker

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a plugin factory available under name, the way a host
// config refers to plugins. Registering the same name twice panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f == nil {
		panic("checker: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("checker: Register called twice for plugin %q", name))
	}
	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names returns the sorted names of all registered plugins.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Activate calls each named factory with version and chains the plugins that
// accepted it. Factories in bound take precedence over the registry; hosts use
// them for plugins configured with options. Declined plugins are returned
// separately.
func Activate(names []string, version string, bound map[string]Factory) (Chain, []string, error) {
	var chain Chain
	var declined []string
	for _, name := range names {
		f, ok := bound[name]
		if !ok {
			f, ok = Lookup(name)
		}
		if !ok {
			return nil, nil, fmt.Errorf("unknown plugin %q (registered: %v)", name, Names())
		}
		p := f(version)
		if p == nil {
			declined = append(declined, name)
			continue
		}
		chain = append(chain, p)
	}
	return chain, declined, nil
}
