// Package registry provides a static registry of runnable demo programs:
// an explicit mapping from a stable identifier to a factory, built at
// startup from each program's init() function. The platform discovers and
// instantiates programs through it without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Program is implemented by every registered demo program. Programs carry
// their own engine API on the concrete type; the registry only deals in
// identity and metadata.
type Program interface {
	// ID returns a unique identifier for this program (e.g., "slider").
	// Used for CLI commands and menu selection.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary for the list command and menu.
	Description() string
}

// ProgramInfo contains metadata about a registered program.
type ProgramInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a program.
type Factory func() Program

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ProgramInfo)
	mu        sync.RWMutex
)

// Register adds a program factory to the registry.
// Typically called from a program's init() function.
// Panics if a program with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: program %q already registered", id))
	}

	factories[id] = f

	// Capture metadata from a temporary instance.
	p := f()
	infos[id] = ProgramInfo{ID: id, Title: p.Title(), Description: p.Description()}
}

// List returns information about all registered programs, sorted by ID.
func List() []ProgramInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ProgramInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new program by its ID.
// Returns an error if the program ID is not registered.
func Create(id string) (Program, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown program %q", id)
	}

	return f(), nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
