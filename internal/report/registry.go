package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/tmoller/salesreports/internal/dataset"
)

// Sources bundles the three input datasets every report draws from.
// Reports never share derived state; each Compute re-reads what it
// needs from these sources.
type Sources struct {
	Orders    dataset.Source
	Products  dataset.Source
	Customers dataset.Source
}

// Definition describes one report: its identity, output contract, and
// the computation producing its rows. Rows are already rendered as
// output fields; the writer only joins and terminates them.
type Definition struct {
	Key      string
	FileName string
	Header   []string
	Compute  func(Sources) ([][]string, error)
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

// Register adds a report definition to the registry.
// Panics if a report with the same key is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Key]; exists {
		panic(fmt.Sprintf("report already registered: %s", def.Key))
	}
	registry[def.Key] = def
}

// Get returns a report definition by key.
// Returns false if not found.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns every registered report definition, sorted by key for
// consistent listing.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// Count returns the number of registered reports.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
