// Package fields interns symbol names so namespace tables can key on small
// integers instead of strings.
package fields

import "sync"

type ID = int

// guarded because lookups of yet-unseen names can happen from concurrent
// evaluations sharing one registry
var mu sync.RWMutex
var registry = map[string]ID{}
var reverse []string

func Get(name string) ID {
	mu.RLock()
	index, exists := registry[name]
	mu.RUnlock()
	if exists {
		return index
	}

	mu.Lock()
	defer mu.Unlock()
	if index, exists = registry[name]; exists {
		return index
	}
	index = len(registry)
	registry[name] = index
	reverse = append(reverse, name)
	return index
}

// Name is the inverse of Get; it panics on ids that were never handed out
func Name(id ID) string {
	mu.RLock()
	defer mu.RUnlock()
	return reverse[id]
}
