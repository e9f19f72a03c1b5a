// Package locale provides the translation lookup for user-visible strings.
// Every string shown in the UI goes through T so a translated catalog can be
// swapped in without touching call sites. With no catalog installed, T is the
// identity function.
package locale

import "sync"

var (
	mu      sync.RWMutex
	catalog map[string]string
)

// SetCatalog installs a translation catalog mapping source strings to their
// translated form. Passing nil removes the catalog.
func SetCatalog(c map[string]string) {
	mu.Lock()
	defer mu.Unlock()
	catalog = c
}

// T returns the translation of msg from the active catalog, or msg itself
// when no translation exists.
func T(msg string) string {
	mu.RLock()
	defer mu.RUnlock()
	if catalog == nil {
		return msg
	}
	if translated, ok := catalog[msg]; ok && translated != "" {
		return translated
	}
	return msg
}
