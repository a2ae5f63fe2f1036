package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	registry   = make(map[string]Template)
	registryMu sync.RWMutex
)

// Register adds a template to the registry.
// Panics if the name is taken, if a required column is not one of the
// headers, or if an example row does not line up with the headers.
func Register(tpl Template) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if tpl.Name == "" {
		panic("template registered without a name")
	}
	if _, exists := registry[tpl.Name]; exists {
		panic(fmt.Sprintf("template already registered: %s", tpl.Name))
	}

	known := headerSet(tpl.Headers)
	for _, req := range tpl.Required {
		if !known[strings.ToLower(req)] {
			panic(fmt.Sprintf("template %s: required column %q is not a header", tpl.Name, req))
		}
	}
	for i, ex := range tpl.Example {
		if len(ex) != len(tpl.Headers) {
			panic(fmt.Sprintf("template %s: example row %d has %d values, want %d",
				tpl.Name, i+1, len(ex), len(tpl.Headers)))
		}
	}

	registry[tpl.Name] = tpl.clone()
}

// Get returns a template by name.
// Returns false if not found.
func Get(name string) (Template, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	tpl, ok := registry[name]
	if !ok {
		return Template{}, false
	}
	return tpl.clone(), true
}

// All returns every registered template sorted by name.
func All() []Template {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Template, 0, len(registry))
	for _, tpl := range registry {
		result = append(result, tpl.clone())
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Names returns all template names sorted alphabetically.
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

// TemplateCount returns the number of registered templates.
func TemplateCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// IsRequired reports whether column is required by the template.
func (t Template) IsRequired(column string) bool {
	for _, req := range t.Required {
		if strings.EqualFold(req, column) {
			return true
		}
	}
	return false
}

func (t Template) clone() Template {
	c := Template{
		Name:     t.Name,
		Headers:  append([]string(nil), t.Headers...),
		Required: append([]string(nil), t.Required...),
		Example:  make([][]string, len(t.Example)),
	}
	for i, ex := range t.Example {
		c.Example[i] = append([]string(nil), ex...)
	}
	return c
}

// headerSet returns the lower-cased set of headers.
func headerSet(headers []string) map[string]bool {
	set := make(map[string]bool, len(headers))
	for _, h := range headers {
		set[strings.ToLower(strings.TrimSpace(h))] = true
	}
	return set
}
