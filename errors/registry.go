package errors

import (
	"fmt"
	"sync"
)

// classes is the process wide tree of registered classification names.
var classes = newClassRegistry()

type classEntry struct {
	name        string
	description string
	children    *classLevel
}

// classLevel stores the entries of a single tree level. The value of an entry is its position + 1.
type classLevel struct {
	entries []*classEntry
	names   map[string]struct{}
	limit   int
}

func newClassLevel(limit int) *classLevel {
	return &classLevel{names: map[string]struct{}{}, limit: limit}
}

func (l *classLevel) add(kind, name string, description []string) (uint16, error) {
	if _, exists := l.names[name]; exists {
		return 0, fmt.Errorf("%s: '%s' already registered", kind, name)
	}
	if len(l.entries) >= l.limit {
		return 0, fmt.Errorf("%s limit: %d reached", kind, l.limit)
	}
	e := &classEntry{name: name}
	if len(description) > 0 {
		e.description = description[0]
	}
	l.entries = append(l.entries, e)
	l.names[name] = struct{}{}
	return uint16(len(l.entries)), nil
}

func (l *classLevel) get(value uint16) *classEntry {
	if l == nil || value == 0 || int(value) > len(l.entries) {
		return nil
	}
	return l.entries[value-1]
}

func (l *classLevel) len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

type classRegistry struct {
	lock   sync.RWMutex
	majors *classLevel
}

func newClassRegistry() *classRegistry {
	return &classRegistry{majors: newClassLevel(maxMajorValue)}
}

// level returns the children of the entry found at 'path'. An empty path is the majors level.
// The caller must hold the lock.
func (r *classRegistry) level(path []uint16) (*classLevel, *classEntry) {
	current := r.majors
	var parent *classEntry
	for _, value := range path {
		parent = current.get(value)
		if parent == nil {
			return nil, nil
		}
		current = parent.children
	}
	return current, parent
}

func (r *classRegistry) entry(path ...uint16) (classEntry, bool) {
	if len(path) == 0 {
		return classEntry{}, false
	}
	r.lock.RLock()
	defer r.lock.RUnlock()

	_, e := r.level(path)
	if e == nil {
		return classEntry{}, false
	}
	return *e, true
}

func (r *classRegistry) count(path ...uint16) int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	l, _ := r.level(path)
	return l.len()
}

func (r *classRegistry) register(kind string, limit int, name string, description []string, parent ...uint16) (uint16, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	l, e := r.level(parent)
	if len(parent) > 0 {
		if e == nil {
			return 0, fmt.Errorf("%s: '%s' parent classification not registered", kind, name)
		}
		if l == nil {
			l = newClassLevel(limit)
			e.children = l
		}
	}
	return l.add(kind, name, description)
}

func (r *classRegistry) reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.majors = newClassLevel(maxMajorValue)
}
