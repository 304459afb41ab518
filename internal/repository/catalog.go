package repository

import (
	"slices"
	"sync"
)

// StringList is an ordered catalog of unique labels (services, anomalies).
type StringList struct {
	name     string
	mu       sync.RWMutex
	items    []string
	observer Observer
}

func NewStringList(name string) *StringList {
	return &StringList{name: name}
}

func (l *StringList) Name() string { return l.name }

func (l *StringList) Observe(fn Observer) {
	l.mu.Lock()
	l.observer = fn
	l.mu.Unlock()
}

func (l *StringList) All() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneItems(l.items)
}

// Add appends s unless it is empty or already listed.
func (l *StringList) Add(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s == "" || slices.Contains(l.items, s) {
		return false
	}
	l.items = append(l.items, s)
	l.notify()
	return true
}

func (l *StringList) Delete(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.Index(l.items, s)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	l.notify()
	return true
}

// Replace swaps the contents and notifies the observer.
func (l *StringList) Replace(items []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = slices.Clone(items)
	l.notify()
}

// Load swaps the contents silently.
func (l *StringList) Load(items []string) {
	l.mu.Lock()
	l.items = slices.Clone(items)
	l.mu.Unlock()
}

func (l *StringList) notify() {
	if l.observer != nil {
		l.observer(l.name, cloneItems(l.items))
	}
}

// CategoryTemplates maps an asset category to a list of labels: checklist
// items or typical anomalies.
type CategoryTemplates struct {
	name     string
	mu       sync.RWMutex
	items    map[string][]string
	observer Observer
}

func NewCategoryTemplates(name string) *CategoryTemplates {
	return &CategoryTemplates{name: name, items: make(map[string][]string)}
}

func (c *CategoryTemplates) Name() string { return c.name }

func (c *CategoryTemplates) Observe(fn Observer) {
	c.mu.Lock()
	c.observer = fn
	c.mu.Unlock()
}

// Get returns the labels of one category.
func (c *CategoryTemplates) Get(category string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[category]
	return slices.Clone(v), ok
}

// All returns a copy of the whole mapping.
func (c *CategoryTemplates) All() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked()
}

// Set overwrites the labels of one category.
func (c *CategoryTemplates) Set(category string, labels []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[category] = slices.Clone(labels)
	c.notify()
}

func (c *CategoryTemplates) Replace(all map[string][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = copyTemplates(all)
	c.notify()
}

func (c *CategoryTemplates) Load(all map[string][]string) {
	c.mu.Lock()
	c.items = copyTemplates(all)
	c.mu.Unlock()
}

func (c *CategoryTemplates) notify() {
	if c.observer != nil {
		c.observer(c.name, c.copyLocked())
	}
}

func (c *CategoryTemplates) copyLocked() map[string][]string {
	return copyTemplates(c.items)
}

func copyTemplates(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}
