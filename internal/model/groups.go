package model

import "iter"

// GroupMap maps group keys (raw tag strings, or DefaultGroup) to command
// groups, preserving first-seen insertion order.
type GroupMap struct {
	keys   []string
	groups map[string]*CommandGroup
}

func NewGroupMap() *GroupMap {
	return &GroupMap{groups: make(map[string]*CommandGroup)}
}

// Get returns the group for key, or nil if the key is unknown.
func (m *GroupMap) Get(key string) *CommandGroup {
	return m.groups[key]
}

// Set stores group under key. First insertion fixes the key's position.
func (m *GroupMap) Set(key string, group *CommandGroup) {
	if _, ok := m.groups[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.groups[key] = group
}

func (m *GroupMap) Len() int { return len(m.keys) }

// Keys returns the group keys in insertion order.
func (m *GroupMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// FromOldest iterates key/group pairs in insertion order.
func (m *GroupMap) FromOldest() iter.Seq2[string, *CommandGroup] {
	return func(yield func(string, *CommandGroup) bool) {
		for _, key := range m.keys {
			if !yield(key, m.groups[key]) {
				return
			}
		}
	}
}

// Groups returns the command groups in insertion order.
func (m *GroupMap) Groups() []*CommandGroup {
	groups := make([]*CommandGroup, 0, len(m.keys))
	for _, key := range m.keys {
		groups = append(groups, m.groups[key])
	}
	return groups
}

// Operations returns the total operation count across all groups.
func (m *GroupMap) Operations() int {
	var n int
	for _, key := range m.keys {
		n += len(m.groups[key].Operations)
	}
	return n
}
