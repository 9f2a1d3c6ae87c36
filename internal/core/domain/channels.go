package domain

import (
	"sort"
	"sync"
)

// ChannelDirectory maps channel identifiers to names and back. Both directions are safe for concurrent
// use, but they are updated independently and may briefly disagree.
type ChannelDirectory struct {
	names sync.Map
	ids   sync.Map
}

func NewChannelDirectory(known map[string]string) *ChannelDirectory {
	d := &ChannelDirectory{}
	for id, name := range known {
		d.Put(id, name)
	}

	return d
}

func (d *ChannelDirectory) Put(id, name string) {
	d.names.Store(id, name)
	d.ids.Store(name, id)
}

// Name returns the channel name for an identifier.
func (d *ChannelDirectory) Name(id string) (string, bool) {
	v, ok := d.names.Load(id)
	if !ok {
		return "", false
	}

	name, ok := v.(string)
	return name, ok
}

// ID returns the channel identifier for a name.
func (d *ChannelDirectory) ID(name string) (string, bool) {
	v, ok := d.ids.Load(name)
	if !ok {
		return "", false
	}

	id, ok := v.(string)
	return id, ok
}

// Names lists the known channel names in ascending order.
func (d *ChannelDirectory) Names() []string {
	var names []string
	d.names.Range(func(_, v any) bool {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
		return true
	})
	sort.Strings(names)

	return names
}
