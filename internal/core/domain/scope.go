package domain

import "sort"

// AllChannelsMarker in a scope makes a handler reachable from every channel.
const AllChannelsMarker = "*"

// ChannelScope is the set of channel names a handler serves.
type ChannelScope map[string]struct{}

// AllChannels returns a scope holding only the all channels marker.
func AllChannels() ChannelScope {
	return ChannelScope{AllChannelsMarker: {}}
}

func NewChannelScope(names ...string) ChannelScope {
	s := make(ChannelScope, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// IsAll reports whether the marker is present. Literal channel names are ignored when it is.
func (s ChannelScope) IsAll() bool {
	_, ok := s[AllChannelsMarker]
	return ok
}

// Channels returns the literal channel names in ascending order.
func (s ChannelScope) Channels() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		if name == AllChannelsMarker {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
