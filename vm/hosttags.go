package vm

import (
	"reflect"
	"sync"
)

// Host type tags are interned globally, keyed by the Go type identity, so two
// instances binding the same host type agree on its tag. Everything else
// about a bound type (formatters, iteration) stays per instance.
var hostTags = struct {
	sync.RWMutex
	tags  map[reflect.Type]Tag
	names []string
}{tags: map[reflect.Type]Tag{}}

func tagOfType(rt reflect.Type) Tag {
	hostTags.RLock()
	tag, exists := hostTags.tags[rt]
	hostTags.RUnlock()
	if exists {
		return tag
	}

	hostTags.Lock()
	defer hostTags.Unlock()
	if tag, exists = hostTags.tags[rt]; exists {
		return tag
	}
	tag = firstHostTag + Tag(len(hostTags.names))
	hostTags.tags[rt] = tag
	hostTags.names = append(hostTags.names, rt.String())
	return tag
}

// setHostTagName overrides the display name of a host tag with the friendly
// name picked at bind time
func setHostTagName(tag Tag, name string) {
	hostTags.Lock()
	defer hostTags.Unlock()
	if i := int(tag - firstHostTag); i >= 0 && i < len(hostTags.names) {
		hostTags.names[i] = name
	}
}

func hostTagName(tag Tag) string {
	hostTags.RLock()
	defer hostTags.RUnlock()
	if i := int(tag - firstHostTag); i >= 0 && i < len(hostTags.names) {
		return hostTags.names[i]
	}
	return "<unknown>"
}
