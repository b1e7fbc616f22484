package repaint

import (
	"slices"
)

// GroupState is the lifecycle state of a MaskGroup.
type GroupState uint8

const (
	// GroupUnused means the group's mask has not been painted yet.
	GroupUnused GroupState = iota

	// GroupUsed means the group has been claimed by a color request.
	// The state is terminal.
	GroupUsed
)

// String returns the state name.
func (s GroupState) String() string {
	switch s {
	case GroupUnused:
		return "unused"
	case GroupUsed:
		return "used"
	default:
		return "unknown"
	}
}

// MaskGroup is the set of surfaces that share byte-identical mask data.
// The mask is decoded and painted at most once per Render, whichever of the
// group's surfaces is requested first.
type MaskGroup struct {
	names   []string
	encoded string
	state   GroupState
}

// Names returns the surface names in the group, sorted.
func (g *MaskGroup) Names() []string {
	return slices.Clone(g.names)
}

// Encoded returns the group's encoded mask data.
func (g *MaskGroup) Encoded() string { return g.encoded }

// State returns the group's lifecycle state.
func (g *MaskGroup) State() GroupState { return g.state }

// Contains reports whether name belongs to the group.
func (g *MaskGroup) Contains(name string) bool {
	_, found := slices.BinarySearch(g.names, name)
	return found
}

// claim moves the group from GroupUnused to GroupUsed. It reports false if
// the group was already used.
func (g *MaskGroup) claim() bool {
	if g.state == GroupUsed {
		return false
	}
	g.state = GroupUsed
	return true
}

// MaskGroups is the deduplicated view of a surface-to-mask map.
//
// A MaskGroups value belongs to a single Render call and is not safe for
// concurrent use.
type MaskGroups struct {
	groups []*MaskGroup
	byName map[string]*MaskGroup
	names  []string
}

// GroupMasks deduplicates surfaceMasks by exact equality of the encoded mask
// data. Surfaces with no mask data are left out. Groups are ordered by their
// first surface name.
func GroupMasks(surfaceMasks map[string]string) *MaskGroups {
	gs := &MaskGroups{byName: make(map[string]*MaskGroup, len(surfaceMasks))}

	for name, encoded := range surfaceMasks {
		if encoded != "" {
			gs.names = append(gs.names, name)
		}
	}
	slices.Sort(gs.names)

	byMask := make(map[string]*MaskGroup)
	for _, name := range gs.names {
		encoded := surfaceMasks[name]
		g, ok := byMask[encoded]
		if !ok {
			g = &MaskGroup{encoded: encoded}
			byMask[encoded] = g
			gs.groups = append(gs.groups, g)
		}
		g.names = append(g.names, name)
		gs.byName[name] = g
	}
	return gs
}

// Lookup returns the group holding the surface name.
func (gs *MaskGroups) Lookup(name string) (*MaskGroup, bool) {
	g, ok := gs.byName[name]
	return g, ok
}

// Groups returns the groups in order.
func (gs *MaskGroups) Groups() []*MaskGroup {
	return slices.Clone(gs.groups)
}

// Len returns the number of distinct masks.
func (gs *MaskGroups) Len() int { return len(gs.groups) }

// Surfaces returns every grouped surface name, sorted.
func (gs *MaskGroups) Surfaces() []string {
	return slices.Clone(gs.names)
}

// NamingPrefix returns the prefix that marks color request parameters:
// the first seven characters of the first surface name, or
// DefaultSurfacePrefix when there are no surfaces.
func (gs *MaskGroups) NamingPrefix() string {
	if len(gs.names) == 0 {
		return DefaultSurfacePrefix
	}
	name := []rune(gs.names[0])
	if len(name) > namingPrefixLen {
		name = name[:namingPrefixLen]
	}
	return string(name)
}
