package matching

// SynonymTable answers "are these two normalized skill names configured as
// the same skill". The table is bidirectional and transitive within one
// group: every name in a group is a synonym of every other name.
type SynonymTable struct {
	group map[string]int
}

// NewSynonymTable builds the lookup from a canonical-name -> alternatives
// mapping, the shape the configuration file uses. Names are normalized on
// the way in.
func NewSynonymTable(groups map[string][]string) *SynonymTable {
	table := &SynonymTable{group: make(map[string]int)}

	id := 0
	for canonical, alternatives := range groups {
		members := append([]string{canonical}, alternatives...)

		// Reuse an existing group when any member is already known, so
		// overlapping config entries merge instead of shadowing each other.
		groupID := -1
		for _, member := range members {
			if existing, ok := table.group[normalize(member)]; ok {
				groupID = existing
				break
			}
		}
		if groupID == -1 {
			groupID = id
			id++
		}

		for _, member := range members {
			if name := normalize(member); name != "" {
				table.group[name] = groupID
			}
		}
	}

	return table
}

// Match reports whether the two normalized names belong to the same synonym
// group. Identical names are not considered synonyms; that is a direct match
// and scored separately.
func (t *SynonymTable) Match(a, b string) bool {
	if t == nil || a == b {
		return false
	}
	groupA, okA := t.group[a]
	groupB, okB := t.group[b]
	return okA && okB && groupA == groupB
}
