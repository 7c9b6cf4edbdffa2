package ecs

// StoreStats is a point-in-time summary of a store's contents.
type StoreStats struct {
	EntityCount int
	KindCount   int
	Tables      []TableStats
}

// TableStats describes one component table.
type TableStats struct {
	Kind    string
	Entries int
}

// CollectStats summarizes the store for diagnostics and debug tooling.
// Tables are listed in kind-name order.
func (s *Store) CollectStats() StoreStats {
	stats := StoreStats{
		EntityCount: s.EntityCount(),
		KindCount:   len(s.tables),
	}
	for _, kind := range s.Kinds() {
		table := s.tables[kind]
		stats.Tables = append(stats.Tables, TableStats{
			Kind:    s.registry.KindName(kind),
			Entries: table.Len(),
		})
	}
	return stats
}
