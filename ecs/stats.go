package ecs

// StorageStats is a snapshot of storage occupancy, used by tooling.
type StorageStats struct {
	TotalEntityCount   int
	SlotCount          int
	FreeSlotCount      int
	ComponentKindCount int
	ComponentBreakdown []ComponentStats
	SingletonCount     int
	SingletonTypes     []string
}

// ComponentStats reports how many entities carry one component type.
type ComponentStats struct {
	Type        string
	EntityCount int
}

// CollectStats gathers a StorageStats snapshot.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: s.live,
		SlotCount:        len(s.slots),
		FreeSlotCount:    len(s.freeSlots),
		SingletonCount:   len(s.singletonOrder),
	}

	for _, storage := range s.storages {
		if storage == nil || storage.Len() == 0 {
			continue
		}
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			Type:        storage.Type().String(),
			EntityCount: storage.Len(),
		})
	}
	stats.ComponentKindCount = len(stats.ComponentBreakdown)

	for _, t := range s.singletonOrder {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}

	return stats
}
