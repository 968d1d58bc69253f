package metrics

// MemberFlags is the attendance slice of a member the summarizer needs.
type MemberFlags struct {
	PresentToday bool
	LastSeenDays int
}

// EquipmentUsage pairs a unit's cumulative hours with its service limit.
type EquipmentUsage struct {
	UsageHours float64
	Limit      float64
}

// StockLevel pairs an item's stock with its restock threshold.
type StockLevel struct {
	Stock     int
	Threshold int
}

// FleetSummary carries the cross-cutting counts for the overview screen.
type FleetSummary struct {
	PresentToday      int `json:"present_today"`
	ChurnRisk         int `json:"churn_risk"`
	CriticalEquipment int `json:"critical_equipment"`
	LowStock          int `json:"low_stock"`
}

// Summarize composes the per-item classifiers into fleet counts. Each
// count equals the number of items the corresponding classifier flags,
// so summary and detail views can never disagree.
func Summarize(members []MemberFlags, equipment []EquipmentUsage, stock []StockLevel) FleetSummary {
	var s FleetSummary
	for _, m := range members {
		if m.PresentToday {
			s.PresentToday++
		}
		if m.LastSeenDays > ChurnRiskDays {
			s.ChurnRisk++
		}
	}
	for _, e := range equipment {
		if ClassifyUtilization(e.UsageHours, e.Limit) == TierCritical {
			s.CriticalEquipment++
		}
	}
	for _, i := range stock {
		if LowStock(i.Stock, i.Threshold) {
			s.LowStock++
		}
	}
	return s
}
