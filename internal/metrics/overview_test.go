package metrics

import "testing"

func TestSummarize(t *testing.T) {
	members := []MemberFlags{
		{PresentToday: true, LastSeenDays: 0},
		{PresentToday: false, LastSeenDays: 5},
		{PresentToday: false, LastSeenDays: 4},
		{PresentToday: true, LastSeenDays: 0},
	}
	equipment := []EquipmentUsage{
		{UsageHours: 480, Limit: 500},
		{UsageHours: 100, Limit: 500},
		{UsageHours: 10, Limit: 0},
	}
	stock := []StockLevel{
		{Stock: 3, Threshold: 5},
		{Stock: 14, Threshold: 5},
	}

	s := Summarize(members, equipment, stock)
	if s.PresentToday != 2 {
		t.Fatalf("expected 2 present got %d", s.PresentToday)
	}
	if s.ChurnRisk != 1 {
		t.Fatalf("expected 1 churn risk (strictly more than %d days) got %d", ChurnRiskDays, s.ChurnRisk)
	}
	if s.CriticalEquipment != 2 {
		t.Fatalf("expected 2 critical units got %d", s.CriticalEquipment)
	}
	if s.LowStock != 1 {
		t.Fatalf("expected 1 low stock item got %d", s.LowStock)
	}
}

// Summary counts must equal independent per-item classification.
func TestSummarizeMatchesClassifiers(t *testing.T) {
	equipment := []EquipmentUsage{
		{UsageHours: 451, Limit: 500},
		{UsageHours: 449, Limit: 500},
		{UsageHours: 500, Limit: 500},
		{UsageHours: 0, Limit: -1},
	}
	stock := []StockLevel{{Stock: 5, Threshold: 5}, {Stock: 6, Threshold: 5}}

	wantCritical := 0
	for _, e := range equipment {
		if ClassifyUtilization(e.UsageHours, e.Limit) == TierCritical {
			wantCritical++
		}
	}
	wantLow := 0
	for _, i := range stock {
		if LowStock(i.Stock, i.Threshold) {
			wantLow++
		}
	}

	s := Summarize(nil, equipment, stock)
	if s.CriticalEquipment != wantCritical {
		t.Fatalf("summary critical %d diverges from classifier count %d", s.CriticalEquipment, wantCritical)
	}
	if s.LowStock != wantLow {
		t.Fatalf("summary low stock %d diverges from classifier count %d", s.LowStock, wantLow)
	}
}
