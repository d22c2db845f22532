package model

// EventAnalytics 管理後台統計
type EventAnalytics struct {
	TotalEvents    int              `json:"total_events"`
	PendingEvents  int              `json:"pending_events"`
	ApprovedEvents int              `json:"approved_events"`
	CategoryCounts map[Category]int `json:"category_counts"`
}

// NewEventAnalytics 由完整活動清單計算統計
func NewEventAnalytics(events []*Event) EventAnalytics {
	analytics := EventAnalytics{
		CategoryCounts: make(map[Category]int),
	}
	for _, e := range events {
		if e == nil {
			continue
		}
		analytics.TotalEvents++
		switch e.Status {
		case EventStatusPending:
			analytics.PendingEvents++
		case EventStatusApproved:
			analytics.ApprovedEvents++
		}
		analytics.CategoryCounts[e.Category]++
	}
	return analytics
}
