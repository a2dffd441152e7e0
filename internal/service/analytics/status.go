package analytics

type OverallStatus string

const (
	OverallStatusOnTrack        OverallStatus = "On Track"
	OverallStatusNeedsAttention OverallStatus = "Needs Attention"
	OverallStatusCritical       OverallStatus = "Critical"
	OverallStatusNoData         OverallStatus = "N/A"
)

// StatusBreakdown partitions trainings: Completed + InProgress + Pending + Overdue
// equals the total. Active is InProgress + Pending.
type StatusBreakdown struct {
	Completed  int
	InProgress int
	Pending    int
	Overdue    int
	Active     int
}

// ResolveOverallStatus applies the thresholds. Critical wins over On Track.
func ResolveOverallStatus(totalTrainings int, completionRate float64, overdue int, th StatusThresholds) OverallStatus {
	if totalTrainings == 0 {
		return OverallStatusNoData
	}
	if completionRate < th.CriticalCompletionRate || overdue >= th.CriticalOverdueCount {
		return OverallStatusCritical
	}
	if completionRate >= th.OnTrackCompletionRate && overdue <= th.OnTrackMaxOverdue {
		return OverallStatusOnTrack
	}
	return OverallStatusNeedsAttention
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
