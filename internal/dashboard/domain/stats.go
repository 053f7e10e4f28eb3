// Package domain holds the dashboard read models.
package domain

// Stats are the dashboard counters.
type Stats struct {
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`
	ArchivedProjects  int `json:"archivedProjects"`
	PendingProofs     int `json:"pendingProofs"`
}
