package model

// DashboardStats aggregates counts for an employer's dashboard. NewMessages is
// a placeholder for an unimplemented messaging feature and is always zero.
type DashboardStats struct {
	ActiveJobs   int `json:"activeJobs"`
	Applications int `json:"applications"`
	NewMessages  int `json:"newMessages"`
}
