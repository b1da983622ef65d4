package model

// DashboardStats holds the headline counters for the admin dashboard.
type DashboardStats struct {
	TotalBlogs    int `json:"totalBlogs"`
	TotalContacts int `json:"totalContacts"`
	TotalAdvices  int `json:"totalAdvices"`
}
