package domain

import "time"

// DerivedMetrics is recomputed from the job collection on every read.
type DerivedMetrics struct {
	TotalApplications int              `json:"totalApplications"`
	TotalInterviews   int              `json:"totalInterviews"`
	TotalOffers       int              `json:"totalOffers"`
	ConversionRate    float64          `json:"conversionRate"`
	RecentStatus      []JobApplication `json:"recentStatus"`
	LastUpdate        time.Time        `json:"lastUpdate"`
}

// WeeklyBucket counts applications in one week of the rolling window.
type WeeklyBucket struct {
	Name string `json:"name"`
	Apps int    `json:"apps"`
}

// Rolling window parameters.
const (
	WeeklyWindowWeeks = 5
	RecentStatusLimit = 5
)
