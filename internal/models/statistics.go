package models

import "time"

// PlatformStatistics : document singleton recalculé à la demande
// (_id fixe "platform_stats" dans la collection statistics).
type PlatformStatistics struct {
	TotalJobs      int       `json:"totalJobs" bson:"totalJobs"`
	TotalStudents  int       `json:"totalStudents" bson:"totalStudents"`
	TotalCompanies int       `json:"totalCompanies" bson:"totalCompanies"`
	SuccessStories int       `json:"successStories" bson:"successStories"`
	ActiveUsers    int       `json:"activeUsers" bson:"activeUsers"`
	LastUpdated    time.Time `json:"lastUpdated" bson:"lastUpdated"`
}
