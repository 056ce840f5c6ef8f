package activity

import "notekeeper/internal/domain/activity"

type reportInput struct {
	UserAgent string `header:"User-Agent"`
	Forwarded string `header:"X-Forwarded-For"`
	Body      struct {
		Username string `json:"username" doc:"Display name of the visitor"`
	}
}

type reportOutput struct {
	Body ReportResponse
}

type ReportResponse struct {
	Status string `json:"status"`
}

type snapshotInput struct {
	Limit int `query:"limit" default:"12" minimum:"1" maximum:"50" doc:"Maximum number of visitors to return"`
}

type snapshotOutput struct {
	Body SnapshotResponse
}

type SnapshotResponse struct {
	ActiveCount int              `json:"activeCount" doc:"Visitors active within the last 10 minutes"`
	Latest      []activity.Entry `json:"latest"`
}
