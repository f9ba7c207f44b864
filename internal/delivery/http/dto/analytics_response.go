package dto

import (
	"time"

	"hireflow/internal/repository"
)

type PlatformStatisticsResponse struct {
	TotalUsers        int `json:"total_users"`
	TotalJobSeekers   int `json:"total_job_seekers"`
	TotalRecruiters   int `json:"total_recruiters"`
	TotalJobs         int `json:"total_jobs"`
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
	TotalHires        int `json:"total_hires"`
}

type DailyCountResponse struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type PlatformActivityResponse struct {
	Registrations []DailyCountResponse `json:"registrations"`
	JobsPosted    []DailyCountResponse `json:"jobs_posted"`
	Applications  []DailyCountResponse `json:"applications"`
}

type SeekerStatisticsResponse struct {
	TotalApplications int `json:"total_applications"`
	Pending           int `json:"pending"`
	Shortlisted       int `json:"shortlisted"`
	Interviewed       int `json:"interviewed"`
	Hired             int `json:"hired"`
	Rejected          int `json:"rejected"`
	SavedJobs         int `json:"saved_jobs"`
}

type RecruiterStatisticsResponse struct {
	TotalJobs               int `json:"total_jobs"`
	ActiveJobs              int `json:"active_jobs"`
	ClosedJobs              int `json:"closed_jobs"`
	TotalApplications       int `json:"total_applications"`
	PendingApplications     int `json:"pending_applications"`
	ShortlistedApplications int `json:"shortlisted_applications"`
	HiredCount              int `json:"hired_count"`
}

type HiringFunnelResponse struct {
	Applied       int     `json:"applied"`
	Shortlisted   int     `json:"shortlisted"`
	Interviewed   int     `json:"interviewed"`
	Hired         int     `json:"hired"`
	Rejected      int     `json:"rejected"`
	AvgDaysToHire float64 `json:"avg_days_to_hire"`
}

func FromPlatformStatistics(st repository.PlatformStatistics) PlatformStatisticsResponse {
	return PlatformStatisticsResponse{
		TotalUsers:        st.TotalUsers,
		TotalJobSeekers:   st.TotalJobSeekers,
		TotalRecruiters:   st.TotalRecruiters,
		TotalJobs:         st.TotalJobs,
		ActiveJobs:        st.ActiveJobs,
		TotalApplications: st.TotalApplications,
		TotalHires:        st.TotalHires,
	}
}

func FromPlatformActivity(a repository.PlatformActivity) PlatformActivityResponse {
	return PlatformActivityResponse{
		Registrations: fromDailyCounts(a.Registrations),
		JobsPosted:    fromDailyCounts(a.JobsPosted),
		Applications:  fromDailyCounts(a.Applications),
	}
}

func FromSeekerStatistics(st repository.SeekerStatistics) SeekerStatisticsResponse {
	return SeekerStatisticsResponse{
		TotalApplications: st.TotalApplications,
		Pending:           st.Pending,
		Shortlisted:       st.Shortlisted,
		Interviewed:       st.Interviewed,
		Hired:             st.Hired,
		Rejected:          st.Rejected,
		SavedJobs:         st.SavedJobs,
	}
}

func FromRecruiterStatistics(st repository.RecruiterStatistics) RecruiterStatisticsResponse {
	return RecruiterStatisticsResponse{
		TotalJobs:               st.TotalJobs,
		ActiveJobs:              st.ActiveJobs,
		ClosedJobs:              st.ClosedJobs,
		TotalApplications:       st.TotalApplications,
		PendingApplications:     st.PendingApplications,
		ShortlistedApplications: st.ShortlistedApplications,
		HiredCount:              st.HiredCount,
	}
}

func FromHiringFunnel(f repository.HiringFunnel) HiringFunnelResponse {
	return HiringFunnelResponse{
		Applied:       f.Applied,
		Shortlisted:   f.Shortlisted,
		Interviewed:   f.Interviewed,
		Hired:         f.Hired,
		Rejected:      f.Rejected,
		AvgDaysToHire: f.AvgDaysToHire,
	}
}

func fromDailyCounts(items []repository.DailyCount) []DailyCountResponse {
	out := make([]DailyCountResponse, 0, len(items))
	for _, it := range items {
		out = append(out, DailyCountResponse{Day: it.Day, Count: it.Count})
	}
	return out
}
