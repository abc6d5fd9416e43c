package api

import "time"

// User is the account record returned by the auth endpoints
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company,omitempty"`
}

// TokenResponse is returned by login and register
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

// Resume is a parsed resume owned by a candidate. ParsedData carries the
// parsing service's output (name, email, skills, experience, education).
type Resume struct {
	ID          string         `json:"id"`
	CandidateID string         `json:"candidate_id"`
	ParsedData  map[string]any `json:"parsed_data"`
	FileName    string         `json:"file_name,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Job is a parsed job posting owned by a recruiter. ParsedData carries
// title, company, skills, location and salary.
type Job struct {
	ID          string         `json:"id"`
	RecruiterID string         `json:"recruiter_id"`
	ParsedData  map[string]any `json:"parsed_data"`
	FileName    string         `json:"file_name,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CandidateMatch is one row of a candidate search result
type CandidateMatch struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	MatchScore      float64  `json:"match_score"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	CurrentRole     string   `json:"current_role,omitempty"`
	Explanation     string   `json:"explanation,omitempty"`
}

// JobMatch is one row of a job search result
type JobMatch struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	MatchScore     float64  `json:"match_score"`
	Location       string   `json:"location,omitempty"`
	RequiredSkills []string `json:"required_skills"`
	Explanation    string   `json:"explanation,omitempty"`
}

// JobSearchResults is the response to a candidate's job search
type JobSearchResults struct {
	Query   string     `json:"query"`
	Total   int        `json:"total"`
	Results []JobMatch `json:"results"`
}

// CandidateSearchResults is the response to a recruiter's candidate search
type CandidateSearchResults struct {
	Query   string           `json:"query"`
	Total   int              `json:"total"`
	Results []CandidateMatch `json:"results"`
}
