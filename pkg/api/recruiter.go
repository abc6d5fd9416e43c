package api

import (
	"context"
	"io"
	"net/http"
)

// UploadJob sends a job description file to the parsing service
func (c *Client) UploadJob(ctx context.Context, fileName string, file io.Reader) (*Job, error) {
	var job Job
	if err := c.upload(ctx, "/recruiter/job/upload", fileName, file, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns the recruiter's job postings
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.do(ctx, http.MethodGet, "/recruiter/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns a single job posting
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/recruiter/job/"+jobID, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job posting
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/recruiter/job/"+jobID, nil, nil)
}

// SearchCandidates runs a candidate search, optionally scoped to a job
func (c *Client) SearchCandidates(ctx context.Context, query, jobID string) (*CandidateSearchResults, error) {
	body := map[string]string{"query": query}
	if jobID != "" {
		body["job_id"] = jobID
	}

	var results CandidateSearchResults
	if err := c.do(ctx, http.MethodPost, "/recruiter/search/candidates", body, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
