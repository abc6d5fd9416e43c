package api

import (
	"context"
	"io"
	"net/http"
)

// UploadResume sends a resume file to the parsing service
func (c *Client) UploadResume(ctx context.Context, fileName string, file io.Reader) (*Resume, error) {
	var resume Resume
	if err := c.upload(ctx, "/candidate/resume/upload", fileName, file, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// GetResume returns the candidate's parsed resume
func (c *Client) GetResume(ctx context.Context) (*Resume, error) {
	var resume Resume
	if err := c.do(ctx, http.MethodGet, "/candidate/resume", nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// SearchJobs runs a free-text job search for the candidate
func (c *Client) SearchJobs(ctx context.Context, query string) (*JobSearchResults, error) {
	body := map[string]string{"query": query}

	var results JobSearchResults
	if err := c.do(ctx, http.MethodPost, "/candidate/search/jobs", body, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
