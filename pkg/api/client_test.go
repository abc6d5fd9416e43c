package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return New(serverURL, "test-token", 5*time.Second)
}

func TestLogin(t *testing.T) {
	t.Run("should post credentials and return the token response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "ada@example.com", creds["email"])
			assert.Equal(t, "hunter2", creds["password"])

			json.NewEncoder(w).Encode(TokenResponse{
				AccessToken: "new-token",
				TokenType:   "bearer",
				User:        User{Email: "ada@example.com", Role: "candidate"},
			})
		}))
		defer server.Close()

		client := New(server.URL, "", 5*time.Second)
		resp, err := client.Login(context.Background(), "ada@example.com", "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "new-token", resp.AccessToken)
		assert.Equal(t, "candidate", resp.User.Role)
	})

	t.Run("should surface the backend detail on bad credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "Incorrect email or password"}`))
		}))
		defer server.Close()

		client := New(server.URL, "", 5*time.Second)
		_, err := client.Login(context.Background(), "ada@example.com", "wrong")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Equal(t, "Incorrect email or password", apiErr.Error())
	})
}

func TestRegister(t *testing.T) {
	t.Run("should route by role", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewEncoder(w).Encode(TokenResponse{AccessToken: "t"})
		}))
		defer server.Close()

		client := New(server.URL, "", 5*time.Second)

		_, err := client.Register(context.Background(), "candidate", RegisterRequest{Email: "a@b.c"})
		require.NoError(t, err)
		assert.Equal(t, "/auth/register/candidate", gotPath)

		_, err = client.Register(context.Background(), "recruiter", RegisterRequest{Email: "a@b.c", Company: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "/auth/register/recruiter", gotPath)
	})

	t.Run("should reject unknown roles without a request", func(t *testing.T) {
		client := New("http://unused.invalid", "", 5*time.Second)
		_, err := client.Register(context.Background(), "admin", RegisterRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown role")
	})
}

func TestBearerToken(t *testing.T) {
	t.Run("should attach the token to authenticated requests", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(User{Email: "ada@example.com"})
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-token", gotAuth)
	})

	t.Run("should send no header when unauthenticated", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(TokenResponse{})
		}))
		defer server.Close()

		client := New(server.URL, "", 5*time.Second)
		_, err := client.Login(context.Background(), "a@b.c", "pw")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("WithToken should not mutate the original client", func(t *testing.T) {
		base := New("http://example.invalid", "", 5*time.Second)
		authed := base.WithToken("fresh")

		assert.Empty(t, base.token)
		assert.Equal(t, "fresh", authed.token)
	})
}

func TestUploadResume(t *testing.T) {
	t.Run("should send the file as a multipart field named file", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/candidate/resume/upload", r.URL.Path)

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			assert.Equal(t, "resume.pdf", header.Filename)

			json.NewEncoder(w).Encode(Resume{
				ID:         "resume-1",
				ParsedData: map[string]any{"name": "Ada Lovelace"},
			})
		}))
		defer server.Close()

		resume, err := newTestClient(server.URL).UploadResume(
			context.Background(), "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
		require.NoError(t, err)
		assert.Equal(t, "resume-1", resume.ID)
		assert.Equal(t, "Ada Lovelace", resume.ParsedData["name"])
	})

	t.Run("should surface parsing-service failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail": "Unsupported file type"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).UploadResume(
			context.Background(), "resume.exe", strings.NewReader("MZ"))
		require.Error(t, err)
		assert.Equal(t, "Unsupported file type", err.Error())
	})
}

func TestSearch(t *testing.T) {
	t.Run("should post the job search query", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/candidate/search/jobs", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "remote Go backend", body["query"])

			json.NewEncoder(w).Encode(JobSearchResults{
				Query: "remote Go backend",
				Total: 1,
				Results: []JobMatch{
					{Title: "Backend Engineer", Company: "Acme", MatchScore: 87},
				},
			})
		}))
		defer server.Close()

		results, err := newTestClient(server.URL).SearchJobs(context.Background(), "remote Go backend")
		require.NoError(t, err)
		assert.Equal(t, 1, results.Total)
		assert.Equal(t, "Backend Engineer", results.Results[0].Title)
	})

	t.Run("should include the job id only when scoped", func(t *testing.T) {
		var body map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body = nil
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			json.NewEncoder(w).Encode(CandidateSearchResults{})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.SearchCandidates(context.Background(), "senior Go", "")
		require.NoError(t, err)
		_, scoped := body["job_id"]
		assert.False(t, scoped)

		_, err = client.SearchCandidates(context.Background(), "senior Go", "job-9")
		require.NoError(t, err)
		assert.Equal(t, "job-9", body["job_id"])
	})
}

func TestJobs(t *testing.T) {
	t.Run("should delete by id with no response body", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		err := newTestClient(server.URL).DeleteJob(context.Background(), "job-3")
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/recruiter/job/job-3", gotPath)
	})

	t.Run("should fall back to the raw body when the error is not detail JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream timeout"))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).ListJobs(context.Background())
		require.Error(t, err)
		assert.Equal(t, "upstream timeout", err.Error())
	})
}
