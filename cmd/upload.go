package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hireterm/hireterm/pkg/api"
	"github.com/hireterm/hireterm/pkg/config"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a resume or a job description for parsing",
}

var uploadResumeCmd = &cobra.Command{
	Use:   "resume <file>",
	Short: "Upload a resume (candidate accounts)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		resume, err := client.UploadResume(context.Background(), filepath.Base(args[0]), f)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		fmt.Printf("Resume uploaded and parsed (id %s)\n", resume.ID)
		printParsedSummary(resume.ParsedData)
		return nil
	},
}

var uploadJobCmd = &cobra.Command{
	Use:   "job <file>",
	Short: "Upload a job description (recruiter accounts)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		job, err := client.UploadJob(context.Background(), filepath.Base(args[0]), f)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		fmt.Printf("Job uploaded and parsed (id %s)\n", job.ID)
		printParsedSummary(job.ParsedData)
		return nil
	},
}

// authedClient builds an API client from the settings file and the cached
// token; errors when not logged in.
func authedClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	token := config.LoadToken()
	if token == "" {
		return nil, fmt.Errorf("not logged in; run `hireterm login` first")
	}

	return api.New(cfg.API.URL, token, cfg.API.TimeoutOrDefault()), nil
}

func printParsedSummary(parsed map[string]any) {
	for _, key := range []string{"name", "title", "company", "skills", "experience_years", "location"} {
		if v, ok := parsed[key]; ok {
			fmt.Printf("  %s: %v\n", key, v)
		}
	}
}

func init() {
	uploadCmd.AddCommand(uploadResumeCmd)
	uploadCmd.AddCommand(uploadJobCmd)
	rootCmd.AddCommand(uploadCmd)
}
