package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage your job postings (recruiter accounts)",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		jobs, err := client.ListJobs(context.Background())
		if err != nil {
			return err
		}

		if len(jobs) == 0 {
			fmt.Println("No job postings yet; upload one with `hireterm upload job <file>`.")
			return nil
		}

		for _, job := range jobs {
			title, _ := job.ParsedData["title"].(string)
			company, _ := job.ParsedData["company"].(string)
			fmt.Printf("%s  %s", job.ID, title)
			if company != "" {
				fmt.Printf(" @ %s", company)
			}
			fmt.Println()
		}
		return nil
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a job posting's parsed data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		job, err := client.GetJob(context.Background(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(job)
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		if err := client.DeleteJob(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsShowCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}
