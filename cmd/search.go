package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchJobID string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a direct search against the matching service",
	Long: `Searches run server-side against parsed resumes and job postings.
The chat view usually drives these for you; this command hits the
endpoints directly.`,
}

var searchJobsCmd = &cobra.Command{
	Use:   "jobs <query>...",
	Short: "Search job postings that match your resume (candidate accounts)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		results, err := client.SearchJobs(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Printf("%d matches for %q\n", results.Total, results.Query)
		for i, match := range results.Results {
			fmt.Printf("%2d. %s @ %s  (%.0f%%)\n", i+1, match.Title, match.Company, match.MatchScore)
			if match.Explanation != "" {
				fmt.Printf("    %s\n", match.Explanation)
			}
		}
		return nil
	},
}

var searchCandidatesCmd = &cobra.Command{
	Use:   "candidates <query>...",
	Short: "Search candidates (recruiter accounts)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := authedClient()
		if err != nil {
			return err
		}

		results, err := client.SearchCandidates(context.Background(), strings.Join(args, " "), searchJobID)
		if err != nil {
			return err
		}

		fmt.Printf("%d matches for %q\n", results.Total, results.Query)
		for i, match := range results.Results {
			fmt.Printf("%2d. %s  (%.0f%%)", i+1, match.Name, match.MatchScore)
			if match.CurrentRole != "" {
				fmt.Printf("  %s", match.CurrentRole)
			}
			fmt.Println()
			if len(match.Skills) > 0 {
				fmt.Printf("    %s\n", strings.Join(match.Skills, ", "))
			}
		}
		return nil
	},
}

func init() {
	searchCandidatesCmd.Flags().StringVar(&searchJobID, "job", "", "score candidates against this job posting")
	searchCmd.AddCommand(searchJobsCmd)
	searchCmd.AddCommand(searchCandidatesCmd)
	rootCmd.AddCommand(searchCmd)
}
