package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireterm/hireterm/pkg/schema"
)

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schemas for the UI component payloads",
	Long: `Prints one JSON document keyed by component tag. The backend's prompt
builder consumes these schemas so the model emits payloads the terminal
can render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := schema.MarshalIndent()
		if err != nil {
			return err
		}

		if schemaOutput != "" {
			if err := os.WriteFile(schemaOutput, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", schemaOutput, err)
			}
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write schemas to a file instead of stdout")
	rootCmd.AddCommand(schemaCmd)
}
