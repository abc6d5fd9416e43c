package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hireterm/hireterm/pkg/chat"
	"github.com/hireterm/hireterm/pkg/config"
	"github.com/hireterm/hireterm/pkg/headless"
	"github.com/hireterm/hireterm/pkg/logger"
	"github.com/hireterm/hireterm/pkg/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hireterm",
	Short: "Terminal frontend for the recruitment platform",
	Long: `Chat with the recruitment platform's AI assistant, upload resumes and
job descriptions, and search for matches - all from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.Init(); err != nil {
			return err
		}
		defer logger.Close()

		token := config.LoadToken()
		if token == "" {
			fmt.Fprintln(os.Stderr, "Not logged in; run `hireterm login` first. Continuing unauthenticated.")
		}

		if prompt := viper.GetString("prompt"); prompt != "" {
			runner := headless.NewRunner(cfg, token, os.Stdout, viper.GetBool("plain"))
			return runner.Run(context.Background(), prompt)
		}

		conv := chat.NewConversationWithSystem(cfg.Chat.Model, cfg.Chat.SystemPrompt)

		var history *chat.History
		if cfg.History.Enabled {
			history, err = chat.NewHistory(config.BuildSettingsPath(cfg.History.File))
			if err != nil {
				logger.Warn("history disabled", "error", err)
				history = nil
			}
		}

		if viper.GetBool("continue") && history != nil {
			conv.Restore(history.GetMessages())
		}

		return tui.StartApp(cfg, token, conv, history)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ~/.hireterm/settings.yaml)")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("api-url", "", "recruitment backend base URL")
	viper.BindPFlag("api.url", rootCmd.PersistentFlags().Lookup("api-url"))

	rootCmd.Flags().StringP("prompt", "p", "", "execute a single prompt without entering the chat view")
	viper.BindPFlag("prompt", rootCmd.Flags().Lookup("prompt"))

	rootCmd.Flags().Bool("plain", false, "with --prompt, print narrative only, no styled cards")
	viper.BindPFlag("plain", rootCmd.Flags().Lookup("plain"))

	rootCmd.Flags().Bool("continue", false, "continue from the saved transcript instead of starting fresh")
	viper.BindPFlag("continue", rootCmd.Flags().Lookup("continue"))

	config.SetDefaults()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(config.SettingsDir())
		viper.SetConfigName("settings")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HIRETERM")
	viper.AutomaticEnv()

	// A missing settings file is fine; defaults cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
		}
	}
}
