package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/top-system/light-news/cmd/migrate"
	"github.com/top-system/light-news/cmd/runserver"
	"github.com/top-system/light-news/cmd/setup"
)

func init() {
	rootCmd.AddCommand(runserver.StartCmd)
	rootCmd.AddCommand(migrate.StartCmd)
	rootCmd.AddCommand(setup.StartCmd)
}

var rootCmd = &cobra.Command{
	Use:          "light-news",
	Short:        "light-news",
	SilenceUsage: true,
	Long:         `light-news: news, categories and pages REST API`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New(
				"requires at least one arg, " +
					"you can view the available parameters through `--help`",
			)
		}
		return nil
	},
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run:               func(cmd *cobra.Command, args []string) {},
}

//Execute : apply commands
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(-1)
	}
}
