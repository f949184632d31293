package cli

import (
	"fmt"

	"github.com/Shan2017/friends/app/config"
	"github.com/Shan2017/friends/app/service/report"
	"github.com/Shan2017/friends/app/util/mylog"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	filename   string
	configPath string
	debug      bool
}

// NewRootCommand builds the command tree. Services are resolved from di lazily,
// after the config has been loaded and provided.
func NewRootCommand(di *do.Injector) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "friends",
		Short:         "Query a plain-text journal of activities, friends and locations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mylog.Preinit(flags.debug)

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("filename") {
				cfg.Journal.Path = flags.filename
				if err = cfg.Validate(); err != nil {
					return err
				}
			}

			if err = mylog.Init(cfg, flags.debug); err != nil {
				return err
			}

			do.OverrideValue(di, cfg)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.filename, "filename", config.DefaultJournalPath,
		"Journal file to read")
	root.PersistentFlags().StringVar(&flags.configPath, "config", config.DefaultPath,
		"YAML config file")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false,
		"Log debug output to stderr")

	root.AddCommand(newListCommand(di))

	return root
}

func printLines(cmd *cobra.Command, lines []string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func reportService(di *do.Injector) (*report.Service, error) {
	return do.Invoke[*report.Service](di)
}
