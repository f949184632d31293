package cli

import (
	"github.com/Shan2017/friends/app/service/report"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func newListCommand(di *do.Injector) *cobra.Command {
	list := &cobra.Command{
		Use:   "list",
		Short: "List things from the journal",
	}

	list.AddCommand(
		newListFavoriteCommand(di),
		newListNamesCommand(di, "locations", "List declared locations", (*report.Service).Locations),
		newListNamesCommand(di, "friends", "List declared friends", (*report.Service).Friends),
		newListNamesCommand(di, "tags", "List tags used in the journal", (*report.Service).Tags),
		newListActivitiesCommand(di),
	)

	return list
}

func newListFavoriteCommand(di *do.Injector) *cobra.Command {
	favorite := &cobra.Command{
		Use:   "favorite",
		Short: "Rank friends or locations by number of activities",
	}

	favorite.AddCommand(
		newFavoriteCommand(di, "locations", "Locations in order of decreasing activity",
			(*report.Service).FavoriteLocations),
		newFavoriteCommand(di, "friends", "Friends in order of decreasing activity",
			(*report.Service).FavoriteFriends),
	)

	return favorite
}

func newFavoriteCommand(
	di *do.Injector,
	use, short string,
	run func(*report.Service, int) ([]string, error),
) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := reportService(di)
			if err != nil {
				return err
			}

			lines, err := run(svc, limit)
			if err != nil {
				return err
			}

			return printLines(cmd, lines)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries (0 shows all)")

	return cmd
}

func newListNamesCommand(
	di *do.Injector,
	use, short string,
	run func(*report.Service) ([]string, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := reportService(di)
			if err != nil {
				return err
			}

			lines, err := run(svc)
			if err != nil {
				return err
			}

			return printLines(cmd, lines)
		},
	}
}

func newListActivitiesCommand(di *do.Injector) *cobra.Command {
	var filter report.ActivityFilter

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List activities, optionally filtered by location, friend or tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := reportService(di)
			if err != nil {
				return err
			}

			lines, err := svc.Activities(filter)
			if err != nil {
				return err
			}

			return printLines(cmd, lines)
		},
	}

	cmd.Flags().StringVar(&filter.Location, "in", "", "Only activities at this location")
	cmd.Flags().StringVar(&filter.Friend, "with", "", "Only activities with this friend")
	cmd.Flags().StringVar(&filter.Tag, "tagged", "", "Only activities with this tag")

	return cmd
}
