package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/shkim05/stylist/internal/models"
)

func todayCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's recommended outfit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				pick, err := a.picks.GetOrFetch(ctx, refresh)
				if err != nil {
					return err
				}
				if pick == nil {
					fmt.Println("No pick today: the wardrobe is too small to pair outfits.")
					return nil
				}
				printRecommendation(a, pick)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cached pick and refetch")
	return cmd
}

func outfitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outfit <topId-bottomId>",
		Short: "Show full detail for an outfit pairing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				detail, err := a.composer.Compose(ctx, args[0])
				if err != nil {
					return err
				}
				printDetail(a, detail)
				return nil
			})
		},
	}
}

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage the outfit calendar",
	}

	set := &cobra.Command{
		Use:   "set <date> <topId-bottomId>",
		Short: "Schedule an outfit for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				detail, err := a.composer.Compose(ctx, args[1])
				if err != nil {
					return err
				}
				if err := a.calendar.Set(ctx, args[0], *detail); err != nil {
					return err
				}
				fmt.Printf("Scheduled %s for %s\n", detail.StyleLabel(), args[0])
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <date>",
		Short: "Show the outfit scheduled for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				assignment, err := a.calendar.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if assignment == nil {
					fmt.Printf("Nothing scheduled for %s\n", args[0])
					return nil
				}
				printAssignment(args[0], assignment)
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <date>",
		Short: "Remove the outfit scheduled for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				if err := a.calendar.Remove(ctx, args[0]); err != nil {
					return err
				}
				fmt.Printf("Cleared %s\n", args[0])
				return nil
			})
		},
	}

	var from string
	var days int
	upcoming := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming scheduled outfits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				if from == "" {
					from = time.Now().Format(models.DateLayout)
				}
				plans, err := a.calendar.ListUpcoming(ctx, from, days)
				if err != nil {
					return err
				}
				if len(plans) == 0 {
					fmt.Println("No upcoming plans.")
					return nil
				}
				for _, p := range plans {
					fmt.Printf("%s  %s (%.0f%%)\n",
						p.Date, p.Assignment.StyleDescription, p.Assignment.Score*100)
				}
				return nil
			})
		},
	}
	upcoming.Flags().StringVar(&from, "from", "", "start date (default today)")
	upcoming.Flags().IntVar(&days, "days", 7, "window size in days")

	month := &cobra.Command{
		Use:   "month",
		Short: "List every scheduled outfit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				all, err := a.calendar.ListAll(ctx)
				if err != nil {
					return err
				}
				if len(all) == 0 {
					fmt.Println("Calendar is empty.")
					return nil
				}
				dates := make([]string, 0, len(all))
				for date := range all {
					dates = append(dates, date)
				}
				// ISO dates order lexicographically.
				sort.Strings(dates)
				for _, date := range dates {
					worn := ""
					if ok, _ := a.worn.IsWorn(ctx, date); ok {
						worn = "  [worn]"
					}
					fmt.Printf("%s  %s%s\n", date, all[date].StyleDescription, worn)
				}
				return nil
			})
		},
	}

	cmd.AddCommand(set, show, rm, upcoming, month)
	return cmd
}

func wornCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worn <date> <topId-bottomId>",
		Short: "Toggle the worn marker for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, func(ctx context.Context, a *app) error {
				if _, err := models.DecodeOutfitID(args[1]); err != nil {
					return err
				}
				if err := a.worn.Toggle(ctx, args[0], args[1]); err != nil {
					return err
				}
				worn, err := a.worn.IsWorn(ctx, args[0])
				if err != nil {
					return err
				}
				if worn {
					fmt.Printf("Marked %s as worn on %s\n", args[1], args[0])
				} else {
					fmt.Printf("Unmarked %s\n", args[0])
				}
				return nil
			})
		},
	}
}

func printRecommendation(a *app, pick *models.OutfitRecommendation) {
	fmt.Printf("Today's pick: %s\n", pick.ID().String())
	fmt.Printf("  Top:    %s (%s)\n", pick.Top.Attributes.Category.Sub, pick.Top.Attributes.Color.Primary)
	fmt.Printf("  Bottom: %s (%s)\n", pick.Bottom.Attributes.Category.Sub, pick.Bottom.Attributes.Color.Primary)
	fmt.Printf("  Match:  %.0f%%\n", pick.Score*100)
	if pick.StyleDescription != "" {
		fmt.Printf("  Style:  %s\n", pick.StyleDescription)
	}
	for _, reason := range pick.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
}

func printDetail(a *app, d *models.OutfitDetail) {
	fmt.Printf("%s  (%.0f%% match)\n", d.StyleLabel(), d.Score*100)
	fmt.Printf("  Top:    %s (%s)\n", d.Top.Attributes.Category.Sub, d.Top.Attributes.Color.Primary)
	if link := a.imageLink(d.Top.ImageURL); link != "" {
		fmt.Printf("          %s\n", link)
	}
	fmt.Printf("  Bottom: %s (%s)\n", d.Bottom.Attributes.Category.Sub, d.Bottom.Attributes.Color.Primary)
	if link := a.imageLink(d.Bottom.ImageURL); link != "" {
		fmt.Printf("          %s\n", link)
	}
	if d.Reasoning != "" {
		fmt.Printf("  Why:    %s\n", d.Reasoning)
	}
}

func printAssignment(date string, a *models.CalendarAssignment) {
	fmt.Printf("%s  %s (%.0f%%)\n", date, a.StyleDescription, a.Score*100)
	fmt.Printf("  Outfit: %s\n", a.OutfitID)
	fmt.Printf("  Saved:  %s\n", a.SavedAt.Format(time.RFC3339))
}
