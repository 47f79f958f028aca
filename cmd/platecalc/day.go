package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitcoach/internal/apiclient"
	"github.com/2beens/fitcoach/internal/dashboard"
	"github.com/2beens/fitcoach/internal/nutrition"
	"github.com/2beens/fitcoach/pkg"

	"github.com/spf13/cobra"
)

type dayOptions struct {
	apiURL   string
	token    string
	username string
	password string
	date     string
	slot     string
	timeout  time.Duration
}

func newDayCmd() *cobra.Command {
	opts := dayOptions{}
	cmd := &cobra.Command{
		Use:   "day [client id]",
		Short: "Fetch and show a client's day from the fitcoach API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.token == "" {
				opts.token = os.Getenv("FITCOACH_TOKEN")
			}
			if opts.password == "" {
				opts.password = os.Getenv("FITCOACH_PASSWORD")
			}
			s, err := fetchDay(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api", "http://localhost:9000", "fitcoach API base URL")
	cmd.Flags().StringVar(&opts.token, "token", "", "coach session token, FITCOACH_TOKEN when empty")
	cmd.Flags().StringVar(&opts.username, "user", "", "coach username, to log in when no token is given")
	cmd.Flags().StringVar(&opts.password, "password", "", "coach password, FITCOACH_PASSWORD when empty")
	cmd.Flags().StringVar(&opts.date, "date", "", "day to show as YYYY-MM-DD, today when empty")
	cmd.Flags().StringVar(&opts.slot, "slot", "", "show only one meal slot")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "API request timeout")
	return cmd
}

func fetchDay(ctx context.Context, clientID string, opts dayOptions) (*summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	date := time.Now()
	if opts.date != "" {
		parsed, err := pkg.ParseDate(opts.date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", opts.date)
		}
		date = parsed
	}

	client := apiclient.New(opts.apiURL, opts.token, opts.timeout)
	if opts.token == "" {
		if opts.username == "" {
			return nil, errors.New("either a token or coach credentials are required")
		}
		if _, err := client.Login(ctx, opts.username, opts.password); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}

	loader := dashboard.NewLoader(client, dashboard.NewState(clientID, date), nil)
	defer loader.Close()

	if opts.slot != "" {
		slot, err := nutrition.ParseMealSlot(opts.slot)
		if err != nil {
			return nil, err
		}
		loader.Dispatch(dashboard.FilterChanged{Slot: &slot})
	}

	loader.SelectDate(ctx, date)
	loader.Wait()

	state := loader.State()
	if state.Err != nil {
		return nil, state.Err
	}
	if state.View == nil {
		return nil, errors.New("no day view received")
	}
	return summaryFromState(state), nil
}

func summaryFromState(state dashboard.State) *summary {
	view := state.View
	completed := make(map[nutrition.MealSlot]bool, len(view.CompletedSlots))
	for _, slot := range view.CompletedSlots {
		completed[slot] = true
	}
	if view.DayCompleted {
		for _, slot := range nutrition.MealSlots {
			completed[slot] = true
		}
	}

	return &summary{
		Title:     fmt.Sprintf("client %s, %s", state.ClientID, view.Date),
		Meals:     view.Meals,
		Slots:     state.VisibleSlots(),
		Completed: completed,
		Consumed:  view.Consumed,
		Progress:  view.Progress,
		Split:     view.Split,
		Excluded:  view.Excluded,
	}
}
