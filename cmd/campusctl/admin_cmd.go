package main

import (
	"fmt"
	"io"

	"campus-events/internal/client"

	"github.com/spf13/cobra"
)

func newAdminCmd(a *app) *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Review submitted events",
	}

	flow := func() *client.ReviewFlow {
		return client.NewReviewFlow(a.api, a.session, a.notifier)
	}

	admin.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List events waiting for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flow()
			if err := f.Refresh(cmd.Context()); err != nil {
				return err
			}
			return render(a.out, a.output, f.Pending, func(w io.Writer) {
				printEventCards(w, f.Pending, nil, "No pending events.")
			})
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "approved",
		Short: "List approved events",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flow()
			if err := f.Refresh(cmd.Context()); err != nil {
				return err
			}
			return render(a.out, a.output, f.Approved, func(w io.Writer) {
				printEventCards(w, f.Approved, nil, "No approved events.")
			})
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show event counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := flow()
			if err := f.Refresh(cmd.Context()); err != nil {
				return err
			}
			return render(a.out, a.output, f.Analytics, func(w io.Writer) {
				printAnalytics(w, f.Analytics)
			})
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "approve <event-id>",
		Short: "Approve a pending event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			return flow().Approve(cmd.Context(), id)
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "reject <event-id>",
		Short: "Reject and delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			return flow().Reject(cmd.Context(), id)
		},
	})

	admin.AddCommand(&cobra.Command{
		Use:   "history <event-id>",
		Short: "Show the review log of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			entries, err := a.api.ReviewHistory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(a.out, a.output, entries, func(w io.Writer) {
				if len(entries) == 0 {
					fmt.Fprintln(w, "No review history.")
					return
				}
				for _, e := range entries {
					actor := "-"
					if e.ActorEmail != nil {
						actor = *e.ActorEmail
					}
					fmt.Fprintf(w, "%s  %-9s %s\n", e.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"), e.Action, actor)
				}
			})
		},
	})

	return admin
}
