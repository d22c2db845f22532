package main

import (
	"fmt"
	"io"

	"campus-events/internal/client"
	"campus-events/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *app) browser() *client.EventBrowser {
	return client.NewEventBrowser(a.api, a.state, a.session, a.geo, client.NewPrintOpener(a.out), a.notifier)
}

func parseEventID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid event id %q", raw)
	}
	return id, nil
}

func bindFilterFlags(cmd *cobra.Command, f *client.Filter, savedOnly *bool) {
	cmd.Flags().StringVar(&f.Search, "search", "", "match title or organizer")
	cmd.Flags().StringVar(&f.Category, "category", client.CategoryAll, "all|cultural|technical|sports|academic")
	cmd.Flags().BoolVar(savedOnly, "saved", false, "only saved events")
}

func newEventsCmd(a *app) *cobra.Command {
	filter := client.DefaultFilter()
	var savedOnly bool
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List approved events",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.browser()
			if savedOnly {
				filter.View = client.ViewSaved
			}
			b.Filter = filter
			if err := b.Load(cmd.Context()); err != nil {
				return err
			}
			visible := b.Visible()
			empty := "No events found."
			if filter.View == client.ViewSaved {
				empty = "No saved events found."
			}
			return render(a.out, a.output, visible, func(w io.Writer) {
				printEventCards(w, visible, b.IsSaved, empty)
			})
		},
	}
	bindFilterFlags(cmd, &filter, &savedOnly)
	return cmd
}

func newMapCmd(a *app) *cobra.Command {
	filter := client.DefaultFilter()
	var savedOnly bool
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show map markers for the visible events",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := a.browser()
			if savedOnly {
				filter.View = client.ViewSaved
			}
			b.Filter = filter
			if err := b.Load(cmd.Context()); err != nil {
				return err
			}
			var markers client.MarkerList
			b.Render(&markers)
			return render(a.out, a.output, markers.Markers, func(w io.Writer) {
				printMarkers(w, markers.Markers)
			})
		},
	}
	bindFilterFlags(cmd, &filter, &savedOnly)
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <event-id>",
		Short: "Toggle an event in the saved list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			saved, err := a.state.ToggleSaved(id)
			if err != nil {
				return err
			}
			if saved {
				fmt.Fprintln(a.out, "Saved.")
			} else {
				fmt.Fprintln(a.out, "Removed from saved.")
			}
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "register <event-id>",
		Short: "Register for an approved event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			// 結果已經由 notifier 顯示
			_ = a.browser().Register(cmd.Context(), id)
			return nil
		},
	}
}

func newRegistrationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "registrations",
		Short: "List my registrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			regs, err := a.api.MyRegistrations(cmd.Context())
			if err != nil {
				return err
			}
			return render(a.out, a.output, regs, func(w io.Writer) {
				if len(regs) == 0 {
					fmt.Fprintln(w, "No registrations.")
					return
				}
				for _, r := range regs {
					fmt.Fprintf(w, "%s  registered %s\n", r.EventID, r.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM"))
				}
			})
		},
	}
}

func newDirectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "directions <event-id>",
		Short: "Print a directions link to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			b := a.browser()
			if err := b.Load(cmd.Context()); err != nil {
				return err
			}
			var target *model.Event
			for _, e := range b.Events() {
				if e.ID == id {
					target = e
					break
				}
			}
			if target == nil {
				return fmt.Errorf("event %s not found", id)
			}
			b.Directions(cmd.Context(), target)
			return nil
		},
	}
}
