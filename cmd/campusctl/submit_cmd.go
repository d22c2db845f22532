package main

import (
	"fmt"
	"strings"

	"campus-events/internal/client"
	"campus-events/internal/model"

	"github.com/spf13/cobra"
)

func mediaSource(raw string) client.MediaSource {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return client.MediaURL(raw)
	}
	return client.MediaFile(raw)
}

func newSubmitCmd(a *app) *cobra.Command {
	var (
		form   client.EventForm
		lat    float64
		lng    float64
		here   bool
		poster string
		images []string
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an event for admin review",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			formView := &client.HeadlessForm{}
			picker := client.NewLocationPicker(a.geo, formView, a.notifier)
			flow := client.NewSubmissionFlow(a.api, picker, formView, a.notifier)

			switch {
			case here:
				if err := picker.UseCurrentLocation(ctx); err != nil {
					return err
				}
			case cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng"):
				picker.StartPicking()
				picker.MapClicked(model.Coordinate{Lat: lat, Lng: lng})
			}

			flow.Open()
			flow.Form = form
			if poster != "" {
				src := mediaSource(poster)
				flow.SetPoster(&src)
			}
			for _, img := range images {
				if !flow.AddImage(mediaSource(img)) {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: at most %d images\n", img, model.MaxAdditionalImages)
				}
			}

			id, err := flow.Submit(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Event id: %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Title, "title", "", "event title")
	cmd.Flags().StringVar(&form.Organizer, "organizer", "", "organizer")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	cmd.Flags().StringVar(&form.Category, "category", "", "cultural|technical|sports|academic")
	cmd.Flags().StringVar(&form.StartDate, "start", "", "start time, e.g. 2026-03-01T18:00")
	cmd.Flags().StringVar(&form.EndDate, "end", "", "end time (defaults to start)")
	cmd.Flags().StringVar(&form.EventLink, "link", "", "event link")
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude")
	cmd.Flags().BoolVar(&here, "here", false, "use the configured device position")
	cmd.Flags().StringVar(&poster, "poster", "", "poster file path or URL")
	cmd.Flags().StringArrayVar(&images, "image", nil, "additional image file path or URL (repeatable)")
	return cmd
}
