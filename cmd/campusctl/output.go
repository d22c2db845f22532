package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"campus-events/internal/client"
	"campus-events/internal/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// render 依 --output 輸出；text 交給 textFn
func render(w io.Writer, format string, v interface{}, textFn func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		textFn(w)
		return nil
	}
}

// printEventCards 列表卡片顯示完整描述
func printEventCards(w io.Writer, events []*model.Event, saved func(id uuid.UUID) bool, emptyMessage string) {
	if len(events) == 0 {
		fmt.Fprintln(w, emptyMessage)
		return
	}
	for _, e := range events {
		mark := " "
		if saved != nil && saved(e.ID) {
			mark = "★"
		}
		fmt.Fprintf(w, "%s %s  [%s]\n", mark, e.Title, e.Category)
		fmt.Fprintf(w, "  id:        %s\n", e.ID)
		fmt.Fprintf(w, "  organizer: %s\n", e.Organizer)
		fmt.Fprintf(w, "  starts:    %s\n", client.FormatStart(e))
		if e.EventLink != nil {
			fmt.Fprintf(w, "  link:      %s\n", *e.EventLink)
		}
		if images := e.Images(); len(images) > 0 {
			fmt.Fprintf(w, "  images:    %s\n", strings.Join(images, ", "))
		}
		fmt.Fprintf(w, "  %s\n\n", e.Description)
	}
}

func printMarkers(w io.Writer, markers []client.Marker) {
	if len(markers) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}
	for _, m := range markers {
		fmt.Fprintf(w, "● %s (%g, %g) %s\n", m.Style.Color, m.Coord.Lat, m.Coord.Lng, m.Popup.Title)
		fmt.Fprintf(w, "  %s · %s\n", m.Popup.Organizer, m.Popup.Start)
		fmt.Fprintf(w, "  %s\n", m.Popup.Description)
	}
}

func printAnalytics(w io.Writer, a model.EventAnalytics) {
	fmt.Fprintf(w, "Total:    %d\n", a.TotalEvents)
	fmt.Fprintf(w, "Pending:  %d\n", a.PendingEvents)
	fmt.Fprintf(w, "Approved: %d\n", a.ApprovedEvents)
	for _, c := range model.Categories {
		fmt.Fprintf(w, "  %-10s %d\n", c, a.CategoryCounts[c])
	}
}
