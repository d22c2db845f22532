package client

import (
	"context"
	"fmt"
	"io"

	"campus-events/internal/model"
)

// 終端機版本的 capability 實作，給 campusctl 使用

type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Notify(note Notification) {
	prefix := "✓"
	if note.Destructive {
		prefix = "✗"
	}
	if note.Description == "" {
		fmt.Fprintf(n.w, "%s %s\n", prefix, note.Title)
		return
	}
	fmt.Fprintf(n.w, "%s %s: %s\n", prefix, note.Title, note.Description)
}

// FixedGeolocation 由設定檔提供的座標；未設定時視為不支援定位
type FixedGeolocation struct {
	coord *model.Coordinate
}

func NewFixedGeolocation(coord *model.Coordinate) *FixedGeolocation {
	return &FixedGeolocation{coord: coord}
}

func (g *FixedGeolocation) CurrentPosition(ctx context.Context) (model.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return model.Coordinate{}, err
	}
	if g.coord == nil {
		return model.Coordinate{}, ErrGeolocationUnsupported
	}
	return *g.coord, nil
}

// PrintOpener 終端機無法開瀏覽器，直接印出連結
type PrintOpener struct {
	w io.Writer
}

func NewPrintOpener(w io.Writer) *PrintOpener {
	return &PrintOpener{w: w}
}

func (o *PrintOpener) Open(url string) error {
	_, err := fmt.Fprintln(o.w, url)
	return err
}

type Marker struct {
	Coord model.Coordinate `json:"coord" yaml:"coord"`
	Style MarkerStyle      `json:"style" yaml:"style"`
	Popup Popup            `json:"popup" yaml:"popup"`
}

// MarkerList 把標記收集起來，由呼叫端決定怎麼輸出
type MarkerList struct {
	Markers []Marker
}

func (m *MarkerList) ClearMarkers() {
	m.Markers = m.Markers[:0]
}

func (m *MarkerList) PlaceMarker(coord model.Coordinate, style MarkerStyle, popup Popup) {
	m.Markers = append(m.Markers, Marker{Coord: coord, Style: style, Popup: popup})
}

// HeadlessForm CLI 沒有對話框，只記錄表單是否顯示
type HeadlessForm struct {
	Visible bool
	Prefill *model.Coordinate
}

func (f *HeadlessForm) ShowForm(prefill *model.Coordinate) {
	f.Visible = true
	f.Prefill = prefill
}

func (f *HeadlessForm) HideForm() {
	f.Visible = false
}
