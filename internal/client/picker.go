package client

import (
	"context"

	"campus-events/internal/model"
)

type PickerState int

const (
	PickerIdle PickerState = iota
	PickerPicking
	PickerPicked
)

func (s PickerState) String() string {
	switch s {
	case PickerPicking:
		return "picking"
	case PickerPicked:
		return "picked"
	default:
		return "idle"
	}
}

// LocationPicker 選擇活動地點：Idle -> Picking -> Picked
type LocationPicker struct {
	state    PickerState
	coord    model.Coordinate
	geo      Geolocation
	form     FormPresenter
	notifier Notifier
}

// NewLocationPicker geo 可為 nil，代表裝置不支援定位
func NewLocationPicker(geo Geolocation, form FormPresenter, notifier Notifier) *LocationPicker {
	return &LocationPicker{geo: geo, form: form, notifier: notifier}
}

func (p *LocationPicker) State() PickerState {
	return p.state
}

// Coordinate 只有 Picked 時 ok
func (p *LocationPicker) Coordinate() (model.Coordinate, bool) {
	if p.state != PickerPicked {
		return model.Coordinate{}, false
	}
	return p.coord, true
}

// StartPicking 隱藏表單讓地圖可以點選
func (p *LocationPicker) StartPicking() {
	p.state = PickerPicking
	p.form.HideForm()
}

// MapClicked 只在 Picking 時有效，其他狀態忽略並回傳 false
func (p *LocationPicker) MapClicked(coord model.Coordinate) bool {
	if p.state != PickerPicking {
		return false
	}
	p.pick(coord)
	return true
}

// UseCurrentLocation 失敗時狀態不變
func (p *LocationPicker) UseCurrentLocation(ctx context.Context) error {
	if p.geo == nil {
		p.notifyLocationError(ErrGeolocationUnsupported)
		return ErrGeolocationUnsupported
	}
	coord, err := p.geo.CurrentPosition(ctx)
	if err != nil {
		p.notifyLocationError(err)
		return err
	}
	p.pick(coord)
	return nil
}

func (p *LocationPicker) Reset() {
	p.state = PickerIdle
	p.coord = model.Coordinate{}
}

func (p *LocationPicker) pick(coord model.Coordinate) {
	p.state = PickerPicked
	p.coord = coord
	prefill := coord
	p.form.ShowForm(&prefill)
}

func (p *LocationPicker) notifyLocationError(err error) {
	p.notifier.Notify(Notification{
		Title:       "Location Error",
		Description: err.Error(),
		Destructive: true,
	})
}
