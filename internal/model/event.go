package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxAdditionalImages 海報以外最多附加的圖片數
const MaxAdditionalImages = 3

// Category 活動類別
type Category string

const (
	CategoryCultural  Category = "cultural"
	CategoryTechnical Category = "technical"
	CategorySports    Category = "sports"
	CategoryAcademic  Category = "academic"
)

// Categories 依畫面顯示順序排列
var Categories = []Category{
	CategoryCultural,
	CategoryTechnical,
	CategorySports,
	CategoryAcademic,
}

// IsValid 驗證類別是否有效
func (c Category) IsValid() bool {
	switch c {
	case CategoryCultural, CategoryTechnical, CategorySports, CategoryAcademic:
		return true
	}
	return false
}

// EventStatus 活動審核狀態；沒有 rejected，駁回即刪除
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
)

// IsValid 驗證狀態是否有效
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s EventStatus) CanTransitionTo(target EventStatus) bool {
	transitions := map[EventStatus][]EventStatus{
		EventStatusPending:  {EventStatusApproved},
		EventStatusApproved: {}, // 不能轉換到任何狀態
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Coordinate 經緯度
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Event struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Title       string      `json:"title" db:"title"`
	Description string      `json:"description" db:"description"`
	Organizer   string      `json:"organizer" db:"organizer"`
	Category    Category    `json:"category" db:"category"`
	StartDate   time.Time   `json:"start_date" db:"start_date"`
	EndDate     time.Time   `json:"end_date" db:"end_date"`
	EventLink   *string     `json:"event_link" db:"event_link"`
	LocationLat float64     `json:"location_lat" db:"location_lat"`
	LocationLng float64     `json:"location_lng" db:"location_lng"`
	PosterURL   *string     `json:"poster_url" db:"poster_url"`
	ImageURLs   []string    `json:"image_urls" db:"image_urls"`
	Status      EventStatus `json:"status" db:"status"`
	CreatedBy   *uuid.UUID  `json:"created_by,omitempty" db:"created_by"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// Location 回傳活動座標；經緯度任一為 0 視為沒有座標，不放地圖標記
func (e *Event) Location() (Coordinate, bool) {
	if e.LocationLat == 0 || e.LocationLng == 0 {
		return Coordinate{}, false
	}
	return Coordinate{Lat: e.LocationLat, Lng: e.LocationLng}, true
}

// Images 海報在前，其餘圖片依序
func (e *Event) Images() []string {
	images := make([]string, 0, 1+len(e.ImageURLs))
	if e.PosterURL != nil && *e.PosterURL != "" {
		images = append(images, *e.PosterURL)
	}
	for _, u := range e.ImageURLs {
		if u != "" {
			images = append(images, u)
		}
	}
	return images
}

// SubmitEventRequest createPendingEvent 的 payload，欄位驗證交給 service
type SubmitEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Organizer   string   `json:"organizer"`
	Category    string   `json:"category"`
	StartDate   string   `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	EventLink   *string  `json:"event_link"`
	LocationLat float64  `json:"location_lat"`
	LocationLng float64  `json:"location_lng"`
	PosterURL   *string  `json:"poster_url"`
	ImageURLs   []string `json:"image_urls"`
}

// SubmitEventResponse createPendingEvent 成功回應
type SubmitEventResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

// UpdateEventStatusRequest 管理員更新狀態請求
type UpdateEventStatusRequest struct {
	Status EventStatus `json:"status" binding:"required"`
}
