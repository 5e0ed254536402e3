package dto

import "time"

type DiscoverPhotoResponse struct {
	Slot        int     `json:"slot"`
	URL         *string `json:"url,omitempty"`
	Visible     bool    `json:"visible"`
	Blurred     bool    `json:"blurred"`
	Restriction string  `json:"restriction,omitempty"`
}

type DiscoverActionsResponse struct {
	CanLike  bool `json:"can_like"`
	CanChat  bool `json:"can_chat"`
	CanBlock bool `json:"can_block"`
}

type DiscoverMatchResponse struct {
	UserID       int64                   `json:"user_id"`
	DisplayName  string                  `json:"display_name"`
	Age          int                     `json:"age,omitempty"`
	City         string                  `json:"city,omitempty"`
	Score        int                     `json:"score"`
	ScorePercent string                  `json:"score_percent"`
	Breakdown    map[string]bool         `json:"breakdown"`
	Categories   []string                `json:"categories"`
	DistanceKM   *float64                `json:"distance_km,omitempty"`
	Photos       []DiscoverPhotoResponse `json:"photos"`
	Actions      DiscoverActionsResponse `json:"actions"`
	CreatedAt    time.Time               `json:"created_at"`
	MatchedAt    *time.Time              `json:"matched_at,omitempty"`
}

type DiscoverResponse struct {
	Category    string                  `json:"category,omitempty"`
	Title       string                  `json:"title,omitempty"`
	Matches     []DiscoverMatchResponse `json:"matches"`
	TotalCount  int                     `json:"total_count"`
	Page        int                     `json:"page"`
	Size        int                     `json:"size"`
	TotalPages  int                     `json:"total_pages"`
	HasNext     bool                    `json:"has_next"`
	HasPrevious bool                    `json:"has_previous"`
	Skipped     int                     `json:"skipped,omitempty"`
}
