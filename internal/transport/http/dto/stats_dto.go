package dto

import "time"

type DiscoverStatsResponse struct {
	New         int       `json:"new"`
	Today       int       `json:"today"`
	Mine        int       `json:"mine"`
	Near        int       `json:"near"`
	More        int       `json:"more"`
	Total       int       `json:"total"`
	Unviewed    int       `json:"unviewed"`
	MutualLikes int       `json:"mutual_likes"`
	LastUpdated time.Time `json:"last_updated"`
}
