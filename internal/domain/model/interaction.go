package model

import "time"

// InteractionState is the prior interaction history between the
// requester and one candidate, supplied by the persistence layer.
// The discovery engine treats it as read-only input.
type InteractionState struct {
	Liked            bool
	LikedBy          bool
	Viewed           bool
	Matched          bool
	Blocked          bool
	HasMessageThread bool
	MatchedAt        *time.Time
}

// Candidate pairs a profile under consideration with the requester's
// interaction history against it.
type Candidate struct {
	Profile     Profile
	Interaction InteractionState
}
