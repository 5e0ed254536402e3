package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/domain/enums"
	authsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/auth"
	discoverysvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/transport/http/dto"
	httperrors "github.com/Sagar2372004/punarmilan-backend-sub001/internal/transport/http/errors"
)

type DiscoverHandler struct {
	service *discoverysvc.Service
}

func NewDiscoverHandler(service *discoverysvc.Service) *DiscoverHandler {
	return &DiscoverHandler{service: service}
}

func (h *DiscoverHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	criteria, fieldErr := parseCriteria(r.URL.Query())
	if fieldErr != nil {
		writeFieldError(w, fieldErr.Field, fieldErr.Reason)
		return
	}

	list, err := h.service.Discover(r.Context(), identity.UserID, criteria)
	if err != nil {
		switch {
		case errors.Is(err, discoverysvc.ErrRequesterNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "requester profile not found")
		case errors.Is(err, discoverysvc.ErrValidation):
			if fe, ok := discoverysvc.AsFieldError(err); ok {
				writeFieldError(w, fe.Field, fe.Reason)
				return
			}
			writeBadRequest(w, "VALIDATION_ERROR", "invalid discovery request")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to discover matches")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, toDiscoverResponse(list))
}

func parseCriteria(query url.Values) (discoverysvc.Criteria, *discoverysvc.FieldError) {
	var criteria discoverysvc.Criteria

	intFields := []struct {
		name   string
		target *int
	}{
		{"age_min", &criteria.AgeMin},
		{"age_max", &criteria.AgeMax},
		{"height_min_cm", &criteria.HeightMinCM},
		{"height_max_cm", &criteria.HeightMaxCM},
		{"income_min", &criteria.IncomeMin},
		{"income_max", &criteria.IncomeMax},
		{"page", &criteria.Page},
		{"size", &criteria.Size},
	}
	for _, field := range intFields {
		value, ok := parseQueryInt(query.Get(field.name))
		if !ok {
			return discoverysvc.Criteria{}, &discoverysvc.FieldError{Field: field.name, Reason: "must be an integer"}
		}
		*field.target = value
	}

	criteria.City = strings.TrimSpace(query.Get("city"))
	criteria.Education = strings.TrimSpace(query.Get("education"))
	criteria.Occupation = strings.TrimSpace(query.Get("occupation"))
	criteria.MaritalStatus = strings.TrimSpace(query.Get("marital_status"))

	if raw := strings.TrimSpace(query.Get("category")); raw != "" {
		category, ok := enums.ParseCategoryBucket(raw)
		if !ok {
			return discoverysvc.Criteria{}, &discoverysvc.FieldError{Field: "category", Reason: "unknown category"}
		}
		criteria.Category = category
	}
	if raw := strings.TrimSpace(query.Get("sort_by")); raw != "" {
		sortBy, ok := enums.ParseSortKey(raw)
		if !ok {
			return discoverysvc.Criteria{}, &discoverysvc.FieldError{Field: "sort_by", Reason: "unknown sort key"}
		}
		criteria.SortBy = sortBy
	}
	if raw := strings.TrimSpace(query.Get("order")); raw != "" {
		order, ok := enums.ParseSortOrder(raw)
		if !ok {
			return discoverysvc.Criteria{}, &discoverysvc.FieldError{Field: "order", Reason: "must be asc or desc"}
		}
		criteria.SortOrder = order
	}

	criteria.ExcludeLiked = parseQueryBool(query.Get("exclude_liked"))
	criteria.ExcludeViewed = parseQueryBool(query.Get("exclude_viewed"))
	criteria.ExcludeMatched = parseQueryBool(query.Get("exclude_matched"))
	criteria.OnlyVerified = parseQueryBool(query.Get("only_verified"))
	criteria.OnlyWithPhotos = parseQueryBool(query.Get("only_with_photos"))
	criteria.OnlyOnline = parseQueryBool(query.Get("only_online"))

	return criteria, nil
}

func toDiscoverResponse(list discoverysvc.MatchList) dto.DiscoverResponse {
	matches := make([]dto.DiscoverMatchResponse, 0, len(list.Matches))
	for _, match := range list.Matches {
		breakdown := make(map[string]bool, len(match.Breakdown))
		for criterion, passed := range match.Breakdown {
			breakdown[string(criterion)] = passed
		}

		categories := make([]string, 0, len(match.Buckets))
		for _, bucket := range match.Buckets {
			categories = append(categories, string(bucket))
		}

		photos := make([]dto.DiscoverPhotoResponse, 0, len(match.Photos))
		for _, photo := range match.Photos {
			photos = append(photos, dto.DiscoverPhotoResponse{
				Slot:        photo.Slot,
				URL:         photo.URL,
				Visible:     photo.Visible,
				Blurred:     photo.Blurred,
				Restriction: string(photo.Restriction),
			})
		}

		matches = append(matches, dto.DiscoverMatchResponse{
			UserID:       match.UserID,
			DisplayName:  match.DisplayName,
			Age:          match.Age,
			City:         match.City,
			Score:        match.Score,
			ScorePercent: match.ScorePercent,
			Breakdown:    breakdown,
			Categories:   categories,
			DistanceKM:   match.DistanceKM,
			Photos:       photos,
			Actions: dto.DiscoverActionsResponse{
				CanLike:  match.Actions.CanLike,
				CanChat:  match.Actions.CanChat,
				CanBlock: match.Actions.CanBlock,
			},
			CreatedAt: match.CreatedAt,
			MatchedAt: match.MatchedAt,
		})
	}

	return dto.DiscoverResponse{
		Category:    string(list.Category),
		Title:       list.Title,
		Matches:     matches,
		TotalCount:  list.TotalCount,
		Page:        list.Page,
		Size:        list.Size,
		TotalPages:  list.TotalPages,
		HasNext:     list.HasNext,
		HasPrevious: list.HasPrevious,
		Skipped:     list.Skipped,
	}
}
