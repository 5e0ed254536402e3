package handlers

import (
	"errors"
	"net/http"

	authsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/auth"
	discoverysvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/transport/http/dto"
	httperrors "github.com/Sagar2372004/punarmilan-backend-sub001/internal/transport/http/errors"
)

type StatsHandler struct {
	service *discoverysvc.Service
}

func NewStatsHandler(service *discoverysvc.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DISCOVERY_SERVICE_UNAVAILABLE", "discovery service is unavailable")
		return
	}

	stats, err := h.service.Stats(r.Context(), identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, discoverysvc.ErrRequesterNotFound):
			writeNotFound(w, "PROFILE_NOT_FOUND", "requester profile not found")
		case errors.Is(err, discoverysvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid stats request")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to load discovery stats")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.DiscoverStatsResponse{
		New:         stats.New,
		Today:       stats.Today,
		Mine:        stats.Mine,
		Near:        stats.Near,
		More:        stats.More,
		Total:       stats.Total,
		Unviewed:    stats.Unviewed,
		MutualLikes: stats.MutualLikes,
		LastUpdated: stats.LastUpdated,
	})
}
