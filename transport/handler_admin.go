package transport

import (
	"net/http"

	"github.com/decomizer/storefront/model"
)

// GetDashboard handler
// @Summary Admin dashboard snapshot
// @Description Aggregated store metrics, computed on every request
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/dashboard [get]
func (s *RestHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := s.DashboardApp.GetDashboard(r.Context())
	if err != nil {
		ce := toCustomError(err)
		writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
			Code:    ce.ErrorCode(),
			Message: ce.Error(),
			Error:   ce.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, model.DashboardResponse{Success: true, Data: data})
}

// ListNotifications handler
// @Summary Admin notifications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Success 200 {array} model.AdminNotificationEntity
// @Router /api/admin/notifications [get]
func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	unread := r.URL.Query().Get("unread") == "true"
	res, err := s.NotificationApp.List(r.Context(), unread)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// MarkNotificationRead handler
// @Summary Mark notification read
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/admin/notifications/{id}/read [patch]
func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.NotificationApp.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
