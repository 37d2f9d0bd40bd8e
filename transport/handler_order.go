package transport

import (
	"encoding/json"
	"net/http"

	"github.com/decomizer/storefront/constant"
	"github.com/decomizer/storefront/model"
	utilsContext "github.com/decomizer/storefront/utils/context"
	"github.com/decomizer/storefront/utils/errors"
	validatorx "github.com/decomizer/storefront/utils/validator"
)

// CreateOrder handler
// @Summary Create order
// @Description Reserve stock and create a pending order
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} model.OrderResponse
// @Failure 400 {object} errorResponse
// @Router /api/orders [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// PayOrder handler
// @Summary Pay order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/orders/{id}/pay [post]
func (s *RestHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.OrderApp.PayOrder(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CancelOrder is called by the expiration worker.
func (s *RestHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.OrderApp.CancelOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
