package handlers

import (
	"net/http"
	"strings"

	"bookingbridge/middleware"
	"bookingbridge/models"
	"bookingbridge/services/forwarding"
	"bookingbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// callableRequest is the body a Firebase callable client sends.
type callableRequest struct {
	Data interface{} `json:"data"`
}

// callableResponse wraps a successful callable result.
type callableResponse struct {
	Result interface{} `json:"result"`
}

type ForwardHandler struct {
	forwarder forwarding.Forwarder
}

func NewForwardHandler(forwarder forwarding.Forwarder) *ForwardHandler {
	return &ForwardHandler{forwarder: forwarder}
}

// ForwardBookingToTherapist handles the callable booking bridge endpoint.
func (h *ForwardHandler) ForwardBookingToTherapist(c *gin.Context) {
	logger := middleware.RequestLogger(c)

	var body callableRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		logger.Warn("Invalid callable request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, utils.StatusInvalidArgument, "Request body must be a JSON object with a data field.")
		return
	}

	var req models.BookingRequest
	switch data := body.Data.(type) {
	case nil:
		req = models.BookingRequest{}
	case map[string]interface{}:
		req = models.BookingRequest(data)
	default:
		utils.JSONError(c, http.StatusBadRequest, utils.StatusInvalidArgument, "Booking data must be an object.")
		return
	}
	// Postgres jsonb rejects NUL, which would fail the secondary write after the primary landed.
	if containsNUL(req) {
		utils.JSONError(c, http.StatusBadRequest, utils.StatusInvalidArgument, "Booking data must not contain NUL characters.")
		return
	}

	result, err := h.forwarder.Forward(c.Request.Context(), req, middleware.CallerIdentity(c))
	if err != nil {
		writeForwardError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, callableResponse{Result: result})
}

// writeForwardError maps gateway errors onto callable statuses. Store errors
// are only logged; the caller sees the generic message.
func writeForwardError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case forwarding.IsUnauthenticated(err):
		utils.JSONError(c, http.StatusUnauthorized, utils.StatusUnauthenticated, forwarding.MessageUnauthenticated)
	default:
		logger.Debug("Forwarding failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.StatusInternal, forwarding.MessageForwardFailed)
	}
}

// containsNUL reports whether any key or string value in v holds a U+0000.
func containsNUL(v interface{}) bool {
	switch val := v.(type) {
	case string:
		return strings.ContainsRune(val, 0)
	case models.BookingRequest:
		return containsNUL(map[string]interface{}(val))
	case map[string]interface{}:
		for k, item := range val {
			if strings.ContainsRune(k, 0) || containsNUL(item) {
				return true
			}
		}
	case []interface{}:
		for _, item := range val {
			if containsNUL(item) {
				return true
			}
		}
	}
	return false
}
