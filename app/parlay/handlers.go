package parlay

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stakehouse/parlay/app/api"
	"github.com/stakehouse/parlay/models"
)

// Handler handles HTTP requests for the parlay builder
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new parlay handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// CreateSession godoc
// @Summary Open a builder session
// @Description Open a new parlay builder session with an empty slip
// @Tags parlay
// @Produce json
// @Success 201 {object} api.Response{data=SlipResponse}
// @Router /api/v1/parlays/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	sessionID := h.service.CreateSession()

	slip, err := h.service.GetSlip(c.Request.Context(), sessionID, decimal.Zero)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to open session")
		return
	}

	api.CreatedResponse(c, "Session opened", slip)
}

// GetSlip godoc
// @Summary Get the current slip
// @Description Get the slip's legs and the evaluated result for the given stake
// @Tags parlay
// @Produce json
// @Param id path string true "Session ID"
// @Param stake query number false "Stake amount" default(0)
// @Success 200 {object} api.Response{data=SlipResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id} [get]
func (h *Handler) GetSlip(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	stake := decimal.Zero
	if raw := c.Query("stake"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			api.ValidationErrorResponse(c, "Invalid stake format")
			return
		}
		stake = parsed
	}

	slip, err := h.service.GetSlip(c.Request.Context(), sessionID, stake)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Slip retrieved successfully", slip)
}

// AddLeg godoc
// @Summary Add a leg
// @Description Bind one market outcome into the slip, snapshotting its price
// @Tags parlay
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body AddLegRequest true "Leg to add"
// @Success 201 {object} api.Response{data=LegResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/legs [post]
func (h *Handler) AddLeg(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req AddLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	leg, err := h.service.AddLeg(c.Request.Context(), sessionID, req.MarketID, req.Outcome)
	if err != nil {
		if errors.Is(err, models.ErrParlayFull) {
			api.ErrorResponse(c, 409, "PARLAY_FULL", err.Error(), nil)
			return
		}
		h.renderServiceError(c, err)
		return
	}

	resp := newLegResponse(leg)
	api.CreatedResponse(c, "Leg added", resp)
}

// RemoveLeg godoc
// @Summary Remove a leg
// @Description Remove one leg from the slip by id; absent ids are a no-op
// @Tags parlay
// @Produce json
// @Param id path string true "Session ID"
// @Param leg_id path string true "Leg ID"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/legs/{leg_id} [delete]
func (h *Handler) RemoveLeg(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	legID, err := uuid.Parse(c.Param("leg_id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid leg ID format")
		return
	}

	if err := h.service.RemoveLeg(c.Request.Context(), sessionID, legID); err != nil {
		h.renderServiceError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Leg removed", nil)
}

// ClearLegs godoc
// @Summary Clear the slip
// @Description Remove every leg from the slip
// @Tags parlay
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/legs [delete]
func (h *Handler) ClearLegs(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.service.ClearLegs(c.Request.Context(), sessionID); err != nil {
		h.renderServiceError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Slip cleared", nil)
}

// Evaluate godoc
// @Summary Evaluate the slip
// @Description Recompute combined probability, odds, payout, EV, risk tier, and recommendation
// @Tags parlay
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body EvaluateRequest true "Evaluation input"
// @Success 200 {object} api.Response{data=models.ParlayResult}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/evaluate [post]
func (h *Handler) Evaluate(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	result, err := h.service.Evaluate(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.renderServiceError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Parlay evaluated successfully", result)
}

// Submit godoc
// @Summary Submit the slip
// @Description Submit the parlay for placement; the slip is cleared on acceptance
// @Tags parlay
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body SubmitRequest true "Submission input"
// @Success 201 {object} api.Response{data=TicketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, h.formatValidationErrors(err))
		return
	}

	ticket, err := h.service.Submit(c.Request.Context(), sessionID, &req)
	if err != nil {
		if h.isSubmissionError(err) {
			api.ErrorResponse(c, 400, "SUBMISSION_ERROR", err.Error(), nil)
			return
		}
		if errors.Is(err, models.ErrPlacementInFlight) {
			api.ConflictResponse(c, err.Error())
			return
		}
		if errors.Is(err, models.ErrPlacementFailed) {
			api.ErrorResponse(c, 502, "PLACEMENT_FAILED", err.Error(), nil)
			return
		}
		h.renderServiceError(c, err)
		return
	}

	api.CreatedResponse(c, "Parlay submitted successfully", ticket)
}

// GetSessionTickets godoc
// @Summary List session tickets
// @Description List the tickets recorded for this session, newest first
// @Tags parlay
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} api.Response{data=[]TicketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/parlays/sessions/{id}/tickets [get]
func (h *Handler) GetSessionTickets(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	tickets, err := h.service.GetSessionTickets(c.Request.Context(), sessionID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to fetch tickets")
		return
	}

	api.SuccessResponseWithMeta(c, 200, "Tickets retrieved successfully", tickets, api.ListMeta{Count: len(tickets)})
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.ValidationErrorResponse(c, "Invalid session ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) renderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		api.NotFoundResponse(c, "Session")
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Market")
	case errors.Is(err, models.ErrInvalidOutcome),
		errors.Is(err, models.ErrInvalidOutcomePrice),
		errors.Is(err, models.ErrInvalidMarketID),
		errors.Is(err, models.ErrInvalidMarketQuestion),
		errors.Is(err, models.ErrInvalidMarketPlatform):
		api.ValidationErrorResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, "Request failed")
	}
}

func (h *Handler) isSubmissionError(err error) bool {
	return errors.Is(err, models.ErrTooFewLegs) ||
		errors.Is(err, models.ErrInvalidStake) ||
		errors.Is(err, models.ErrDegenerateParlay)
}

func (h *Handler) formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string)
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = h.getValidationMessage(fieldError)
		}
		return fields
	}
	return err.Error()
}

func (h *Handler) getValidationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Value must be one of: " + fieldError.Param()
	case "gt":
		return "Value must be greater than " + fieldError.Param()
	case "gte":
		return "Value must be greater than or equal to " + fieldError.Param()
	default:
		return "Invalid value"
	}
}
