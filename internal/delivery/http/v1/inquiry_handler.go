package v1

import (
	"errors"
	"io"
	"net/http"
	"project-inquiry-backend/internal/delivery/http/response"
	"project-inquiry-backend/internal/domain"
	"project-inquiry-backend/pkg/apperror"
	"project-inquiry-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type InquiryHandler struct {
	inquiryUC domain.InquiryUsecase
}

// NewInquiryHandler registers the inquiry routes (public, no auth required)
func NewInquiryHandler(public gin.IRoutes, inquiryUC domain.InquiryUsecase, middlewares ...gin.HandlerFunc) {
	handler := &InquiryHandler{
		inquiryUC: inquiryUC,
	}

	public.POST("/send-email", append(middlewares, handler.SubmitInquiry)...)
}

// SubmitInquiry godoc
// @Summary      Submit Project Inquiry
// @Description  Emails the inquiry to the operator mailbox, then emails a generated acknowledgement to the client.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        inquiry  body      domain.Inquiry  true  "Project Inquiry"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-email [post]
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var req domain.Inquiry
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			if logger := security.DefaultLogger(); logger != nil {
				logger.LogBodyTooLarge(c.Request.Context(), c.ClientIP(), c.GetString(response.RequestIDKey), maxErr.Limit)
			}
			c.Error(apperror.TooLarge("Request body too large"))
			return
		}
		c.Error(apperror.BadRequest("Invalid request body", nil))
		return
	}

	if err := h.inquiryUC.Submit(c.Request.Context(), &req); err != nil {
		h.handleSubmitError(c, &req, err)
		return
	}

	response.Success(c, http.StatusOK, "Email sent successfully and auto-reply generated", nil)
}

func (h *InquiryHandler) handleSubmitError(c *gin.Context, req *domain.Inquiry, err error) {
	logger := security.DefaultLogger()
	requestID := c.GetString(response.RequestIDKey)

	if errors.Is(err, domain.ErrMissingFields) {
		var vErr *domain.ValidationError
		if logger != nil && errors.As(err, &vErr) {
			logger.LogValidationFailed(c.Request.Context(), c.ClientIP(), requestID, vErr.Fields)
		}
		c.Error(apperror.BadRequest("Missing required fields", nil))
		return
	}

	var dErr *domain.DispatchError
	if logger != nil && errors.As(err, &dErr) {
		logger.LogDispatchFailed(c.Request.Context(), req.ClientEmail, requestID, string(dErr.Stage), dErr.Err)
	}
	c.Error(apperror.Internal(err))
}
