package handler

import (
	"net/http"

	"github.com/gdugdh24/mentorship-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/activity"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/criteria"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/match"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/mentor"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	finder    *mentor.Finder
	lifecycle *match.LifecycleUseCase
	activity  *activity.ActivityUseCase
}

func NewMatchHandler(finder *mentor.Finder, lifecycle *match.LifecycleUseCase, activity *activity.ActivityUseCase) *MatchHandler {
	return &MatchHandler{
		finder:    finder,
		lifecycle: lifecycle,
		activity:  activity,
	}
}

// CreateRequestRequest is a mentee's mentoring request. Length limits are
// enforced by match.LifecycleUseCase.
type CreateRequestRequest struct {
	MentorID string `json:"mentor_id" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// RespondRequest is the mentor's answer; option 1 accepts, 2 rejects
type RespondRequest struct {
	MatchID string `json:"match_id" binding:"required,uuid"`
	Option  int    `json:"option" binding:"required,oneof=1 2"`
}

// CountResponse is the body of POST /match/mentors/count
type CountResponse struct {
	Count int `json:"count"`
}

// SearchMentors handles POST /match/mentors
// @Summary Find mentors
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body criteria.RawCriteria true "Career and expertise filter"
// @Success 200 {object} mentor.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /match/mentors [post]
func (h *MatchHandler) SearchMentors(c *gin.Context) {
	var raw criteria.RawCriteria
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, bindError(domain.ErrInvalidCriteria, err))
		return
	}

	result, err := h.finder.Search(c.Request.Context(), middleware.CurrentUserID(c), raw)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CountMentors handles POST /match/mentors/count
// @Summary Count mentors
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body criteria.RawCriteria true "Career and expertise filter"
// @Success 200 {object} CountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /match/mentors/count [post]
func (h *MatchHandler) CountMentors(c *gin.Context) {
	var raw criteria.RawCriteria
	if err := c.ShouldBindJSON(&raw); err != nil {
		writeError(c, bindError(domain.ErrInvalidCriteria, err))
		return
	}

	count, err := h.finder.Count(c.Request.Context(), middleware.CurrentUserID(c), raw)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// CareerData handles GET /match/career-data
// @Summary Career enumerations
// @Description Codes and names for area, role, years and educational background
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.CareerEnumerations
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /match/career-data [get]
func (h *MatchHandler) CareerData(c *gin.Context) {
	enums, err := h.finder.CareerData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, enums)
}

// ExpertiseData handles GET /match/expertise-data
// @Summary Expertise tags
// @Description Codes and names of the expertise tags usable in a mentor filter
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.ExpertiseTag
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /match/expertise-data [get]
func (h *MatchHandler) ExpertiseData(c *gin.Context) {
	tags, err := h.finder.ExpertiseData(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// CreateRequest handles POST /match/requests
// @Summary Request mentoring
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateRequestRequest true "Mentor and message"
// @Success 201 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /match/requests [post]
func (h *MatchHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(domain.ErrInvalidInput, err))
		return
	}

	mentorID, err := uuid.Parse(req.MentorID)
	if err != nil {
		writeError(c, domain.ErrUnknownMentor)
		return
	}

	m, err := h.lifecycle.Request(c.Request.Context(), middleware.CurrentUserID(c), match.RequestInput{
		MentorID: mentorID,
		Subject:  req.Subject,
		Content:  req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// Respond handles POST /match/responses
// @Summary Accept or reject a mentoring request
// @Tags match
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RespondRequest true "Match and option"
// @Success 200 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /match/responses [post]
func (h *MatchHandler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, bindError(domain.ErrInvalidInput, err))
		return
	}

	matchID, err := uuid.Parse(req.MatchID)
	if err != nil {
		writeError(c, domain.NewInputError("match_id", "must be a UUID"))
		return
	}

	m, err := h.lifecycle.Respond(c.Request.Context(), middleware.CurrentUserID(c), matchID, domain.ResponseOption(req.Option))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// Activity handles GET /match/activity
// @Summary Pending, accepted, rejected and requested matches of the caller
// @Tags match
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.Activity
// @Failure 401 {object} ErrorResponse
// @Router /match/activity [get]
func (h *MatchHandler) Activity(c *gin.Context) {
	view, err := h.activity.ActivityFor(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
