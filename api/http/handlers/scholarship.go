package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/api/http/presenter"
	"github.com/artem13815/scholarship/pkg/browse"
	"github.com/artem13815/scholarship/pkg/recommend"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

type ScholarshipHandler struct {
	uc  recommend.UseCase
	log *zap.Logger
	now func() time.Time
}

func NewScholarshipHandler(uc recommend.UseCase, log *zap.Logger) *ScholarshipHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScholarshipHandler{uc: uc, log: log, now: time.Now}
}

// List returns the catalog.
// @Summary     List scholarships
// @Description Returns every scholarship, optionally filtered by amount range and deadline window and sorted.
// @Tags        scholarships
// @Produce     json
// @Param       amount   query string false "all, small, medium, large, very-large"
// @Param       deadline query string false "all, urgent, upcoming, future"
// @Param       sort     query string false "relevance, amount, deadline"
// @Success     200 {array}  scholarship.Scholarship
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /scholarships [get]
func (h *ScholarshipHandler) List(c *fiber.Ctx) error {
	q := browse.Query{
		Amount:   strings.TrimSpace(c.Query("amount")),
		Deadline: strings.TrimSpace(c.Query("deadline")),
		Sort:     strings.TrimSpace(c.Query("sort")),
		Now:      h.now(),
	}
	if err := q.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	items, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		h.log.Error("list scholarships", zap.Error(err))
		return presenter.Failure(c, http.StatusInternalServerError, "Server error", err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Match ranks the catalog against a student profile.
// @Summary     Match scholarships
// @Description Scores every scholarship against the profile and returns those scoring at least 30, best first.
// @Tags        scholarships
// @Accept      json
// @Produce     json
// @Param       input body scholarship.Profile true "student profile"
// @Success     200 {array}  scholarship.Scored
// @Failure     400 {object} presenter.ErrorResponse
// @Failure     429 {object} presenter.ErrorResponse
// @Failure     500 {object} presenter.ErrorResponse
// @Router      /match [post]
func (h *ScholarshipHandler) Match(c *fiber.Ctx) error {
	var p scholarship.Profile
	if err := c.BodyParser(&p); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.uc.Match(c.UserContext(), p)
	if err != nil {
		h.log.Error("match scholarships", zap.Error(err))
		return presenter.Failure(c, http.StatusInternalServerError, "Matching error", err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Seed replaces the stored catalog with the built-in list.
// @Summary  Seed catalog
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /admin/seed [post]
func (h *ScholarshipHandler) Seed(c *fiber.Ctx) error {
	n, err := h.uc.Seed(c.UserContext())
	if err != nil {
		h.log.Error("seed catalog", zap.Error(err))
		return presenter.Failure(c, http.StatusInternalServerError, "Server error", err)
	}
	h.log.Info("catalog seeded", zap.Int("count", n))
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Scholarships seeded", "count": n})
}
