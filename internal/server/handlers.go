package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rpgo/coastfi-calculator/internal/domain"
	"github.com/rpgo/coastfi-calculator/internal/output"
)

// bind decodes and validates the request body, writing a 400 on failure.
func (s *Server) bind(c *gin.Context) (domain.Scenario, bool) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return domain.Scenario{}, false
	}
	sc := req.scenario()
	if err := s.parser.ValidateScenario(&sc); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_scenario",
			Message: err.Error(),
		})
		return domain.Scenario{}, false
	}
	return sc, true
}

// Evaluate handles POST /evaluate
func (s *Server) Evaluate(c *gin.Context) {
	sc, ok := s.bind(c)
	if !ok {
		return
	}
	e := s.engine.EvaluateScenario(sc)
	c.JSON(http.StatusOK, EvaluateResponse{
		Evaluation: e,
		Status:     output.StatusOf(e).String(),
		Lines:      output.ResultLines(e),
	})
}

// Project handles POST /project
func (s *Server) Project(c *gin.Context) {
	sc, ok := s.bind(c)
	if !ok {
		return
	}
	e := s.engine.EvaluateScenario(sc)
	projection := e.Projection
	if projection == nil {
		projection = []domain.ProjectionPoint{}
	}
	c.JSON(http.StatusOK, ProjectResponse{
		Name:          e.Name,
		TargetBalance: domain.Nullable(e.TargetBalance),
		Projection:    projection,
	})
}

// Chart handles POST /chart.png
func (s *Server) Chart(c *gin.Context) {
	sc, ok := s.bind(c)
	if !ok {
		return
	}
	e := s.engine.EvaluateScenario(sc)
	png, err := output.RenderProjectionChart(e, s.branding, time.Now())
	if err != nil {
		if errors.Is(err, output.ErrNoProjection) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "no_projection",
				Message: "a chart needs a positive portfolio and at least one year until target",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
