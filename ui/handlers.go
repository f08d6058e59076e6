package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gobayes/adapters/present"
	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/domain/tables"
	apperrors "gobayes/internal/errors"
)

// createAnalysisRequest is the POST /api/analyses body
type createAnalysisRequest struct {
	Name      string    `json:"name"`
	Counts    [][]int   `json:"counts" binding:"required"`
	RowLabels [2]string `json:"row_labels"`
	ColLabels [2]string `json:"col_labels"`
	Seed      int64     `json:"seed"`

	// Optional per-group Beta priors; Beta(1,1) when omitted
	Priors *priorsPayload `json:"priors"`
}

type priorsPayload struct {
	Alpha1 float64 `json:"alpha1"`
	Beta1  float64 `json:"beta1"`
	Alpha2 float64 `json:"alpha2"`
	Beta2  float64 `json:"beta2"`
}

// updateAnalysisRequest is the POST /api/analyses/:id/updates body
type updateAnalysisRequest struct {
	Successes [2]int `json:"successes"`
	Trials    [2]int `json:"trials"`
}

func (s *Server) handleCreateAnalysis(c *gin.Context) {
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := tables.FromRows(req.Counts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.RowLabels[0] != "" || req.RowLabels[1] != "" {
		table.RowLabels = req.RowLabels
	}
	if req.ColLabels[0] != "" || req.ColLabels[1] != "" {
		table.ColLabels = req.ColLabels
	}

	var priors *bayes.GroupPriors
	if req.Priors != nil {
		priors = &bayes.GroupPriors{
			{Alpha: req.Priors.Alpha1, Beta: req.Priors.Beta1},
			{Alpha: req.Priors.Alpha2, Beta: req.Priors.Beta2},
		}
	}

	analysis, err := s.service.Fit(c.Request.Context(), app.FitRequest{
		Name:   req.Name,
		Table:  table,
		Priors: priors,
		Seed:   req.Seed,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, analysis)
}

func (s *Server) handleListAnalyses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	analyses, err := s.service.List(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

func (s *Server) handleGetAnalysis(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	analysis, err := s.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleUpdateAnalysis(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req updateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := s.service.Update(c.Request.Context(), id, app.UpdateRequest{
		Successes: req.Successes,
		Trials:    req.Trials,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (s *Server) handleSummary(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, method := summaryParams(c)
	summary, err := s.service.Summarize(c.Request.Context(), id, level, method)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleReport(c *gin.Context) {
	id, err := core.ParseAnalysisID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := s.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	level, method := summaryParams(c)
	summary, err := s.service.Summarize(c.Request.Context(), id, level, method)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", present.RenderHTML(analysis.Name, summary))
}

func summaryParams(c *gin.Context) (float64, bayes.IntervalMethod) {
	level, err := strconv.ParseFloat(c.DefaultQuery("level", "0.95"), 64)
	if err != nil {
		level = bayes.DefaultLevel
	}
	method := bayes.IntervalMethod(c.DefaultQuery("method", string(bayes.MethodHPD)))
	return level, method
}

func writeError(c *gin.Context, err error) {
	switch {
	case core.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case core.IsInvalidInput(err), core.IsInsufficientSamples(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
			"code":  apperrors.GetCode(err),
		})
	}
}
