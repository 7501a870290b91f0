package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
	"github.com/codevance-sas/Nodal-API/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Calculate runs one pressure traverse. A positive targetBhp switches to
// target mode, solving for the surface pressure instead.
func (h *Handler) Calculate(c *gin.Context) {
	var req service.TraverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Logger.Errorf("invalid traverse request: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	req.Control = stepControl()

	if req.TargetBHP > 0 {
		sol, err := h.svc.SolveTargetBHP(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusOK, success(sol))
		return
	}

	res, err := h.svc.CalculateTraverse(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) CompareMethods(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	req.Control = stepControl()

	res, err := h.svc.CompareMethods(c.Request.Context(), &req.TraverseRequest, req.Methods)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) RecommendMethod(c *gin.Context) {
	var req service.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(h.svc.RecommendMethod(&req)))
}

func (h *Handler) ListMethods(c *gin.Context) {
	c.JSON(http.StatusOK, success(hydraulics.Methods()))
}

func (h *Handler) ExampleInput(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.svc.ExampleTraverseInput()))
}

func (h *Handler) FlowRateSensitivity(c *gin.Context) {
	var req service.FlowRateSensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	req.Base.Control = stepControl()

	points, err := h.svc.FlowRateSensitivity(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(points))
}

func (h *Handler) TubingSensitivity(c *gin.Context) {
	var req service.TubingSensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	req.Base.Control = stepControl()

	points, err := h.svc.TubingSensitivity(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(points))
}

// ExportProfile runs a traverse and streams the profile as a workbook.
func (h *Handler) ExportProfile(c *gin.Context) {
	var req service.TraverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	req.Control = stepControl()

	res, err := h.svc.CalculateTraverse(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	f, err := h.svc.ExportProfile(res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	defer f.Close()

	fileName := url.PathEscape("pressure-profile-" + res.Method + ".xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Logger.Errorf("write workbook failed: %v", err)
	}
}

func (h *Handler) CalculateGasPipeline(c *gin.Context) {
	var req service.GasPipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	res, err := h.svc.CalculateGasPipeline(&req, stepControl())
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) GasPipelineDiameter(c *gin.Context) {
	var req service.DiameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	res, err := h.svc.GasPipelineDiameter(&req, stepControl())
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) GasPipelineSensitivity(c *gin.Context) {
	var req service.GasSensitivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	res, err := h.svc.GasPipelineSensitivity(&req, stepControl())
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) CompressorStation(c *gin.Context) {
	var req service.CompressorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	res, err := h.svc.CompressorStation(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))
}

func (h *Handler) ListGasEquations(c *gin.Context) {
	c.JSON(http.StatusOK, success(hydraulics.PipelineEquations()))
}

func (h *Handler) GasExampleInput(c *gin.Context) {
	c.JSON(http.StatusOK, success(h.svc.ExampleGasPipelineInput()))
}

func (h *Handler) ImportSurveys(c *gin.Context) {
	var req importSurveysRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Logger.Errorf("invalid survey upload: %v", err)
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	file, err := req.File.Open()
	if err != nil {
		logger.Logger.Errorf("open uploaded file failed: %v", err)
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	defer file.Close()

	res, err := h.svc.ImportSurveys(file, req.WellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(res))

	logger.Logger.Infof("imported %d survey stations for well %s", res.ImportedRows, req.WellID)
}

func (h *Handler) ListSurveys(c *gin.Context) {
	var query listSurveysRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, fail(errBadRequest, err.Error()))
		return
	}
	surveys, err := h.svc.ListSurveys(query.WellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(surveys))
}

func (h *Handler) ListWells(c *gin.Context) {
	wells, err := h.svc.ListWells()
	if err != nil {
		c.JSON(http.StatusInternalServerError, fail(errInternalServer, err.Error()))
		return
	}
	c.JSON(http.StatusOK, success(wells))
}
