// Package server exposes the optimizer over HTTP for headless and batch
// use. All dimensions in requests and responses are centimeters.
package server

import (
	"fmt"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rollwise/rollcut/internal/engine"
	"github.com/rollwise/rollcut/internal/export"
	"github.com/rollwise/rollcut/internal/model"
)

// OptimizeRequest is the JSON body for optimization endpoints.
type OptimizeRequest struct {
	Roll     model.Roll              `json:"roll"`
	Pieces   []model.Piece           `json:"pieces"`
	Settings *model.OptimizeSettings `json:"settings"`
}

// OptimizeResponse wraps a computed plan with its headline statistics.
type OptimizeResponse struct {
	Plan          model.CutPlan `json:"plan"`
	PlacedCount   int           `json:"placed_count"`
	UnplacedCount int           `json:"unplaced_count"`
	Utilization   float64       `json:"utilization"`
}

// NewRouter builds the HTTP API.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", handleHealth)
	api := r.Group("/api")
	{
		api.POST("/optimize", handleOptimize)
		api.POST("/render", handleRender)
		api.POST("/compare", handleCompare)
		api.POST("/compare/chart", handleCompareChart)
	}

	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseRequest binds and validates the shared optimize request body.
func parseRequest(c *gin.Context) (OptimizeRequest, bool) {
	var req OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, false
	}
	if req.Roll.Width <= 0 || req.Roll.Length <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roll width and length must be positive"})
		return req, false
	}
	for i, p := range req.Pieces {
		if p.Width <= 0 || p.Length <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("piece %d: width and length must be positive", i)})
			return req, false
		}
		if p.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("piece %d: quantity must not be negative", i)})
			return req, false
		}
	}
	return req, true
}

func (req OptimizeRequest) settings() model.OptimizeSettings {
	if req.Settings != nil {
		return *req.Settings
	}
	return model.DefaultSettings()
}

func handleOptimize(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	opt := engine.New(req.settings())
	plan := opt.Optimize(req.Roll, req.Pieces)

	c.JSON(http.StatusOK, OptimizeResponse{
		Plan:          plan,
		PlacedCount:   plan.PlacedCount(),
		UnplacedCount: plan.UnplacedCount(req.Pieces),
		Utilization:   plan.Utilization(),
	})
}

// handleRender returns the plan as a PNG image instead of JSON.
func handleRender(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	opt := engine.New(req.settings())
	plan := opt.Optimize(req.Roll, req.Pieces)
	if len(plan.Placements) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no pieces could be placed"})
		return
	}

	img := export.RenderPlan(plan)
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := png.Encode(c.Writer, img); err != nil {
		// Headers are already sent; nothing useful left to do.
		_ = c.Error(err)
	}
}

func handleCompare(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	scenarios := engine.BuildDefaultScenarios(req.settings())
	results := engine.CompareScenarios(scenarios, req.Roll, req.Pieces)
	c.JSON(http.StatusOK, results)
}

// handleCompareChart renders the scenario comparison as an HTML bar chart.
func handleCompareChart(c *gin.Context) {
	req, ok := parseRequest(c)
	if !ok {
		return
	}

	scenarios := engine.BuildDefaultScenarios(req.settings())
	results := engine.CompareScenarios(scenarios, req.Roll, req.Pieces)

	names := make([]string, 0, len(results))
	waste := make([]opts.BarData, 0, len(results))
	placed := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		names = append(names, r.Scenario.Name)
		waste = append(waste, opts.BarData{Value: r.WastePercent})
		placed = append(placed, opts.BarData{Value: r.PlacedCount})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Scenario Comparison",
			Subtitle: fmt.Sprintf("Roll %.0f x %.0f cm", req.Roll.Width, req.Roll.Length),
		}),
	)
	bar.SetXAxis(names).
		AddSeries("Waste %", waste).
		AddSeries("Pieces placed", placed)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := bar.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
