package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"reddit-insights-service/analysis"
	"reddit-insights-service/config"
	"reddit-insights-service/model"
	"reddit-insights-service/service"
)

// Handler exposes the fetch/normalize/enrich pipeline over HTTP
type Handler struct {
	svc *service.Service
	cfg *config.Config
}

func New(svc *service.Service, cfg *config.Config) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

func positiveInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("must be a positive integer")
	}
	return n, nil
}

func sentimentFilter(c *gin.Context) (string, bool) {
	label := c.Query("sentiment")
	switch label {
	case "", model.LabelPositive, model.LabelNeutral, model.LabelNegative:
		return label, true
	}
	return "", false
}

// cloudOptions resolves word cloud rendering parameters, falling back
// to configured defaults
func (h *Handler) cloudOptions(c *gin.Context) (analysis.CloudOptions, error) {
	opts := analysis.CloudOptions{
		Width:    h.cfg.WordCloud.Width,
		Height:   h.cfg.WordCloud.Height,
		FontFile: h.cfg.WordCloud.FontFile,
	}

	if raw := c.Query("width"); raw != "" {
		width, err := positiveInt(raw)
		if err != nil {
			return opts, fmt.Errorf("width %v", err)
		}
		opts.Width = width
	}
	if raw := c.Query("height"); raw != "" {
		height, err := positiveInt(raw)
		if err != nil {
			return opts, fmt.Errorf("height %v", err)
		}
		opts.Height = height
	}

	background, err := analysis.ParseHexColor(c.DefaultQuery("background", h.cfg.WordCloud.Background))
	if err != nil {
		return opts, err
	}
	opts.Background = background
	return opts, nil
}
