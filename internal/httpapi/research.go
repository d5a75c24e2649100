package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davetashner/gptresearch/internal/redact"
)

// Research handles research requests.
type Research struct {
	r Researcher
}

// NewResearch returns a handler set bound to r.
func NewResearch(r Researcher) Research {
	return Research{r: r}
}

type researchRequest struct {
	// Pointer so that an empty query is distinguishable from a missing one.
	Query *string `json:"query"`
}

type researchResponse struct {
	Query  string `json:"query"`
	Result string `json:"result"`
}

// Create runs one research query.
func (h Research) Create(c *gin.Context) {
	var req researchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Query == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := h.r.Research(c.Request.Context(), *req.Query)
	if err != nil {
		slog.Warn("research request failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": redact.Error(err)})
		return
	}

	c.JSON(http.StatusOK, researchResponse{Query: *req.Query, Result: result})
}
