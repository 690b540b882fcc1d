package api

import (
	"errors"
	"net/http"

	"sumcoach/session"

	"github.com/gin-gonic/gin"
)

// editRequest is the body of the two draft edit endpoints
type editRequest struct {
	Text string `json:"text"`
}

// RegisterSessionRoutes registers the training-session endpoints. Every
// intent endpoint responds with the post-intent snapshot so clients never
// need a follow-up GET.
func RegisterSessionRoutes(r *gin.Engine, engine *session.Engine) {
	g := r.Group("/api/session")

	g.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, engine.Snapshot())
	})

	g.POST("/start", func(c *gin.Context) {
		respond(c, engine, http.StatusAccepted, engine.Start())
	})

	g.POST("/one-sentence", func(c *gin.Context) {
		var req editRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		engine.EditOneSentence(req.Text)
		c.JSON(http.StatusOK, engine.Snapshot())
	})

	g.POST("/three-lines", func(c *gin.Context) {
		var req editRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		engine.EditThreeLines(req.Text)
		c.JSON(http.StatusOK, engine.Snapshot())
	})

	g.POST("/advance/summary-one", func(c *gin.Context) {
		respond(c, engine, http.StatusOK, engine.AdvanceToSummaryOne())
	})

	g.POST("/advance/summary-three", func(c *gin.Context) {
		respond(c, engine, http.StatusOK, engine.AdvanceToSummaryThree())
	})

	g.POST("/back", func(c *gin.Context) {
		respond(c, engine, http.StatusOK, engine.GoBack())
	})

	g.POST("/submit", func(c *gin.Context) {
		respond(c, engine, http.StatusAccepted, engine.Submit())
	})

	g.POST("/retry", func(c *gin.Context) {
		respond(c, engine, http.StatusAccepted, engine.Retry())
	})
}

// respond maps intent errors onto status codes: wrong-step intents are
// conflicts, failed validation gates are unprocessable.
func respond(c *gin.Context, engine *session.Engine, okStatus int, err error) {
	switch {
	case err == nil:
		c.JSON(okStatus, engine.Snapshot())
	case errors.Is(err, session.ErrDraftNotReady):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
