package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure in the API (and a few bare acknowledgements) answers with
// the same one-field body: {"message": string}. Keeping the writers here
// stops handlers from drifting into richer error envelopes.

type body struct {
	Message string `json:"message"`
}

// Message writes {"message": msg} with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, body{Message: msg})
}

// AbortMessage writes {"message": msg} and halts the handler chain. Used by
// middleware so no downstream handler runs after a rejection.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, body{Message: msg})
}

// Internal hides store and infrastructure detail behind a generic 500.
func Internal(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
