package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	// Internal detail stays in the server log, never in the payload.
	log.Println("internal error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

// FieldError is one field-level violation in a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidationFailed(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "details": details})
}

// BindError turns a ShouldBindJSON failure into a 400. Validator errors
// become a per-field violation list; anything else (malformed JSON, type
// mismatch) becomes a plain bad-request message.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Message: messageFor(fe)})
		}
		ValidationFailed(c, details)
		return
	}
	BadRequest(c, err.Error())
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gtfield":
		return "must be after " + fe.Param()
	default:
		return "is invalid"
	}
}
