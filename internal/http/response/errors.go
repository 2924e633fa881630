package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/something-core/internal/domain/thing"
	pkgerrors "github.com/yungbote/something-core/internal/pkg/errors"
)

// StatusFor maps a categorized service error onto an HTTP status.
func StatusFor(err error) int {
	category, ok := pkgerrors.CategoryOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch category {
	case pkgerrors.CategoryValidation:
		if pkgerrors.HasCode(err, types.CodeNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadRequest
	case pkgerrors.CategoryDependencyValidation:
		switch {
		case pkgerrors.HasCode(err, types.CodeLocked):
			return http.StatusLocked
		case pkgerrors.HasCode(err, types.CodeInvalidReference):
			return http.StatusFailedDependency
		default:
			return http.StatusConflict
		}
	default:
		return http.StatusInternalServerError
	}
}

// RespondServiceError writes err as an error envelope. Validation-class errors
// carry the inner error's message, code and field data; the rest only expose
// the outer message.
func RespondServiceError(c *gin.Context, err error) {
	status := StatusFor(err)
	apiErr := APIError{Message: "unknown error"}
	if err != nil {
		apiErr.Message = err.Error()
	}
	var outer *pkgerrors.Error
	if errors.As(err, &outer) {
		apiErr.Code = outer.Category.String()
		var inner *pkgerrors.Error
		if status < http.StatusInternalServerError && errors.As(outer.Err, &inner) {
			apiErr.Message = inner.Message
			apiErr.Code = inner.Code
			apiErr.Data = inner.Data
		}
	}
	c.JSON(status, ErrorEnvelope{Error: apiErr})
}
