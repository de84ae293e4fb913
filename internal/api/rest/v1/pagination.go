package v1

import (
	"fmt"
	"net/http"

	"github.com/wesrioswart/nervecontract/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

// bindPagination overrides the query defaults with the limit and offset
// parameters when present. A non-numeric value writes a 400 response and
// returns false; the defaults stay untouched.
func bindPagination(ctx *gin.Context, limit *int, offset *int) bool {
	if value := ctx.Query("limit"); len(value) > 0 {
		parsed, err := utils.ConvertToInt(value)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid limit parameter: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return false
		}
		*limit = parsed
	}

	if value := ctx.Query("offset"); len(value) > 0 {
		parsed, err := utils.ConvertToInt(value)
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = fmt.Sprintf("invalid offset parameter: %v", err.Error())
			ctx.JSON(http.StatusBadRequest, errorResponse)
			return false
		}
		*offset = parsed
	}

	return true
}
