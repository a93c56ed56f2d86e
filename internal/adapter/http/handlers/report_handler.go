package handlers

import (
	request "pintura_pro/internal/adapter/http/dto/request"
	response "pintura_pro/internal/adapter/http/dto/response"
	"pintura_pro/internal/domain/period"
	"pintura_pro/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the financial overview of a period.

type ReportHandler struct {
	usecase usecase.IServiceUseCase
}

func NewReportHandler(uc usecase.IServiceUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetSummary aggregates revenue, expenses and net profit for the requested
// period. Without a period query it reports on the current month.
//
//	@Summary  Period summary
//	@Tags     relatorios
//	@Produce  json
//	@Param    periodo query string false "mes_atual|mes_anterior|ultimos_3_meses|ultimos_6_meses|ano_atual|personalizado"
//	@Success  200 {object} response.SummaryResponse
//	@Router   /relatorios/resumo [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	var q request.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}
	periodFilter, err := q.ToFilter()
	if err != nil {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}
	if periodFilter == nil {
		periodFilter = &period.Filter{Type: period.CurrentMonth}
	}

	summary, err := h.usecase.Summary(c.Request.Context(), *periodFilter)
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSummary(summary))
}
