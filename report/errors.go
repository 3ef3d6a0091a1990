package report

import "github.com/UzielLH/PSP/internal/apperr"

var (
	errNoChartData = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "not enough data to render the chart: no time recorded yet",
	}

	errRenderChart = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "rendering chart image %s failed",
	}

	errWritePDF = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "writing PDF report %s failed",
	}
)
