package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{
		permissionService: permissionService,
	}
}

// Summary handles GET /permissions/summary
func (h *permissionHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := permission.SummaryRequest{
		Period: report.PeriodRequest{
			Month: r.URL.Query().Get("month"),
			Year:  r.URL.Query().Get("year"),
		},
	}

	summary, err := h.permissionService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, permission.SummarySuccessMessage, summary)
}
