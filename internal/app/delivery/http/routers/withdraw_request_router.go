package routers

import (
	"halo-optom-service/internal/app/delivery/http/controllers"
	"halo-optom-service/internal/app/delivery/http/middlewares"
	"halo-optom-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachWithdrawRequestRouter(router chi.Router, mw *middlewares.Middlewares, withdrawRequestController *controllers.WithdrawRequestController) {
	requireAdmin := mw.RequireRoles(constvars.HaloRoleAdmin, constvars.HaloRoleSuperadmin)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.With(mw.RequireRoles(constvars.HaloRoleOptometrist)).Post("/", withdrawRequestController.CreateWithdrawRequest)
		r.With(requireAdmin).Get("/", withdrawRequestController.ListWithdrawRequests)
		r.With(requireAdmin).Get("/{withdraw_request_id}", withdrawRequestController.GetWithdrawRequestByID)
		r.With(requireAdmin).Post("/{withdraw_request_id}/approve", withdrawRequestController.ApproveWithdrawRequest)
		r.With(requireAdmin).Post("/{withdraw_request_id}/reject", withdrawRequestController.RejectWithdrawRequest)
		r.With(requireAdmin).Post("/{withdraw_request_id}/mark-paid", withdrawRequestController.MarkWithdrawRequestPaid)
	})
}
