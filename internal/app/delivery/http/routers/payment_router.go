package routers

import (
	"halo-optom-service/internal/app/delivery/http/controllers"
	"halo-optom-service/internal/app/delivery/http/middlewares"
	"halo-optom-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRouter(router chi.Router, mw *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	requireAdmin := mw.RequireRoles(constvars.HaloRoleAdmin, constvars.HaloRoleSuperadmin)

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)

		r.Post("/", paymentController.CreatePayment)
		r.With(requireAdmin).Get("/pending", paymentController.ListPendingPayments)
		r.Get("/{payment_id}", paymentController.GetPaymentByID)
		r.With(requireAdmin).Get("/{payment_id}/audit-logs", paymentController.ListPaymentAuditLogs)
		r.Post("/{payment_id}/proof", paymentController.SubmitProof)
		r.With(requireAdmin).Post("/{payment_id}/verify", paymentController.VerifyPayment)
		r.With(requireAdmin).Post("/{payment_id}/reject", paymentController.RejectPayment)
		r.With(requireAdmin).Post("/{payment_id}/check-expiry", paymentController.CheckPaymentExpiry)
		r.With(requireAdmin).Post("/{payment_id}/mark-paid", paymentController.MarkPaymentPaid)
		r.Post("/{payment_id}/cancel", paymentController.CancelPayment)
	})
}
