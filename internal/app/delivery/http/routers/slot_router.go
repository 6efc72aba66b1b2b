package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *controllers.SlotController) {
	router.Get("/slots", slotController.ListAvailableSlots)
	router.Post("/slots/validate", slotController.ValidateBooking)
	router.With(middlewares.RequireRoles(constvars.RoleClinicAdmin)).Get("/booking-attempts", slotController.FindBookingAttempts)
}
