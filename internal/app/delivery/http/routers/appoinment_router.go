package routers

import (
	"clinic-booking-service/internal/app/delivery/http/controllers"
	"clinic-booking-service/internal/app/delivery/http/middlewares"
	"clinic-booking-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.With(middlewares.RequireRoles(constvars.RoleReceptionist, constvars.RoleClinicAdmin)).Post("/", appointmentController.Book)
	router.Get("/{appointmentId}/transitions", appointmentController.AllowedTransitions)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleReceptionist, constvars.RoleClinicAdmin)).Patch("/{appointmentId}/status", appointmentController.UpdateStatus)
}
