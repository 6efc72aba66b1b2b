package controllers

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/dto/requests"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

type SlotController struct {
	Log                   *zap.Logger
	SlotUsecase           contracts.SlotUsecase
	BookingAttemptUsecase contracts.BookingAttemptUsecase
}

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase, bookingAttemptUsecase contracts.BookingAttemptUsecase) *SlotController {
	return &SlotController{
		Log:                   logger,
		SlotUsecase:           slotUsecase,
		BookingAttemptUsecase: bookingAttemptUsecase,
	}
}

func (ctrl *SlotController) ListAvailableSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SlotController.ListAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	date, err := utils.ParseDate(r.URL.Query().Get(constvars.QueryParamDate))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.SlotUsecase.ListAvailableSlots(ctx, doctorID, date)
	if err != nil {
		ctrl.Log.Error("SlotController.ListAvailableSlots error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.ListAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(result.Slots)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailableSlotsSuccessMessage, result)
}

func (ctrl *SlotController) ValidateBooking(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SlotController.ValidateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	request := new(requests.ValidateSlot)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	verdict, err := ctrl.SlotUsecase.ValidateBooking(ctx, doctorID, request)
	if err != nil {
		ctrl.Log.Error("SlotController.ValidateBooking error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SlotController.ValidateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("accepted", verdict.Accepted),
		zap.String(constvars.LoggingReasonCodeKey, verdict.ReasonCode),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateBookingSuccessMessage, verdict)
}

func (ctrl *SlotController) FindBookingAttempts(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SlotController.FindBookingAttempts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if doctorID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamDoctorID))
		return
	}

	date, err := utils.ParseDate(r.URL.Query().Get(constvars.QueryParamDate))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	attempts, err := ctrl.BookingAttemptUsecase.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		buildUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingAttemptsSuccessMessage, attempts)
}

func buildUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
