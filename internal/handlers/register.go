package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/services"
	"github.com/sbilibin2017/gw-wardrobe/internal/validation"
)

//go:generate mockgen -source=register.go -destination=mock_register.go -package=handlers

// Registration outcomes reported to the RegistrationObserver.
const (
	OutcomeCreated   = "created"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
	OutcomeError     = "error"
)

const msgDuplicateEmail = "User with this email already exists."

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.UserDB, error)
}

// RegistrationObserver is notified once per registration attempt.
type RegistrationObserver interface {
	ObserveRegistration(outcome string)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Validates the request, hashes the password and stores the user. Every validation error is reported at once.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User created"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request"
// @Failure 409 {object} models.ValidationErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer, observer RegistrationObserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			observer.ObserveRegistration(OutcomeInvalid)
			writeReport(w, http.StatusBadRequest, validation.Report{
				validation.SchemaField: {validation.MsgInvalidInput},
			})
			return
		}

		req, report := validation.DecodeRegistration(raw)
		if report.Empty() {
			report = validation.ValidateRegistration(req)
		}
		if !report.Empty() {
			logger.Log.Infow("registration rejected", "fields", report.Fields())
			observer.ObserveRegistration(OutcomeInvalid)
			writeReport(w, http.StatusBadRequest, report)
			return
		}

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				observer.ObserveRegistration(OutcomeDuplicate)
				writeReport(w, http.StatusConflict, validation.Report{
					validation.FieldEmail: {msgDuplicateEmail},
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				observer.ObserveRegistration(OutcomeError)
				writeError(w, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		observer.ObserveRegistration(OutcomeCreated)
		writeJSON(w, http.StatusCreated, models.NewRegisterResponse(*user))
	}
}

// RegisterRegisterHandler registers the user registration route
func RegisterRegisterHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/register", h)
}
