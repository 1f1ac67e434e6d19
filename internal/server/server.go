//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/notify"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

// Service is the lifecycle and account API the handlers call.
type Service interface {
	RegisterProfile(ctx context.Context, userID string, role lifecycle.Role, in storage.ProfileInput) (lifecycle.User, error)
	Me(ctx context.Context, userID string) (lifecycle.User, error)
	ResolveActor(ctx context.Context, userID string, role lifecycle.Role) (lifecycle.Actor, error)
	UpdateAvailability(ctx context.Context, actor lifecycle.Actor, in storage.AvailabilityInput) (lifecycle.User, error)
	Verify(ctx context.Context, actor lifecycle.Actor, userID string, decision lifecycle.VerificationStatus, notes string) (lifecycle.User, error)
	PendingVerifications(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.User, error)
	Users(ctx context.Context, actor lifecycle.Actor, role lifecycle.Role) ([]lifecycle.User, error)

	CreateRequest(ctx context.Context, actor lifecycle.Actor, in lifecycle.CreateInput) (lifecycle.FoodRequest, error)
	Accept(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.AcceptInput) (storage.Outcome, error)
	PickUp(ctx context.Context, actor lifecycle.Actor, requestID string) (storage.Outcome, error)
	StartTransit(ctx context.Context, actor lifecycle.Actor, requestID string) (storage.Outcome, error)
	Deliver(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.DeliverInput) (storage.Outcome, error)
	ConfirmReceipt(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.ConfirmInput) (storage.Outcome, error)
	RequestExtraVolunteer(ctx context.Context, actor lifecycle.Actor, requestID, reason string) (storage.Outcome, error)

	GetRequest(ctx context.Context, actor lifecycle.Actor, requestID string) (lifecycle.FoodRequest, error)
	RequestActions(ctx context.Context, actor lifecycle.Actor, requestID string) (storage.ActionsView, error)
	NGORequests(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error)
	DonorFeed(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error)
	DonorDonations(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error)
	VolunteerTasks(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error)
	AuditLogs(ctx context.Context, actor lifecycle.Actor, limit int) ([]storage.AuditLog, error)
}

// PhotoStore uploads delivery proof photos.
type PhotoStore interface {
	UploadBase64(ctx context.Context, requestID, encoded string) (string, error)
}

// Hub runs websocket sessions.
type Hub interface {
	Serve(ctx context.Context, conn notify.Conn, userID string, role lifecycle.Role)
}

type Options struct {
	Addr            string
	JWTSecret       []byte
	Photos          PhotoStore
	Hub             Hub
	Logger          *zap.Logger
	ShutdownTimeout time.Duration
}

type Server struct {
	service         Service
	secret          []byte
	photos          PhotoStore
	hub             Hub
	logger          *zap.Logger
	addr            string
	shutdownTimeout time.Duration

	server *http.Server
}

func New(service Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Server{
		service:         service,
		secret:          opts.JWTSecret,
		photos:          opts.Photos,
		hub:             opts.Hub,
		logger:          logger.Named("http"),
		addr:            opts.Addr,
		shutdownTimeout: timeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. Request contexts
// derive from ctx, so websocket sessions end with it.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down server")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server shutdown completed")
	return nil
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(s.accessLogMiddleware)

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.handleWebsocket).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.authMiddleware)

	// Registration is the one call made before a profile exists.
	api.HandleFunc("/profile", s.handleRegisterProfile).Methods(http.MethodPost)

	withActor := api.NewRoute().Subrouter()
	withActor.Use(s.actorMiddleware)
	withActor.HandleFunc("/me", s.handleMe).Methods(http.MethodGet)
	withActor.HandleFunc("/requests/{id}", s.handleGetRequest).Methods(http.MethodGet)
	withActor.HandleFunc("/requests/{id}/actions", s.handleRequestActions).Methods(http.MethodGet)

	ngo := withActor.PathPrefix("/ngo").Subrouter()
	ngo.Use(requireRole(lifecycle.RoleNGO))
	ngo.HandleFunc("/requests", s.handleCreateRequest).Methods(http.MethodPost)
	ngo.HandleFunc("/requests", s.handleNGORequests).Methods(http.MethodGet)
	ngo.HandleFunc("/requests/{id}/confirm", s.handleConfirmReceipt).Methods(http.MethodPost)

	donor := withActor.PathPrefix("/donor").Subrouter()
	donor.Use(requireRole(lifecycle.RoleDonor))
	donor.HandleFunc("/requests", s.handleDonorFeed).Methods(http.MethodGet)
	donor.HandleFunc("/donations", s.handleDonorDonations).Methods(http.MethodGet)
	donor.HandleFunc("/requests/{id}/accept", s.handleAccept).Methods(http.MethodPost)

	volunteer := withActor.PathPrefix("/volunteer").Subrouter()
	volunteer.Use(requireRole(lifecycle.RoleVolunteer))
	volunteer.HandleFunc("/availability", s.handleUpdateAvailability).Methods(http.MethodPut)
	volunteer.HandleFunc("/tasks", s.handleVolunteerTasks).Methods(http.MethodGet)
	volunteer.HandleFunc("/requests/{id}/pickup", s.handlePickUp).Methods(http.MethodPost)
	volunteer.HandleFunc("/requests/{id}/transit", s.handleStartTransit).Methods(http.MethodPost)
	volunteer.HandleFunc("/requests/{id}/deliver", s.handleDeliver).Methods(http.MethodPost)
	volunteer.HandleFunc("/requests/{id}/extra-volunteer", s.handleRequestExtraVolunteer).Methods(http.MethodPost)

	admin := withActor.PathPrefix("/admin").Subrouter()
	admin.Use(requireRole(lifecycle.RoleAdmin))
	admin.HandleFunc("/users", s.handleUsers).Methods(http.MethodGet)
	admin.HandleFunc("/verifications", s.handlePendingVerifications).Methods(http.MethodGet)
	admin.HandleFunc("/verifications/{userID}", s.handleVerify).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", s.handleAuditLogs).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorBody{Error: message, Code: code})
}

// respondOutcome answers 202 when the transition went through but the volunteer
// assignment it asked for is still pending.
func respondOutcome(w http.ResponseWriter, out storage.Outcome) {
	status := http.StatusOK
	if out.AssignmentDeferred {
		status = http.StatusAccepted
	}
	respondJSON(w, status, out)
}

// writeError maps typed failures to statuses. Untyped errors are logged and hidden.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, status, code, "internal error")
		return
	}
	respondError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, lifecycle.ErrVerificationRequired):
		return http.StatusForbidden, "verification_required"
	case errors.Is(err, storage.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, lifecycle.ErrAlreadyAccepted),
		errors.Is(err, lifecycle.ErrAlreadyAssigned),
		errors.Is(err, lifecycle.ErrNoVolunteerAvailable),
		errors.Is(err, storage.ErrAlreadyRegistered),
		errors.Is(err, storage.ErrConcurrentUpdate):
		return http.StatusConflict, "conflict"
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "invalid_transition"
	}
	return http.StatusInternalServerError, "internal"
}
