package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
	// maxBodySize leaves room for a base64 delivery photo.
	maxBodySize = 8 << 20
)

// decode reads an optional JSON body. An empty body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid request body", lifecycle.ErrInvalidInput)
	}
	return nil
}

func (s *Server) handleRegisterProfile(w http.ResponseWriter, r *http.Request) {
	var in storage.ProfileInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	id := identityFrom(r.Context())
	user, err := s.service.RegisterProfile(r.Context(), id.userID, id.role, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.service.Me(r.Context(), actorFrom(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var in storage.AvailabilityInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	user, err := s.service.UpdateAvailability(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var in lifecycle.CreateInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := s.service.CreateRequest(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (s *Server) handleNGORequests(w http.ResponseWriter, r *http.Request) {
	s.respondList(w, r, s.service.NGORequests)
}

func (s *Server) handleDonorFeed(w http.ResponseWriter, r *http.Request) {
	s.respondList(w, r, s.service.DonorFeed)
}

func (s *Server) handleDonorDonations(w http.ResponseWriter, r *http.Request) {
	s.respondList(w, r, s.service.DonorDonations)
}

func (s *Server) handleVolunteerTasks(w http.ResponseWriter, r *http.Request) {
	s.respondList(w, r, s.service.VolunteerTasks)
}

func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	var in lifecycle.AcceptInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.service.Accept(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"], in)
	s.respondTransition(w, r, out, err)
}

func (s *Server) handlePickUp(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.PickUp(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"])
	s.respondTransition(w, r, out, err)
}

func (s *Server) handleStartTransit(w http.ResponseWriter, r *http.Request) {
	out, err := s.service.StartTransit(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"])
	s.respondTransition(w, r, out, err)
}

type deliverRequest struct {
	// Photo is a base64 image, optionally a data URL.
	Photo    string `json:"delivery_photo,omitempty"`
	PhotoURL string `json:"delivery_photo_url,omitempty"`
}

func (s *Server) handleDeliver(w http.ResponseWriter, r *http.Request) {
	var body deliverRequest
	if err := decode(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	requestID := mux.Vars(r)["id"]
	in := lifecycle.DeliverInput{PhotoURL: strings.TrimSpace(body.PhotoURL)}

	if body.Photo != "" {
		if s.photos == nil {
			s.writeError(w, r, fmt.Errorf("%w: photo uploads are not configured", lifecycle.ErrInvalidInput))
			return
		}
		// Upload only for a delivery that can go through.
		req, err := s.service.GetRequest(r.Context(), actorFrom(r.Context()), requestID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if req.VolunteerID != actorFrom(r.Context()).ID || req.Status != lifecycle.StatusInTransit {
			s.writeError(w, r, fmt.Errorf("%w: request %s cannot be delivered by %s", lifecycle.ErrInvalidTransition, requestID, actorFrom(r.Context()).ID))
			return
		}
		url, err := s.photos.UploadBase64(r.Context(), requestID, body.Photo)
		if err != nil {
			s.writeError(w, r, fmt.Errorf("%w: %v", lifecycle.ErrInvalidInput, err))
			return
		}
		in.PhotoURL = url
	}

	out, err := s.service.Deliver(r.Context(), actorFrom(r.Context()), requestID, in)
	s.respondTransition(w, r, out, err)
}

func (s *Server) handleConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	var in lifecycle.ConfirmInput
	if err := decode(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.service.ConfirmReceipt(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"], in)
	s.respondTransition(w, r, out, err)
}

func (s *Server) handleRequestExtraVolunteer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := decode(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	out, err := s.service.RequestExtraVolunteer(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"], body.Reason)
	s.respondTransition(w, r, out, err)
}

func (s *Server) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := s.service.GetRequest(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

func (s *Server) handleRequestActions(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.RequestActions(r.Context(), actorFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	var role lifecycle.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		parsed, err := lifecycle.ParseRole(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_input", "invalid value for 'role' parameter")
			return
		}
		role = parsed
	}
	users, err := s.service.Users(r.Context(), actorFrom(r.Context()), role)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (s *Server) handlePendingVerifications(w http.ResponseWriter, r *http.Request) {
	users, err := s.service.PendingVerifications(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Decision string `json:"decision"`
		Notes    string `json:"notes"`
	}
	if err := decode(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	decision := lifecycle.VerificationStatus(strings.ToLower(strings.TrimSpace(body.Decision)))
	user, err := s.service.Verify(r.Context(), actorFrom(r.Context()), mux.Vars(r)["userID"], decision, body.Notes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_input", "invalid value for 'limit' parameter")
			return
		}
		limit = min(n, maxAuditLimit)
	}
	logs, err := s.service.AuditLogs(r.Context(), actorFrom(r.Context()), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, logs)
}

type listFunc func(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error)

func (s *Server) respondList(w http.ResponseWriter, r *http.Request, list listFunc) {
	requests, err := list(r.Context(), actorFrom(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

func (s *Server) respondTransition(w http.ResponseWriter, r *http.Request, out storage.Outcome, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondOutcome(w, out)
}
