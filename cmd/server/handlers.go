package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mentorchrd/seaport-portal-MSQL/internal/scenario"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// writeEstimate maps validation failures to 400 and everything else to 500.
func writeEstimate(w http.ResponseWriter, v any, err error) {
	if err != nil {
		if errors.Is(err, scenario.ErrBadInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("estimate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "estimate failed")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type credentials struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

func (s *server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	if creds.Mobile == "" || creds.Password == "" {
		writeError(w, http.StatusBadRequest, "mobile and password are required")
		return
	}

	if err := s.auth.createUser(creds.Mobile, creds.Password); err != nil {
		if errors.Is(err, errUserExists) {
			writeError(w, http.StatusConflict, "user already exists")
			return
		}
		log.Printf("signup: %v", err)
		writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	s.auth.setSessionCookie(w, creds.Mobile)
	writeJSON(w, http.StatusCreated, map[string]string{"mobile": creds.Mobile})
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if !decodeJSON(w, r, &creds) {
		return
	}

	valid, err := s.auth.validateCredentials(creds.Mobile, creds.Password)
	if err != nil {
		log.Printf("login: %v", err)
		writeError(w, http.StatusInternalServerError, "authentication error")
		return
	}
	if !valid {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.auth.setSessionCookie(w, creds.Mobile)
	writeJSON(w, http.StatusOK, map[string]string{"mobile": creds.Mobile})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

type vesselResponse struct {
	scenario.VesselResult
	TotalDisplay string `json:"totalDisplay"`
}

func (s *server) handleVesselEstimate(w http.ResponseWriter, r *http.Request) {
	var in scenario.VesselInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.engine.Vessel(r.Context(), in)
	if err != nil {
		writeEstimate(w, nil, err)
		return
	}
	writeEstimate(w, vesselResponse{result, formatINR(result.Breakdown.Total)}, nil)
}

type cargoResponse struct {
	scenario.CargoResult
	TotalDisplay string `json:"totalDisplay"`
}

func (s *server) handleCargoEstimate(w http.ResponseWriter, r *http.Request) {
	var in scenario.CargoInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.engine.Cargo(r.Context(), in)
	if err != nil {
		writeEstimate(w, nil, err)
		return
	}
	writeEstimate(w, cargoResponse{result, formatINR(result.Breakdown.Total)}, nil)
}

type railResponse struct {
	scenario.RailResult
	TotalDisplay string `json:"totalDisplay"`
}

func (s *server) handleRailEstimate(w http.ResponseWriter, r *http.Request) {
	var in scenario.RailInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.engine.Rail(r.Context(), in)
	if err != nil {
		writeEstimate(w, nil, err)
		return
	}
	writeEstimate(w, railResponse{result, formatINR(result.Breakdown.Total)}, nil)
}

type storageResponse struct {
	scenario.StorageResult
	TotalDisplay string `json:"totalDisplay"`
}

func (s *server) handleStorageEstimate(w http.ResponseWriter, r *http.Request) {
	var in scenario.StorageInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.engine.Storage(r.Context(), in)
	if err != nil {
		writeEstimate(w, nil, err)
		return
	}
	writeEstimate(w, storageResponse{result, formatINR(result.Breakdown.Total)}, nil)
}

type stevedoreResponse struct {
	scenario.StevedoreResult
	TotalDisplay string `json:"totalDisplay"`
}

func (s *server) handleStevedoreEstimate(w http.ResponseWriter, r *http.Request) {
	var in scenario.StevedoreInput
	if !decodeJSON(w, r, &in) {
		return
	}

	result, err := s.engine.Stevedore(r.Context(), in)
	if err != nil {
		writeEstimate(w, nil, err)
		return
	}
	writeEstimate(w, stevedoreResponse{result, formatINR(result.Breakdown.Total)}, nil)
}
