package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/etnz/wealth"
	"github.com/shopspring/decimal"
)

// maxBodySize bounds the size of an activity payload.
const maxBodySize = 1 << 20

// ValueResponse is the body returned by the value endpoint.
type ValueResponse struct {
	Value           decimal.Decimal `json:"value"`
	Currency        string          `json:"currency,omitempty"`
	DisplayNegative bool            `json:"displayNegative"`
}

// ValidateResponse is the body returned by the validate endpoint. Activity
// holds the quick-fixed activity.
type ValidateResponse struct {
	Activity wealth.Activity `json:"activity"`
	Valid    bool            `json:"valid"`
	Errors   []string        `json:"errors,omitempty"`
}

// ActivityType describes an activity type and its static classification.
type ActivityType struct {
	Type              wealth.ActivityType `json:"type"`
	Cash              bool                `json:"cash"`
	Income            bool                `json:"income"`
	Trade             bool                `json:"trade"`
	SymbolRequired    bool                `json:"symbolRequired"`
	DisplayedNegative bool                `json:"displayedNegative"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "wealth",
	})
}

func (s *Server) handleActivityTypes(w http.ResponseWriter, r *http.Request) {
	var types []ActivityType
	for _, t := range wealth.ActivityTypes() {
		types = append(types, ActivityType{
			Type:              t,
			Cash:              wealth.IsCashActivity(t),
			Income:            wealth.IsIncomeActivity(t),
			Trade:             wealth.IsTradeActivity(t),
			SymbolRequired:    wealth.IsSymbolRequired(t, ""),
			DisplayedNegative: wealth.IsDisplayedNegative(t),
		})
	}
	s.writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleValue(w http.ResponseWriter, r *http.Request) {
	a, ok := s.readActivity(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, ValueResponse{
		Value:           wealth.ActivityValue(a),
		Currency:        a.Currency,
		DisplayNegative: wealth.IsDisplayedNegative(a.Type),
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	a, ok := s.readActivity(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, wealth.Classify(a))
}

// handleValidate answers 200 for invalid activities too, the errors are in the body.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	a, ok := s.readActivity(w, r)
	if !ok {
		return
	}
	fixed, err := wealth.Validate(a)
	errs := wealth.ValidationErrors(err)
	s.writeJSON(w, http.StatusOK, ValidateResponse{
		Activity: fixed,
		Valid:    len(errs) == 0,
		Errors:   errs,
	})
}

// readActivity decodes the request body, or writes a 400 response.
func (s *Server) readActivity(w http.ResponseWriter, r *http.Request) (wealth.Activity, bool) {
	var a wealth.Activity
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&a); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid activity: %v", err))
		return a, false
	}
	return a, true
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
