package handler

import (
	"encoding/json"
	"net/http"

	"github.com/revanthkumar92/quantara/internal/application/usecase"
	"github.com/revanthkumar92/quantara/pkg/logger"
)

// QubitAPIHandler serves the qubit API endpoint
type QubitAPIHandler struct {
	listQubitsUC *usecase.ListQubitsUseCase
	logger       *logger.Logger
}

// NewQubitAPIHandler creates a new handler
func NewQubitAPIHandler(
	listQubitsUC *usecase.ListQubitsUseCase,
	logger *logger.Logger,
) *QubitAPIHandler {
	return &QubitAPIHandler{
		listQubitsUC: listQubitsUC,
		logger:       logger,
	}
}

// ListQubits returns the qubit demo set as {"results": [...]}
func (h *QubitAPIHandler) ListQubits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response, err := h.listQubitsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to list qubits", err)
		http.Error(w, "Failed to list qubits", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Only reachable when the client went away mid-write.
		h.logger.Error("Failed to encode qubit response", err)
	}
}
