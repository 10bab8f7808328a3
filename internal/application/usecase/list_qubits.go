package usecase

import (
	"context"

	"github.com/revanthkumar92/quantara/internal/application/dto"
	"github.com/revanthkumar92/quantara/internal/domain/entity"
	"github.com/revanthkumar92/quantara/pkg/logger"
)

// ListQubitsUseCase returns the fixed qubit demo set. The result is a pure
// function of no input, so repeated calls produce identical responses.
type ListQubitsUseCase struct {
	logger *logger.Logger
}

// NewListQubitsUseCase creates a new use case
func NewListQubitsUseCase(logger *logger.Logger) *ListQubitsUseCase {
	return &ListQubitsUseCase{
		logger: logger,
	}
}

// Execute builds the qubit list response. It cannot fail; the error return
// keeps the use case signature uniform.
func (uc *ListQubitsUseCase) Execute(_ context.Context) (*dto.QubitListResponse, error) {
	return dto.FromQubitEntities(entity.DemoQubits()), nil
}
