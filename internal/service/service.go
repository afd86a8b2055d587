package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/taxpadi/tax-service/internal/integrations/llm"
	"github.com/taxpadi/tax-service/internal/models"
	"github.com/taxpadi/tax-service/internal/repository"
	"github.com/taxpadi/tax-service/internal/tax"
	"github.com/taxpadi/tax-service/internal/utils"
)

// Service handles business logic
type Service struct {
	store *repository.ResultStore
	chat  llm.Client
	log   *logrus.Logger
}

// NewService initializes a new service. chat may be nil when no LLM
// provider is configured; the chat endpoint then reports unavailable.
func NewService(store *repository.ResultStore, chat llm.Client, log *logrus.Logger) *Service {
	return &Service{store: store, chat: chat, log: log}
}

// Calculate runs the tax engine and stores the result best-effort. A
// store failure never fails the request: the computed result is still
// returned, with the identifier marked unavailable and a note
// explaining that retrieval will not be possible.
func (s *Service) Calculate(ctx context.Context, in models.CalculationInput) *models.CalculateResponse {
	result := tax.Calculate(in)

	id, err := utils.NewCalculationID()
	if err == nil {
		err = s.store.Save(ctx, id, &result)
	}
	if err != nil {
		s.log.Warnf("Failed to store calculation: %v", err)
		return &models.CalculateResponse{
			CalculationID: models.CalculationIDUnavailable,
			Result:        result,
			Note:          "The result could not be stored; retrieval by id will not be possible.",
		}
	}

	s.log.Infof("Calculation stored: %s", id)
	return &models.CalculateResponse{CalculationID: id, Result: result}
}

// Retrieve loads a previously stored calculation. Missing or expired
// identifiers yield repository.ErrNotFound; store failures propagate.
func (s *Service) Retrieve(ctx context.Context, id string) (*models.CalculationResult, error) {
	return s.store.Get(ctx, id)
}
