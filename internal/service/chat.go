package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/taxpadi/tax-service/internal/models"
	"github.com/taxpadi/tax-service/internal/repository"
)

// ErrChatUnavailable is returned when no LLM provider is configured.
var ErrChatUnavailable = errors.New("chat is not available")

const chatSystemPrompt = `You are a helpful assistant answering questions about Nigerian personal income tax.
Income is taxed annually in progressive bands: the first 800,000 naira at 0%, the next 2,200,000 at 15%, the next 9,000,000 at 18%, the next 13,000,000 at 21%, the next 25,000,000 at 23% and the remainder at 25%.
Taxable income is annual gross income less capped deductions for pension, NHF, life insurance and rent relief.
Answer concisely. If a question is outside personal income tax, say so.`

// Chat answers a tax question, enriched with the user's stored
// calculation when the supplied id still resolves. An id that is
// missing, expired or unreadable degrades to a context-free answer;
// chat availability never depends on the store.
func (s *Service) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if s.chat == nil {
		return nil, ErrChatUnavailable
	}

	var calcContext string
	if req.CalculationID != "" {
		result, err := s.store.Get(ctx, req.CalculationID)
		switch {
		case err == nil:
			calcContext = formatCalculation(result)
		case errors.Is(err, repository.ErrNotFound):
			s.log.Debugf("Chat context %s is missing or expired", req.CalculationID)
		default:
			s.log.Warnf("Failed to load chat context %s: %v", req.CalculationID, err)
		}
	}

	system := chatSystemPrompt
	if calcContext != "" {
		system += "\n\nThe user's most recent calculation:\n" + calcContext
	}

	answer, err := s.chat.Complete(ctx, system, req.Message)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	return &models.ChatResponse{Response: answer, ContextUsed: calcContext != ""}, nil
}

func formatCalculation(r *models.CalculationResult) string {
	return fmt.Sprintf(
		"Annual gross income: %.2f\nTotal deductions: %.2f\nTaxable income: %.2f\nTax owed: %.2f\nEffective tax rate: %.2f%%\nAfter-tax income: %.2f",
		r.GrossIncome, r.TotalDeductions, r.TaxableIncome, r.TaxOwed, r.EffectiveTaxRate, r.AfterTaxIncome,
	)
}
