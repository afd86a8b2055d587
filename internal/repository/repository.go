package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taxpadi/tax-service/internal/models"
)

// ErrNotFound is returned by Get when a calculation id is absent or
// its TTL has elapsed. Callers distinguish it from transport and
// decoding errors with errors.Is.
var ErrNotFound = errors.New("calculation not found")

// ResultStore persists calculation results in Redis under generated
// identifiers with a fixed time-to-live. Entries are immutable and
// expire on their own; there is no deletion path.
type ResultStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewResultStore initializes a store writing entries with the given TTL.
func NewResultStore(rdb *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{rdb: rdb, ttl: ttl}
}

func resultKey(id string) string {
	return "calculation:" + id
}

// Save writes the result under id as a flat field-value hash and sets
// the expiry in the same pipeline. The expiry is never renewed on read.
func (s *ResultStore) Save(ctx context.Context, id string, result *models.CalculationResult) error {
	fields := map[string]any{
		"gross_income":       formatAmount(result.GrossIncome),
		"total_deductions":   formatAmount(result.TotalDeductions),
		"taxable_income":     formatAmount(result.TaxableIncome),
		"tax_owed":           formatAmount(result.TaxOwed),
		"effective_tax_rate": formatAmount(result.EffectiveTaxRate),
		"after_tax_income":   formatAmount(result.AfterTaxIncome),
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, resultKey(id), fields)
	pipe.Expire(ctx, resultKey(id), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save calculation %s: %w", id, err)
	}
	return nil
}

// Get retrieves a stored result. A missing or expired key yields
// ErrNotFound; transport failures and corrupt stored data propagate
// as ordinary errors.
func (s *ResultStore) Get(ctx context.Context, id string) (*models.CalculationResult, error) {
	fields, err := s.rdb.HGetAll(ctx, resultKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read calculation %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	result := &models.CalculationResult{}
	for name, dst := range map[string]*float64{
		"gross_income":       &result.GrossIncome,
		"total_deductions":   &result.TotalDeductions,
		"taxable_income":     &result.TaxableIncome,
		"tax_owed":           &result.TaxOwed,
		"effective_tax_rate": &result.EffectiveTaxRate,
		"after_tax_income":   &result.AfterTaxIncome,
	} {
		raw, ok := fields[name]
		if !ok {
			return nil, fmt.Errorf("calculation %s is missing field %s", id, name)
		}
		value, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("calculation %s has a corrupt %s field: %w", id, name, parseErr)
		}
		*dst = value
	}
	return result, nil
}

// Ping reports whether the store is reachable.
func (s *ResultStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}
	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
