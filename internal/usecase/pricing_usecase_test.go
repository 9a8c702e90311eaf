package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/infrastructure/metrics"
	mock_interfaces "quoteflow/internal/usecase/interfaces/mocks"
)

func TestPricingUseCase_SuggestPricing(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewPricingUseCase(nil, nil, nil)
		_, err := uc.SuggestPricing(context.Background(), teamLead(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.SuggestPricing(context.Background(), teamLead(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("viewer gate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewPricingUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", CustomerID: "999"}, nil)

		_, err := uc.SuggestPricing(context.Background(), customer("300"), "q-1")
		if !errors.Is(err, ErrActionNotPermitted) {
			t.Fatalf("expected ErrActionNotPermitted, got %v", err)
		}
	})

	t.Run("no priceable lines skips the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		service := mock_interfaces.NewMockIPricingService(ctrl)
		uc := NewPricingUseCase(repo, service, nil)

		// No BatchPriceQuote expectation: nothing to price.
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		suggestions, err := uc.SuggestPricing(context.Background(), teamLead(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if suggestions.QuoteID != "q-1" || len(suggestions.Lines) != 0 {
			t.Fatalf("unexpected suggestions: %+v", suggestions)
		}
	})

	t.Run("deduped batch merged back per line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		service := mock_interfaces.NewMockIPricingService(ctrl)
		uc := NewPricingUseCase(repo, service, metrics.NewRegistry())

		stored := entities.Quote{
			ID:         "q-1",
			CustomerID: "300",
			LineItems: []entities.LineItem{
				{ID: "li-1", ProductID: "p-1", Quantity: 10},
				{ID: "li-2", ProductID: "p-2", Quantity: 5},
				{ID: "li-3", ProductID: "p-1", Quantity: 2},
			},
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

		service.EXPECT().BatchPriceQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reqs []entities.PriceRequest) ([]entities.PricingResult, error) {
				// Three lines over two products batch to two entries; the
				// first line's quantity wins for the repeated product.
				if len(reqs) != 2 {
					t.Fatalf("expected 2 entries, got %d", len(reqs))
				}
				if reqs[0].ProductID != "p-1" || reqs[0].Quantity != 10 || reqs[0].CustomerID != "300" {
					t.Fatalf("unexpected first entry: %+v", reqs[0])
				}
				if reqs[1].ProductID != "p-2" || reqs[1].Quantity != 5 {
					t.Fatalf("unexpected second entry: %+v", reqs[1])
				}
				return []entities.PricingResult{
					{
						ProductID:     "p-1",
						BasePrice:     120,
						FinalPrice:    100,
						TotalDiscount: 20,
						AppliedRules: []entities.AppliedRule{
							{Name: "catalog", Kind: entities.RuleKindCatalogBase, PriceBefore: 120, PriceAfter: 120},
							{Name: "tier-10", Kind: entities.RuleKindVolumeTier, PriceBefore: 120, PriceAfter: 100},
						},
					},
					// A result for a product absent from the quote is discarded.
					{ProductID: "p-9", BasePrice: 1, FinalPrice: 1},
				}, nil
			},
		)

		suggestions, err := uc.SuggestPricing(context.Background(), teamLead(), " q-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(suggestions.Lines) != 3 {
			t.Fatalf("expected a suggestion slot per line, got %d", len(suggestions.Lines))
		}

		first := suggestions.Lines[0]
		if first.LineItemID != "li-1" || first.SuggestedUnitPrice == nil || *first.SuggestedUnitPrice != 100 {
			t.Fatalf("unexpected first suggestion: %+v", first)
		}
		if !first.HasSpecialPricing || first.TotalDiscount != 20 {
			t.Fatalf("expected special pricing surfaced: %+v", first)
		}

		// p-2 had no result: the line keeps a nil suggestion, not an error.
		second := suggestions.Lines[1]
		if second.LineItemID != "li-2" || second.SuggestedUnitPrice != nil {
			t.Fatalf("unexpected second suggestion: %+v", second)
		}

		// Sibling line of the repeated product shares the product's result.
		third := suggestions.Lines[2]
		if third.LineItemID != "li-3" || third.SuggestedUnitPrice == nil || *third.SuggestedUnitPrice != 100 {
			t.Fatalf("unexpected third suggestion: %+v", third)
		}
	})

	t.Run("waterfall failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		service := mock_interfaces.NewMockIPricingService(ctrl)
		uc := NewPricingUseCase(repo, service, nil)

		stored := entities.Quote{ID: "q-1", LineItems: []entities.LineItem{{ID: "li-1", ProductID: "p-1", Quantity: 1}}}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)
		service.EXPECT().BatchPriceQuote(gomock.Any(), gomock.Any()).Return(nil, errors.New("engine down"))

		_, err := uc.SuggestPricing(context.Background(), teamLead(), "q-1")
		if err == nil || err.Error() != "engine down" {
			t.Fatalf("expected engine error, got %v", err)
		}
	})
}

func TestBuildBatchRequests(t *testing.T) {
	q := entities.Quote{
		CustomerID: "300",
		LineItems: []entities.LineItem{
			{ID: "li-1", ProductID: " p-1 ", Quantity: 4},
			{ID: "li-2", ProductID: "", Quantity: 1},
			{ID: "li-3", ProductID: "p-1", Quantity: 9},
			{ID: "li-4", ProductID: "p-2", Quantity: 2},
		},
	}

	reqs := BuildBatchRequests(q)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].ProductID != "p-1" || reqs[0].Quantity != 4 {
		t.Fatalf("unexpected first request: %+v", reqs[0])
	}
	if reqs[1].ProductID != "p-2" || reqs[1].CustomerID != "300" {
		t.Fatalf("unexpected second request: %+v", reqs[1])
	}
}
