package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymentcore/internal/core/domain"
)

func mcaFixture(id, name string, disabled bool) domain.MerchantConnectorAccount {
	return domain.MerchantConnectorAccount{ID: id, ConnectorName: name, Disabled: disabled}
}

func TestEvaluate_NilAlgorithmFallsBackToFirstEnabled(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{
		mcaFixture("mca_1", "mock", true),
		mcaFixture("mca_2", "generic", false),
	}

	decision, err := e.Evaluate(context.Background(), nil, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "mca_2", decision.MerchantConnectorID)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_NoEnabledCandidatesErrors(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", true)}

	_, err := e.Evaluate(context.Background(), nil, candidates, domain.RoutingContext{})

	assert.Error(t, err)
}

func TestEvaluate_Single(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingKindSingle, PriorityOrder: []string{"mca_1"}}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "mca_1", decision.MerchantConnectorID)
	assert.Equal(t, "single", decision.Algorithm)
}

func TestEvaluate_Single_NoConfiguredConnectorErrors(t *testing.T) {
	e := New()
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingKindSingle}

	_, err := e.Evaluate(context.Background(), algo, nil, domain.RoutingContext{})

	assert.Error(t, err)
}

func TestEvaluate_Single_MissingCandidateFallsBack(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_2", "generic", false)}
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingKindSingle, PriorityOrder: []string{"mca_1"}}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_Priority(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{
		mcaFixture("mca_1", "mock", true),
		mcaFixture("mca_2", "generic", false),
		mcaFixture("mca_3", "mock", false),
	}
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingKindPriority, PriorityOrder: []string{"mca_1", "mca_2", "mca_3"}}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "mca_2", decision.MerchantConnectorID)
	assert.Equal(t, "priority", decision.Algorithm)
}

func TestEvaluate_VolumeSplit_SingleEligibleAlwaysWins(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind:         domain.RoutingKindVolumeSplit,
		VolumeSplits: []domain.VolumeSplit{{MerchantConnectorID: "mca_1", Percentage: 100}},
	}

	for i := 0; i < 20; i++ {
		decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})
		require.NoError(t, err)
		assert.Equal(t, "mca_1", decision.MerchantConnectorID)
		assert.Equal(t, "volume_split", decision.Algorithm)
	}
}

func TestEvaluate_VolumeSplit_SkipsDisabledAndDistributesAcrossRemaining(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{
		mcaFixture("mca_1", "mock", true),
		mcaFixture("mca_2", "generic", false),
	}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindVolumeSplit,
		VolumeSplits: []domain.VolumeSplit{
			{MerchantConnectorID: "mca_1", Percentage: 50},
			{MerchantConnectorID: "mca_2", Percentage: 50},
		},
	}

	for i := 0; i < 20; i++ {
		decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})
		require.NoError(t, err)
		assert.Equal(t, "mca_2", decision.MerchantConnectorID)
	}
}

func TestEvaluate_VolumeSplit_AllZeroWeightFallsBack(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind:         domain.RoutingKindVolumeSplit,
		VolumeSplits: []domain.VolumeSplit{{MerchantConnectorID: "mca_1", Percentage: 0}},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_Advanced_FirstMatchingRuleWins(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{
		mcaFixture("mca_1", "mock", false),
		mcaFixture("mca_2", "generic", false),
	}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "high_value_to_generic",
				Predicate: domain.PredicateNode{
					Conditions: []domain.Condition{{Key: domain.RoutingKeyAmount, Op: domain.OpGreaterThan, Value: "10000"}},
				},
				MerchantConnectorID: "mca_2",
			},
			{
				Name:                "default_to_mock",
				Predicate:           domain.PredicateNode{},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Amount: 50000})
	require.NoError(t, err)
	assert.Equal(t, "mca_2", decision.MerchantConnectorID)

	decision, err = e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Amount: 500})
	require.NoError(t, err)
	assert.Equal(t, "mca_1", decision.MerchantConnectorID)
}

func TestEvaluate_Advanced_NoRuleMatchesFallsBackToDefault(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{
		mcaFixture("mca_1", "mock", false),
		mcaFixture("mca_2", "generic", false),
	}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "never_matches",
				Predicate: domain.PredicateNode{
					Conditions: []domain.Condition{{Key: domain.RoutingKeyCurrency, Op: domain.OpEqual, Value: "JPY"}},
				},
				MerchantConnectorID: "mca_2",
			},
		},
		DefaultConnectorID: "mca_1",
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Currency: "USD"})

	require.NoError(t, err)
	assert.Equal(t, "mca_1", decision.MerchantConnectorID)
	assert.Equal(t, "advanced", decision.Algorithm)
}

func TestEvaluate_Advanced_NoMatchNoDefaultFallsBack(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingKindAdvanced}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_Advanced_AllLogicRequiresEveryCondition(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "usd_and_card",
				Predicate: domain.PredicateNode{
					Logic: domain.LogicAll,
					Conditions: []domain.Condition{
						{Key: domain.RoutingKeyCurrency, Op: domain.OpEqual, Value: "USD"},
						{Key: domain.RoutingKeyPaymentMethod, Op: domain.OpEqual, Value: "card"},
					},
				},
				MerchantConnectorID: "mca_1",
			},
		},
	}
	cardType := "card"

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{
		Currency:      "USD",
		PaymentMethod: &domain.PaymentMethodSnapshot{Type: cardType},
	})
	require.NoError(t, err)
	assert.Equal(t, "advanced", decision.Algorithm)

	decision, err = e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_Advanced_AnyLogicRequiresOneCondition(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "usd_or_eur",
				Predicate: domain.PredicateNode{
					Logic: domain.LogicAny,
					Conditions: []domain.Condition{
						{Key: domain.RoutingKeyCurrency, Op: domain.OpEqual, Value: "USD"},
						{Key: domain.RoutingKeyCurrency, Op: domain.OpEqual, Value: "EUR"},
					},
				},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "advanced", decision.Algorithm)
}

func TestEvaluate_Advanced_NestedChildren(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	network := "visa"
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "usd_visa_high_value",
				Predicate: domain.PredicateNode{
					Logic: domain.LogicAll,
					Conditions: []domain.Condition{
						{Key: domain.RoutingKeyCurrency, Op: domain.OpEqual, Value: "USD"},
					},
					Children: []domain.PredicateNode{
						{
							Logic: domain.LogicAny,
							Conditions: []domain.Condition{
								{Key: domain.RoutingKeyCardNetwork, Op: domain.OpEqual, Value: "visa"},
								{Key: domain.RoutingKeyAmount, Op: domain.OpGreaterThanEqual, Value: "100000"},
							},
						},
					},
				},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{
		Currency:      "USD",
		PaymentMethod: &domain.PaymentMethodSnapshot{Type: "card", CardNetwork: &network},
	})

	require.NoError(t, err)
	assert.Equal(t, "advanced", decision.Algorithm)
}

func TestEvaluate_Advanced_MetadataCondition(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name: "checkout_flow",
				Predicate: domain.PredicateNode{
					Conditions: []domain.Condition{{Key: domain.RoutingKeyMetadata, Op: domain.OpEqual, Value: "flow=checkout"}},
				},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{
		Metadata: map[string]any{"flow": "checkout"},
	})
	require.NoError(t, err)
	assert.Equal(t, "advanced", decision.Algorithm)

	decision, err = e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{
		Metadata: map[string]any{"flow": "subscription"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_Advanced_MetadataConditionMalformedValueErrors(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name:                "broken",
				Predicate:           domain.PredicateNode{Conditions: []domain.Condition{{Key: domain.RoutingKeyMetadata, Op: domain.OpEqual, Value: "no_equals_sign"}}},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	_, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	assert.Error(t, err)
}

func TestEvaluate_Advanced_AmountConditionNonIntegerValueErrors(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name:                "broken",
				Predicate:           domain.PredicateNode{Conditions: []domain.Condition{{Key: domain.RoutingKeyAmount, Op: domain.OpEqual, Value: "not_a_number"}}},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	_, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{Amount: 100})

	assert.Error(t, err)
}

func TestEvaluate_Advanced_CardNetworkNilPaymentMethodDoesNotMatch(t *testing.T) {
	e := New()
	candidates := []domain.MerchantConnectorAccount{mcaFixture("mca_1", "mock", false)}
	algo := &domain.RoutingAlgorithm{
		Kind: domain.RoutingKindAdvanced,
		Rules: []domain.AdvancedRule{
			{
				Name:                "needs_network",
				Predicate:           domain.PredicateNode{Conditions: []domain.Condition{{Key: domain.RoutingKeyCardNetwork, Op: domain.OpEqual, Value: "visa"}}},
				MerchantConnectorID: "mca_1",
			},
		},
	}

	decision, err := e.Evaluate(context.Background(), algo, candidates, domain.RoutingContext{})

	require.NoError(t, err)
	assert.Equal(t, "fallback_default", decision.Algorithm)
}

func TestEvaluate_UnknownAlgorithmKindErrors(t *testing.T) {
	e := New()
	algo := &domain.RoutingAlgorithm{Kind: domain.RoutingAlgorithmKind("unknown")}

	_, err := e.Evaluate(context.Background(), algo, nil, domain.RoutingContext{})

	assert.Error(t, err)
}

func TestCompareString_UnsupportedOpErrors(t *testing.T) {
	_, err := compareString("a", "b", domain.OpGreaterThan)
	assert.Error(t, err)
}

func TestCompareInt_AllOperators(t *testing.T) {
	tests := []struct {
		op       domain.ComparisonOp
		got      int64
		want     int64
		expected bool
	}{
		{domain.OpEqual, 5, 5, true},
		{domain.OpNotEqual, 5, 6, true},
		{domain.OpGreaterThan, 6, 5, true},
		{domain.OpLessThan, 4, 5, true},
		{domain.OpGreaterThanEqual, 5, 5, true},
		{domain.OpLessThanEqual, 5, 5, true},
	}

	for _, tt := range tests {
		ok, err := compareInt(tt.got, tt.want, tt.op)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, ok)
	}
}
