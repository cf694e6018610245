package routing

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"paymentcore/internal/core/domain"
	"paymentcore/internal/core/ports"
	"paymentcore/pkg/apperror"
)

// Evaluator implements ports.RoutingService: Single/Priority/VolumeSplit
// pick a candidate by configuration alone, while Advanced walks a small
// predicate DAG over the payment's attributes, flattened into a plain
// struct tree instead of a DSL the caller compiles.
type Evaluator struct{}

func New() *Evaluator { return &Evaluator{} }

var _ ports.RoutingService = (*Evaluator)(nil)

// Evaluate resolves one MerchantConnectorAccount:
// Single always returns the one configured candidate; Priority returns
// the first enabled candidate in PriorityOrder; VolumeSplit draws a
// weighted-random candidate; Advanced returns the first rule whose
// predicate matches routingCtx, falling back to DefaultConnectorID.
// Every kind excludes candidates that are disabled or missing from the
// live candidate list — a stale algorithm never routes to a connector
// the caller didn't pass in.
func (e *Evaluator) Evaluate(ctx context.Context, algorithm *domain.RoutingAlgorithm, candidates []domain.MerchantConnectorAccount, routingCtx domain.RoutingContext) (*ports.RoutingDecision, error) {
	if algorithm == nil {
		return e.fallbackDefault(candidates)
	}

	byID := indexCandidates(candidates)

	switch algorithm.Kind {
	case domain.RoutingKindSingle:
		if len(algorithm.PriorityOrder) == 0 {
			return nil, apperror.PreconditionFailed("ROUTE_001", "single routing algorithm has no configured connector")
		}
		if mca, ok := byID[algorithm.PriorityOrder[0]]; ok {
			return decision(mca, "single"), nil
		}
		return e.fallbackDefault(candidates)

	case domain.RoutingKindPriority:
		for _, id := range algorithm.PriorityOrder {
			if mca, ok := byID[id]; ok {
				return decision(mca, "priority"), nil
			}
		}
		return e.fallbackDefault(candidates)

	case domain.RoutingKindVolumeSplit:
		if mca, ok := pickWeighted(algorithm.VolumeSplits, byID); ok {
			return decision(mca, "volume_split"), nil
		}
		return e.fallbackDefault(candidates)

	case domain.RoutingKindAdvanced:
		for _, rule := range algorithm.Rules {
			matched, err := evaluatePredicate(rule.Predicate, routingCtx)
			if err != nil {
				return nil, fmt.Errorf("evaluating rule %q: %w", rule.Name, err)
			}
			if !matched {
				continue
			}
			if mca, ok := byID[rule.MerchantConnectorID]; ok {
				return decision(mca, "advanced"), nil
			}
		}
		if mca, ok := byID[algorithm.DefaultConnectorID]; ok {
			return decision(mca, "advanced"), nil
		}
		return e.fallbackDefault(candidates)

	default:
		return nil, apperror.PreconditionFailed("ROUTE_002", fmt.Sprintf("unknown routing algorithm kind %q", algorithm.Kind))
	}
}

func indexCandidates(candidates []domain.MerchantConnectorAccount) map[string]domain.MerchantConnectorAccount {
	byID := make(map[string]domain.MerchantConnectorAccount, len(candidates))
	for _, c := range candidates {
		if c.Disabled {
			continue
		}
		byID[c.ID] = c
	}
	return byID
}

func decision(mca domain.MerchantConnectorAccount, algorithm string) *ports.RoutingDecision {
	return &ports.RoutingDecision{MerchantConnectorID: mca.ID, ConnectorName: mca.ConnectorName, Algorithm: algorithm}
}

// fallbackDefault is the "fallback_default" algorithm tag: when no
// configured strategy yields a usable candidate, route to whichever
// enabled candidate sorts first, so a payment never hard-fails purely
// on routing misconfiguration while any connector remains available.
func (e *Evaluator) fallbackDefault(candidates []domain.MerchantConnectorAccount) (*ports.RoutingDecision, error) {
	for _, c := range candidates {
		if !c.Disabled {
			return decision(c, "fallback_default"), nil
		}
	}
	return nil, apperror.PreconditionFailed("ROUTE_003", "no enabled connector available for this profile")
}

// pickWeighted draws a weighted-random candidate from splits, skipping
// any whose connector is disabled or absent from byID. Weights need not
// sum to exactly 100 across only the eligible subset — the draw is
// renormalized against whatever eligible weight remains.
func pickWeighted(splits []domain.VolumeSplit, byID map[string]domain.MerchantConnectorAccount) (domain.MerchantConnectorAccount, bool) {
	total := 0
	eligible := make([]domain.VolumeSplit, 0, len(splits))
	for _, s := range splits {
		if _, ok := byID[s.MerchantConnectorID]; !ok || s.Percentage <= 0 {
			continue
		}
		eligible = append(eligible, s)
		total += s.Percentage
	}
	if total == 0 {
		return domain.MerchantConnectorAccount{}, false
	}

	draw := rand.N(total)
	cumulative := 0
	for _, s := range eligible {
		cumulative += s.Percentage
		if draw < cumulative {
			return byID[s.MerchantConnectorID], true
		}
	}
	return byID[eligible[len(eligible)-1].MerchantConnectorID], true
}

// evaluatePredicate walks one PredicateNode depth-first. A zero-value
// node (no conditions, no children) is vacuously true.
func evaluatePredicate(node domain.PredicateNode, ctx domain.RoutingContext) (bool, error) {
	if len(node.Conditions) == 0 && len(node.Children) == 0 {
		return true, nil
	}

	logic := node.Logic
	if logic == "" {
		logic = domain.LogicAll
	}

	results := make([]bool, 0, len(node.Conditions)+len(node.Children))
	for _, cond := range node.Conditions {
		ok, err := evaluateCondition(cond, ctx)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}
	for _, child := range node.Children {
		ok, err := evaluatePredicate(child, ctx)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}

	switch logic {
	case domain.LogicAny:
		for _, r := range results {
			if r {
				return true, nil
			}
		}
		return false, nil
	case domain.LogicAll:
		for _, r := range results {
			if !r {
				return false, nil
			}
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown predicate logic %q", logic)
	}
}

func evaluateCondition(cond domain.Condition, ctx domain.RoutingContext) (bool, error) {
	switch cond.Key {
	case domain.RoutingKeyAmount:
		want, err := strconv.ParseInt(cond.Value, 10, 64)
		if err != nil {
			return false, fmt.Errorf("condition on %s: value %q is not an integer", cond.Key, cond.Value)
		}
		return compareInt(ctx.Amount, want, cond.Op)
	case domain.RoutingKeyCurrency:
		return compareString(ctx.Currency, cond.Value, cond.Op)
	case domain.RoutingKeyCaptureMethod:
		return compareString(string(ctx.CaptureMethod), cond.Value, cond.Op)
	case domain.RoutingKeyPaymentMethod:
		if ctx.PaymentMethod == nil {
			return false, nil
		}
		return compareString(ctx.PaymentMethod.Type, cond.Value, cond.Op)
	case domain.RoutingKeyCardNetwork:
		if ctx.PaymentMethod == nil || ctx.PaymentMethod.CardNetwork == nil {
			return false, nil
		}
		return compareString(*ctx.PaymentMethod.CardNetwork, cond.Value, cond.Op)
	case domain.RoutingKeyBINCountry:
		if ctx.PaymentMethod == nil || ctx.PaymentMethod.BINCountry == nil {
			return false, nil
		}
		return compareString(*ctx.PaymentMethod.BINCountry, cond.Value, cond.Op)
	case domain.RoutingKeyMetadata:
		key, want, ok := strings.Cut(cond.Value, "=")
		if !ok {
			return false, fmt.Errorf("metadata condition value %q must be \"key=value\"", cond.Value)
		}
		got, ok := ctx.Metadata[key]
		if !ok {
			return false, nil
		}
		return compareString(fmt.Sprintf("%v", got), want, cond.Op)
	default:
		return false, fmt.Errorf("unknown routing key %q", cond.Key)
	}
}

func compareInt(got, want int64, op domain.ComparisonOp) (bool, error) {
	switch op {
	case domain.OpEqual:
		return got == want, nil
	case domain.OpNotEqual:
		return got != want, nil
	case domain.OpGreaterThan:
		return got > want, nil
	case domain.OpLessThan:
		return got < want, nil
	case domain.OpGreaterThanEqual:
		return got >= want, nil
	case domain.OpLessThanEqual:
		return got <= want, nil
	default:
		return false, fmt.Errorf("unsupported comparison op %q", op)
	}
}

func compareString(got, want string, op domain.ComparisonOp) (bool, error) {
	switch op {
	case domain.OpEqual:
		return got == want, nil
	case domain.OpNotEqual:
		return got != want, nil
	default:
		return false, fmt.Errorf("comparison op %q is only valid for numeric keys", op)
	}
}
