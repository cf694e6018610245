package domain

import "time"

// RoutingAlgorithmKind is the closed set of connector-selection
// strategies a Profile can configure.
type RoutingAlgorithmKind string

const (
	RoutingKindSingle      RoutingAlgorithmKind = "single"
	RoutingKindPriority    RoutingAlgorithmKind = "priority"
	RoutingKindVolumeSplit RoutingAlgorithmKind = "volume_split"
	RoutingKindAdvanced    RoutingAlgorithmKind = "advanced"
)

// VolumeSplit assigns a MerchantConnectorAccount a percentage weight
// (0-100) of traffic; weights across one RoutingAlgorithm sum to 100.
type VolumeSplit struct {
	MerchantConnectorID string `json:"merchant_connector_id"`
	Percentage          int    `json:"percentage"`
}

// ComparisonOp is the predicate comparison an Advanced rule's condition
// models for numeric keys, generalized here to every RoutingKey.
type ComparisonOp string

const (
	OpEqual            ComparisonOp = "equal"
	OpNotEqual         ComparisonOp = "not_equal"
	OpGreaterThan      ComparisonOp = "greater_than"
	OpLessThan         ComparisonOp = "less_than"
	OpGreaterThanEqual ComparisonOp = "greater_than_equal"
	OpLessThanEqual    ComparisonOp = "less_than_equal"
)

// RoutingKey names one attribute of a payment an Advanced rule can test,
// restricted to what the routing conditions
// describes routing on.
type RoutingKey string

const (
	RoutingKeyAmount        RoutingKey = "payment_amount"
	RoutingKeyCurrency      RoutingKey = "payment_currency"
	RoutingKeyPaymentMethod RoutingKey = "payment_method"
	RoutingKeyCardNetwork   RoutingKey = "card_network"
	RoutingKeyBINCountry    RoutingKey = "bin_country"
	RoutingKeyCaptureMethod RoutingKey = "capture_method"
	RoutingKeyMetadata      RoutingKey = "metadata" // Condition.Value is "metadataKey=expectedValue"
)

// Condition is one leaf test in an Advanced rule's predicate tree.
type Condition struct {
	Key   RoutingKey   `json:"key"`
	Op    ComparisonOp `json:"op"`
	Value string       `json:"value"`
}

// PredicateLogic composes a PredicateNode's children and own conditions.
type PredicateLogic string

const (
	LogicAll PredicateLogic = "all" // every condition/child must hold
	LogicAny PredicateLogic = "any" // at least one condition/child must hold
)

// PredicateNode is one node of the small rule-DAG Advanced routing
// evaluates: a set of leaf Conditions plus nested Children, combined by
// Logic. A nil/zero-value node (no conditions, no children) is treated
// as vacuously true, matching any payment.
type PredicateNode struct {
	Logic      PredicateLogic  `json:"logic"`
	Conditions []Condition     `json:"conditions,omitempty"`
	Children   []PredicateNode `json:"children,omitempty"`
}

// AdvancedRule binds one PredicateNode to the connector it routes to
// when matched. Rules are evaluated in order; the first match wins.
type AdvancedRule struct {
	Name                string        `json:"name"`
	Predicate           PredicateNode `json:"predicate"`
	MerchantConnectorID string        `json:"merchant_connector_id"`
}

// RoutingAlgorithm is a Profile's configured connector-selection
// strategy. Exactly one of PriorityOrder, VolumeSplits, Rules applies,
// selected by Kind.
type RoutingAlgorithm struct {
	ID             string               `json:"id"`
	ProfileID      string               `json:"profile_id"`
	Name           string               `json:"name"`
	Kind           RoutingAlgorithmKind `json:"kind"`
	PriorityOrder  []string             `json:"priority_order,omitempty"` // merchant_connector_id, most-preferred first
	VolumeSplits   []VolumeSplit        `json:"volume_splits,omitempty"`
	Rules          []AdvancedRule       `json:"rules,omitempty"`
	DefaultConnectorID string           `json:"default_connector_id,omitempty"` // fallback when no rule matches
	CreatedAt      time.Time            `json:"created_at"`
	ModifiedAt     time.Time            `json:"modified_at"`
}

// RoutingContext is the per-payment attribute set Advanced rules test
// against and volume-split/priority routing uses to filter out
// disabled/mismatched-currency candidates.
type RoutingContext struct {
	Amount        int64
	Currency      string
	CaptureMethod CaptureMethod
	PaymentMethod *PaymentMethodSnapshot
	Metadata      map[string]any
}
