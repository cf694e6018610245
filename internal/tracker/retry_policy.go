package tracker

import "time"

// RetryPolicy bounds how many times a task type is retried and at what
// intervals, mirroring the `pt_mapping_<connector>` override pattern:
// a connector-specific curve beats the task-type default, which beats
// the package-wide fallback.
type RetryPolicy struct {
	MaxRetries int
	Intervals  []time.Duration
}

// defaultPolicies covers every TaskType this package knows how to
// drive when no connector-specific override applies.
var defaultPolicies = map[string]RetryPolicy{
	"payment_sync": {
		MaxRetries: 5,
		Intervals:  []time.Duration{30 * time.Second, 1 * time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute},
	},
	"refund_sync": {
		MaxRetries: 5,
		Intervals:  []time.Duration{30 * time.Second, 1 * time.Minute, 5 * time.Minute, 15 * time.Minute, 30 * time.Minute},
	},
	"webhook_delivery": {
		MaxRetries: 6,
		Intervals: []time.Duration{
			1 * time.Minute, 5 * time.Minute, 15 * time.Minute,
			1 * time.Hour, 6 * time.Hour, 24 * time.Hour,
		},
	},
}

// PolicyRegistry holds the `pt_mapping_<connector>` override table: per
// connector, per task type. Built once during startup wiring and passed
// explicitly into the Consumer and worker — retry pacing is
// configuration handed to its consumers, not package state.
type PolicyRegistry struct {
	overrides map[string]map[string]RetryPolicy
}

// NewPolicyRegistry creates an empty registry; every lookup resolves to
// the task-type default until overrides are registered.
func NewPolicyRegistry() *PolicyRegistry {
	return &PolicyRegistry{overrides: make(map[string]map[string]RetryPolicy)}
}

// RegisterOverride installs a `pt_mapping_<connectorName>` policy for
// one task type, replacing whatever default would otherwise apply.
// Called during startup, before any consumer reads the registry — a
// connector with a slow settlement cycle wants a longer RSync curve
// than the default.
func (r *PolicyRegistry) RegisterOverride(connectorName, taskType string, policy RetryPolicy) {
	if r.overrides[connectorName] == nil {
		r.overrides[connectorName] = make(map[string]RetryPolicy)
	}
	r.overrides[connectorName][taskType] = policy
}

// PolicyFor resolves the retry policy for one task, preferring a
// connector-specific override over the task-type default.
func (r *PolicyRegistry) PolicyFor(connectorName, taskType string) RetryPolicy {
	if perConnector, ok := r.overrides[connectorName]; ok {
		if p, ok := perConnector[taskType]; ok {
			return p
		}
	}
	if p, ok := defaultPolicies[taskType]; ok {
		return p
	}
	return RetryPolicy{MaxRetries: 3, Intervals: []time.Duration{1 * time.Minute, 5 * time.Minute, 15 * time.Minute}}
}

// NextInterval returns the delay before the (retryCount+1)'th attempt,
// clamping to the policy's last configured interval once retryCount
// runs past the configured curve.
func (p RetryPolicy) NextInterval(retryCount int) time.Duration {
	if len(p.Intervals) == 0 {
		return time.Minute
	}
	if retryCount >= len(p.Intervals) {
		return p.Intervals[len(p.Intervals)-1]
	}
	return p.Intervals[retryCount]
}

// Exhausted reports whether retryCount has used up the policy's budget.
func (p RetryPolicy) Exhausted(retryCount int) bool {
	return retryCount >= p.MaxRetries
}
