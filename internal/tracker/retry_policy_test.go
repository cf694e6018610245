package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFor_DefaultsByTaskType(t *testing.T) {
	policies := NewPolicyRegistry()
	p := policies.PolicyFor("mock", "webhook_delivery")
	assert.Equal(t, 6, p.MaxRetries)
	assert.Equal(t, 24*time.Hour, p.Intervals[len(p.Intervals)-1])
}

func TestPolicyFor_UnknownTaskTypeFallsBackToGenericDefault(t *testing.T) {
	policies := NewPolicyRegistry()
	p := policies.PolicyFor("mock", "something_unmodeled")
	assert.Equal(t, 3, p.MaxRetries)
}

func TestPolicyFor_ConnectorOverrideWins(t *testing.T) {
	policies := NewPolicyRegistry()
	policies.RegisterOverride("slow_settlement_connector", "refund_sync", RetryPolicy{
		MaxRetries: 2,
		Intervals:  []time.Duration{1 * time.Hour, 6 * time.Hour},
	})

	p := policies.PolicyFor("slow_settlement_connector", "refund_sync")
	assert.Equal(t, 2, p.MaxRetries)
	assert.Equal(t, 1*time.Hour, p.Intervals[0])

	other := policies.PolicyFor("mock", "refund_sync")
	assert.Equal(t, 5, other.MaxRetries, "override for one connector must not leak to another")
}

func TestNextInterval_ClampsToLastConfiguredInterval(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, Intervals: []time.Duration{time.Second, 2 * time.Second}}

	assert.Equal(t, time.Second, p.NextInterval(0))
	assert.Equal(t, 2*time.Second, p.NextInterval(1))
	assert.Equal(t, 2*time.Second, p.NextInterval(5), "retry past the configured curve clamps to the last interval")
}

func TestExhausted(t *testing.T) {
	p := RetryPolicy{MaxRetries: 2}
	assert.False(t, p.Exhausted(0))
	assert.False(t, p.Exhausted(1))
	assert.True(t, p.Exhausted(2))
}
