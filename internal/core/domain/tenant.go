package domain

import "time"

// Tenant isolates all data belonging to one deployment customer.
// MerchantAccount carries the TenantID; other entities reach their
// tenant only through their merchant, and storage queries are scoped by
// merchant, not by tenant.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// StorageScheme selects how a merchant's entities are persisted.
type StorageScheme string

const (
	StorageSchemePostgresOnly StorageScheme = "POSTGRES_ONLY"
	StorageSchemeRedisKV      StorageScheme = "REDIS_KV"
)

// MerchantAccount belongs to a tenant and owns one or more Profiles.
type MerchantAccount struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenant_id"`
	Name          string        `json:"name"`
	PublishableKey string       `json:"publishable_key"`
	APIKeyHash    string        `json:"-"` // hashed, never exposed
	AdminKeyHash  string        `json:"-"`
	StorageScheme StorageScheme `json:"storage_scheme"`
	WebhookURL    *string       `json:"webhook_url,omitempty"`
	WebhookSecretEnc string     `json:"-"` // envelope-encrypted HMAC signing secret
	WebhookSigAlgo   string     `json:"webhook_signature_algorithm"` // HMAC-SHA256 or HMAC-SHA512
	IsActive      bool          `json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
	ModifiedAt    time.Time     `json:"modified_at"`
}

// Profile is a business-unit scope under a merchant account; it owns
// connector credentials and a routing algorithm.
type Profile struct {
	ID                  string    `json:"id"`
	MerchantID          string    `json:"merchant_id"`
	Name                string    `json:"name"`
	RoutingAlgorithmID  *string   `json:"routing_algorithm_id,omitempty"`
	DefaultConnectorID  *string   `json:"default_connector_id,omitempty"`
	ReturnURL           *string   `json:"return_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	ModifiedAt          time.Time `json:"modified_at"`
}

// AuthType is the credential shape a MerchantConnectorAccount stores.
// Mirrors RouterData's auth sum type.
type AuthType string

const (
	AuthTypeHeaderKey     AuthType = "HEADER_KEY"
	AuthTypeBodyKey       AuthType = "BODY_KEY"
	AuthTypeSignatureKey  AuthType = "SIGNATURE_KEY"
	AuthTypeMultiAuthKey  AuthType = "MULTI_AUTH_KEY"
	AuthTypeCurrencyAuthKey AuthType = "CURRENCY_AUTH_KEY"
	AuthTypeCertificateAuth AuthType = "CERTIFICATE_AUTH"
)

// MerchantConnectorAccount is a credentialed binding of one Profile to
// one external processor. (profile_id, connector_name, label) is unique.
type MerchantConnectorAccount struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	MerchantID      string    `json:"merchant_id"`
	ConnectorName   string    `json:"connector_name"`
	ConnectorLabel  string    `json:"connector_label"`
	AuthType        AuthType  `json:"auth_type"`
	CredentialsEnc  string    `json:"-"` // envelope-encrypted JSON blob
	UseUCS          bool      `json:"use_ucs"` // route through Unified Connector Service
	Disabled        bool      `json:"disabled"`
	TestMode        bool      `json:"test_mode"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

// MerchantKeyStore holds the per-merchant data-encryption key, itself
// wrapped by the tenant master key. Loaded once per request path that
// touches encrypted fields and threaded explicitly through call sites —
// never read from global state.
type MerchantKeyStore struct {
	MerchantID   string    `json:"merchant_id"`
	WrappedKey   []byte    `json:"-"` // master-key-wrapped data key
	CreatedAt    time.Time `json:"created_at"`
}
