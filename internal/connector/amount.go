package connector

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmountUnit is the wire shape a connector expects amounts in.
type AmountUnit string

const (
	UnitMinor       AmountUnit = "minor"        // integer, smallest currency unit (cents)
	UnitFloatMajor  AmountUnit = "float_major"   // float, major unit (dollars)
	UnitStringMinor AmountUnit = "string_minor"  // string-encoded integer minor unit
	UnitStringMajor AmountUnit = "string_major"  // string-encoded decimal major unit
)

// AmountConvertor converts the canonical internal amount (a minor-unit
// int64) into whatever unit a given connector's wire format expects
// and back for parsing connector responses.
type AmountConvertor interface {
	ToConnector(minorUnits int64, currency string) (any, error)
	FromConnector(value any, currency string) (int64, error)
}

// decimalExponent returns the number of minor-unit decimal places for
// currency: 0 for the zero-decimal currencies JPY, KRW, VND and CLP, and
// 2 for every other currency.
func decimalExponent(currency string) int32 {
	switch currency {
	case "JPY", "KRW", "VND", "CLP":
		return 0
	default:
		return 2
	}
}

// MinorUnitConvertor passes the canonical amount through unchanged —
// the connector's wire format already matches the internal model.
type MinorUnitConvertor struct{}

func (MinorUnitConvertor) ToConnector(minorUnits int64, currency string) (any, error) {
	return minorUnits, nil
}

func (MinorUnitConvertor) FromConnector(value any, currency string) (int64, error) {
	return toInt64(value)
}

// StringMinorUnitConvertor renders the minor-unit integer as a decimal
// string, the shape several connectors require in JSON bodies.
type StringMinorUnitConvertor struct{}

func (StringMinorUnitConvertor) ToConnector(minorUnits int64, currency string) (any, error) {
	return fmt.Sprintf("%d", minorUnits), nil
}

func (StringMinorUnitConvertor) FromConnector(value any, currency string) (int64, error) {
	return toInt64(value)
}

// FloatMajorUnitConvertor renders the amount as a floating-point major
// unit (e.g. 19.99), via shopspring/decimal so the division never loses
// cents to binary floating-point rounding.
type FloatMajorUnitConvertor struct{}

func (FloatMajorUnitConvertor) ToConnector(minorUnits int64, currency string) (any, error) {
	exp := decimalExponent(currency)
	major := decimal.New(minorUnits, -exp)
	f, _ := major.Float64()
	return f, nil
}

func (FloatMajorUnitConvertor) FromConnector(value any, currency string) (int64, error) {
	exp := decimalExponent(currency)
	var major decimal.Decimal
	switch v := value.(type) {
	case float64:
		major = decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return 0, fmt.Errorf("parsing major-unit amount %q: %w", v, err)
		}
		major = d
	default:
		return 0, fmt.Errorf("unsupported major-unit amount type %T", value)
	}
	return major.Shift(exp).Round(0).IntPart(), nil
}

// StringMajorUnitConvertor renders the amount as a decimal string major
// unit (e.g. "19.99"), the shape some connectors require over SignatureKey auth.
type StringMajorUnitConvertor struct{}

func (StringMajorUnitConvertor) ToConnector(minorUnits int64, currency string) (any, error) {
	exp := decimalExponent(currency)
	return decimal.New(minorUnits, -exp).StringFixed(exp), nil
}

func (StringMajorUnitConvertor) FromConnector(value any, currency string) (int64, error) {
	exp := decimalExponent(currency)
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("unsupported string major-unit amount type %T", value)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing major-unit amount %q: %w", s, err)
	}
	return d.Shift(exp).Round(0).IntPart(), nil
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		var i int64
		if _, err := fmt.Sscanf(v, "%d", &i); err != nil {
			return 0, fmt.Errorf("parsing minor-unit amount %q: %w", v, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("unsupported minor-unit amount type %T", value)
	}
}

// ConvertorFor resolves the AmountConvertor a named connector uses.
// Unknown connectors default to MinorUnitConvertor, the safest
// identity mapping.
func ConvertorFor(connectorName string) AmountConvertor {
	switch connectorName {
	case "generic":
		return FloatMajorUnitConvertor{}
	case "mock":
		return MinorUnitConvertor{}
	default:
		return MinorUnitConvertor{}
	}
}
