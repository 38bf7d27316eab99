package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// TenantCodePrefix is the fixed prefix of every human-facing tenant code.
const TenantCodePrefix = "COMP-"

// Bounds of the numeric suffix of a tenant code.
const (
	MinTenantCodeSuffix = 1000
	MaxTenantCodeSuffix = 9999
)

var tenantCodePattern = regexp.MustCompile(`^COMP-[1-9][0-9]{3}$`)

// TenantCode identifies a company for every tenant-scoped record, e.g. "COMP-4821".
type TenantCode string

// ParseTenantCode validates the COMP-#### format.
func ParseTenantCode(s string) (TenantCode, error) {
	if !tenantCodePattern.MatchString(s) {
		return "", fmt.Errorf("invalid tenant code %q: expected %s followed by four digits", s, TenantCodePrefix)
	}
	return TenantCode(s), nil
}

// NewTenantCode builds a code from a numeric suffix in [1000, 9999].
func NewTenantCode(suffix int) (TenantCode, error) {
	if suffix < MinTenantCodeSuffix || suffix > MaxTenantCodeSuffix {
		return "", fmt.Errorf("tenant code suffix %d out of range", suffix)
	}
	return TenantCode(TenantCodePrefix + strconv.Itoa(suffix)), nil
}

func (c TenantCode) String() string {
	return string(c)
}

// IsValid reports whether the code has the COMP-#### shape.
func (c TenantCode) IsValid() bool {
	return tenantCodePattern.MatchString(string(c))
}
