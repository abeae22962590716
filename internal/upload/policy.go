package upload

import (
	"fmt"

	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/models"
)

// Policy decides the fate of a file whose malware scan produced no
// verdict. Infected files are rejected under every policy.
type Policy int

const (
	// FailClosed rejects files without a scan verdict. This is the
	// default: an unscannable file is treated as hostile.
	FailClosed Policy = iota
	// FailOpen admits files without a scan verdict.
	FailOpen
)

// ParsePolicy resolves a configured policy name. The empty string
// resolves to FailClosed; anything other than the two known names is
// ErrInvalidPolicy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", config.PolicyFailClosed:
		return FailClosed, nil
	case config.PolicyFailOpen:
		return FailOpen, nil
	default:
		return FailClosed, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	if p == FailOpen {
		return config.PolicyFailOpen
	}
	return config.PolicyFailClosed
}

// Admit applies the policy to a scan outcome. A clean verdict admits,
// an infected verdict rejects with ErrInfected, and an unknown verdict
// falls to the policy: nil under FailOpen, ErrScanFailed under
// FailClosed.
func (p Policy) Admit(result models.ScanResult) error {
	switch result.Status {
	case models.ScanClean:
		return nil
	case models.ScanInfected:
		return ErrInfected
	default:
		if p == FailOpen {
			return nil
		}
		return ErrScanFailed
	}
}
