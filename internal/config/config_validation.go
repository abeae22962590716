package config

// Policy names accepted by Upload.UnknownScanPolicy. An empty value is
// allowed and resolves to fail-closed downstream.
const (
	PolicyFailOpen   = "fail-open"
	PolicyFailClosed = "fail-closed"
)

// validate checks that the final merged [StructuredConfig] satisfies
// all application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.SearchHashKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// Wrapped keys cannot be persisted without a KEK to wrap them.
	if cfg.Storage.Keys.Passphrase == "" || cfg.Storage.Keys.Salt == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Upload.UnknownScanPolicy {
	case "", PolicyFailOpen, PolicyFailClosed:
	default:
		return ErrInvalidUploadConfigs
	}

	if cfg.Upload.MaxFileSizeBytes < 0 {
		return ErrInvalidUploadConfigs
	}

	return nil
}
