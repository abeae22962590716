package service

import (
	"github.com/vidabem/securechat/internal/config"
	"github.com/vidabem/securechat/internal/crypto"
	"github.com/vidabem/securechat/internal/expiration"
	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
	"github.com/vidabem/securechat/internal/upload"
)

// expirationOptions converts configured TTL seconds into the service's
// option type. Empty config keeps the built-in set.
func expirationOptions(seconds []int64) []expiration.TTL {
	options := make([]expiration.TTL, len(seconds))
	for i, s := range seconds {
		options[i] = expiration.TTL(s)
	}
	return options
}

// Services aggregates the application services behind one wiring
// point. Expiration is exposed directly so the transport layer can
// serve TTL options and status without a wrapper.
type Services struct {
	Messages    MessageService
	Attachments AttachmentService
	Exchange    ExchangeService
	Expiration  *expiration.Service
}

// NewServices wires every service from the shared building blocks.
func NewServices(
	storages *store.Storages,
	keys KeyProvider,
	registry *crypto.Registry,
	scanner upload.Scanner,
	policy upload.Policy,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	expirationSvc := expiration.NewService(expirationOptions(cfg.App.ExpirationOptionsSeconds)...)
	hasher := crypto.NewSearchHasher(cfg.App.SearchHashKey)
	validator := upload.NewValidator(cfg.Upload)

	return &Services{
		Messages:    NewMessageService(storages.Messages, keys, registry, hasher, expirationSvc, logger),
		Attachments: NewAttachmentService(storages.Attachments, keys, registry, validator, scanner, policy, logger),
		Exchange:    NewExchangeService(keys, registry, logger),
		Expiration:  expirationSvc,
	}
}
