package impl

import (
	"context"
	"log/slog"
	"strings"
	"text/template"

	"socialgate/config"
	deliverycontext "socialgate/internal/delivery/context"
	"socialgate/internal/domain/repository"
	"socialgate/internal/domain/service"
	"socialgate/internal/usecase"

	"github.com/pkg/errors"
)

// FCM rejects multicasts above this many tokens per request.
const pushBatchSize = 500

const welcomeTemplateName = "welcome"

// pushService implements the PushUsecase interface. Templates come from
// configuration and are parsed once at construction.
type pushService struct {
	gateway   service.PushGateway
	tokens    repository.DeviceTokenStore
	templates map[string]*messageTemplate
	logger    *slog.Logger
}

type messageTemplate struct {
	title *template.Template
	body  *template.Template
}

// NewPushService is the constructor for pushService.
func NewPushService(
	gateway service.PushGateway,
	tokens repository.DeviceTokenStore,
	cfg *config.PushConfig,
	logger *slog.Logger,
) (usecase.PushUsecase, error) {
	templates := make(map[string]*messageTemplate)
	if cfg != nil {
		for name, tmpl := range cfg.Templates {
			title, err := template.New(name + ".title").Parse(tmpl.Title)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse title template %s", name)
			}
			body, err := template.New(name + ".body").Parse(tmpl.Body)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse body template %s", name)
			}
			templates[name] = &messageTemplate{title: title, body: body}
		}
	}

	return &pushService{
		gateway:   gateway,
		tokens:    tokens,
		templates: templates,
		logger:    logger,
	}, nil
}

// NotifyLogin renders the welcome template for a login event and dispatches
// it to the account's registered device tokens in bounded batches.
func (srv *pushService) NotifyLogin(ctx context.Context, event *service.LoginEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	tmpl, ok := srv.templates[welcomeTemplateName]
	if !ok {
		logger.Debug("No welcome template configured, skipping push")

		return nil
	}

	// 1. Collect the target device tokens
	tokens, err := srv.tokens.GetDeviceTokens(ctx, event.AccountID)
	if err != nil {
		return errors.Wrap(err, "failed to load device tokens")
	}
	if len(tokens) == 0 {
		logger.Debug("No device tokens registered",
			slog.String("account_id", event.AccountID),
		)

		return nil
	}

	// 2. Render the message
	title, err := renderTemplate(tmpl.title, event)
	if err != nil {
		return errors.Wrap(err, "failed to render title")
	}
	body, err := renderTemplate(tmpl.body, event)
	if err != nil {
		return errors.Wrap(err, "failed to render body")
	}

	data := map[string]string{
		"eventType": service.EventTypeLogin,
		"provider":  event.Provider,
	}

	// 3. Dispatch in batches within the FCM multicast limit
	var totalSuccess, totalFailure int
	for start := 0; start < len(tokens); start += pushBatchSize {
		end := min(start+pushBatchSize, len(tokens))

		success, failure, invalid, err := srv.gateway.SendBatch(ctx, tokens[start:end], title, body, data)
		if err != nil {
			return errors.Wrap(err, "failed to send push batch")
		}
		totalSuccess += success
		totalFailure += failure

		if len(invalid) > 0 {
			logger.Warn("Invalid device tokens reported",
				slog.String("account_id", event.AccountID),
				slog.Int("count", len(invalid)),
			)
		}
	}

	logger.Info("Login push dispatched",
		slog.String("account_id", event.AccountID),
		slog.Int("success", totalSuccess),
		slog.Int("failure", totalFailure),
	)

	return nil
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.WithStack(err)
	}

	return sb.String(), nil
}
