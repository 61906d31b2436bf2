package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hgkcho/dagstertest/internal/config"
	"github.com/hgkcho/dagstertest/internal/launcher"
	"go.uber.org/zap"
)

const (
	contentTypeHeader = "content-type"
	jsonContentType   = "application/json"
)

type APIGatewayHandler func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// ServiceFactory builds the launch service for the configuration loaded by
// the current invocation.
type ServiceFactory func(cfg *config.Config) launcher.Service

type launchResponse struct {
	RunID string `json:"run_id"`
}

func SetupLaunchHandler(load config.Loader, newSvc ServiceFactory, logger *zap.Logger) APIGatewayHandler {
	return func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		cfg, cfgErr := load()
		if cfgErr != nil {
			logger.Error("failed to load config", zap.Error(cfgErr))
			return events.APIGatewayV2HTTPResponse{}, launcher.InternalServerError(cfgErr)
		}

		if !isAuthorized(req.Headers, cfg.Signiture) {
			logger.Error("signature mismatch")
			return events.APIGatewayV2HTTPResponse{}, launcher.NotAuthorizedError()
		}

		run, err := newSvc(cfg).Launch(ctx)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{contentTypeHeader: jsonContentType},
			Body:       launcher.ToJSON(launchResponse{RunID: run.RunID}),
		}, nil
	}
}
