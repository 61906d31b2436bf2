package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	appconfig "github.com/hgkcho/dagstertest/internal/config"
	"github.com/hgkcho/dagstertest/internal/dagster"
	"github.com/hgkcho/dagstertest/internal/handler"
	"github.com/hgkcho/dagstertest/internal/launcher"
	"github.com/hgkcho/dagstertest/internal/notifier"
	"go.uber.org/zap"
)

const (
	regionEnv = "DEFAULT_REGION"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithDefaultRegion(os.Getenv(regionEnv)),
	)

	if err != nil {
		logger.Fatal(fmt.Sprintf("aws sdk error: %v", err.Error()))
	}

	snsClient := sns.NewFromConfig(cfg)
	httpClient := new(http.Client)

	lambda.Start(handler.SetupLaunchHandler(
		appconfig.Load,
		func(c *appconfig.Config) launcher.Service {
			return launcher.New(
				dagster.New(c.DagsterEndpoint, httpClient, logger),
				dagster.DefaultLaunchParams(),
				notifier.New(snsClient, c.LaunchTopic),
				logger,
			)
		},
		logger,
	))
}
