package dagster

import (
	"context"
	"net/http"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

type Client interface {
	LaunchRun(ctx context.Context, params *LaunchParams) (LaunchRunResult, error)
}

type client struct {
	gql *graphql.Client
}

func (c *client) LaunchRun(ctx context.Context, params *LaunchParams) (LaunchRunResult, error) {
	data := new(launchRunData)
	if err := c.gql.Run(ctx, NewLaunchRequest(params), data); err != nil {
		return nil, err
	}

	return data.LaunchRun, nil
}

func New(endpoint string, httpClient *http.Client, logger *zap.Logger) Client {
	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) {
		logger.Debug(s, zap.String("endpoint", endpoint))
	}

	return &client{gql: gql}
}
