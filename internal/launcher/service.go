package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
	"github.com/hgkcho/dagstertest/internal/dagster"
	"github.com/hgkcho/dagstertest/internal/notifier"
	"go.uber.org/zap"
)

type Service interface {
	Launch(ctx context.Context) (*dagster.Run, error)
}

type service struct {
	client   dagster.Client
	params   *dagster.LaunchParams
	notifier notifier.Notifier
	logger   *zap.Logger
}

func (svc *service) Launch(ctx context.Context) (*dagster.Run, error) {
	res, err := svc.client.LaunchRun(ctx, svc.params)
	if err != nil {
		svc.logger.Error("failed to launch run", zap.Error(err))
		return nil, NewError(err.Error(), err)
	}

	run, err := svc.getRun(res)
	if err != nil {
		return nil, err
	}

	svc.logger.Info(fmt.Sprintf(`launch a run successfully. run_id: %v`, run.RunID))
	svc.notify(ctx, run)

	return run, nil
}

// getRun only accepts a LaunchRunSuccess carrying a run. Details of the other
// variants are logged and never returned to the caller.
func (svc *service) getRun(res dagster.LaunchRunResult) (*dagster.Run, error) {
	switch r := res.(type) {
	case *dagster.LaunchRunSuccess:
		if r.Run != nil {
			return r.Run, nil
		}

		svc.logger.Error("launch run succeeded without a run")
	case *dagster.RunConfigValidationInvalid:
		reasons := make([]string, 0)
		for _, e := range r.Errors {
			reasons = append(reasons, fmt.Sprintf(`%v: %v`, e.Reason, e.Message))
		}

		svc.logger.Error("run config validation invalid", zap.Strings("errors", reasons))
	case *dagster.PythonError:
		svc.logger.Error("dagster python error", zap.String("message", r.Message))
	case *dagster.UnsupportedResult:
		svc.logger.Error("unsupported launch run result", zap.String("typename", r.Typename()))
	case nil:
		svc.logger.Error("launch run payload is absent")
	default:
		svc.logger.Error("unknown launch run result", zap.String("typename", r.Typename()))
	}

	return nil, InternalServerError(nil)
}

func (svc *service) notify(ctx context.Context, run *dagster.Run) {
	err := svc.notifier.NotifyLaunched(ctx, &notifier.LaunchedEvent{
		RunID:                  run.RunID,
		JobName:                svc.params.JobName,
		RepositoryName:         svc.params.RepositoryName,
		RepositoryLocationName: svc.params.RepositoryLocationName,
	})

	if err == nil {
		return
	}

	fields := []zap.Field{zap.String("run_id", run.RunID), zap.Error(err)}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("code", apiErr.ErrorCode()))
	}

	svc.logger.Warn("failed to notify launched run", fields...)
}

func New(
	client dagster.Client,
	params *dagster.LaunchParams,
	n notifier.Notifier,
	logger *zap.Logger,
) Service {
	return &service{
		client:   client,
		params:   params,
		notifier: n,
		logger:   logger,
	}
}
