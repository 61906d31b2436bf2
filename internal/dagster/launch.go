package dagster

import "github.com/machinebox/graphql"

const (
	defaultRepositoryLocationName = "tutorial"
	defaultRepositoryName         = "__repository__"
	defaultJobName                = "hackernews_job"
	defaultRunConfigData          = `{"resources":{"io_manager":{"config":{"base_dir":"data"}}}}`
)

const (
	repositoryLocationNameVar = "repository_location_name"
	repositoryNameVar         = "repository_name"
	jobNameVar                = "job_name"
	runConfigDataVar          = "run_config_data"
)

const launchRunMutation = `
mutation LaunchRunMutation(
  $repository_location_name: String!
  $repository_name: String!
  $job_name: String!
  $run_config_data: RunConfigData!
) {
  launchRun(
    executionParams: {
      selector: {
        repositoryLocationName: $repository_location_name
        repositoryName: $repository_name
        jobName: $job_name
      }
      runConfigData: $run_config_data
    }
  ) {
    __typename
    ... on LaunchRunSuccess {
      run {
        runId
      }
    }
    ... on RunConfigValidationInvalid {
      errors {
        message
        reason
      }
    }
    ... on PythonError {
      message
    }
  }
}
`

// LaunchParams selects the job to launch. RunConfigData is sent as a
// JSON-encoded string, not as a nested object.
type LaunchParams struct {
	RepositoryLocationName string
	RepositoryName         string
	JobName                string
	RunConfigData          string
}

func DefaultLaunchParams() *LaunchParams {
	return &LaunchParams{
		RepositoryLocationName: defaultRepositoryLocationName,
		RepositoryName:         defaultRepositoryName,
		JobName:                defaultJobName,
		RunConfigData:          defaultRunConfigData,
	}
}

func NewLaunchRequest(params *LaunchParams) *graphql.Request {
	req := graphql.NewRequest(launchRunMutation)
	req.Var(repositoryLocationNameVar, params.RepositoryLocationName)
	req.Var(repositoryNameVar, params.RepositoryName)
	req.Var(jobNameVar, params.JobName)
	req.Var(runConfigDataVar, params.RunConfigData)

	return req
}
