package dagster

import (
	"bytes"
	"encoding/json"
)

const (
	LaunchRunSuccessType           = "LaunchRunSuccess"
	RunConfigValidationInvalidType = "RunConfigValidationInvalid"
	PythonErrorType                = "PythonError"
)

// LaunchRunResult is one member of the launchRun union. Callers match it with a
// type switch over the pointer types below; a nil result means the payload
// was absent.
type LaunchRunResult interface {
	Typename() string
	isLaunchRunResult()
}

type Run struct {
	RunID string `json:"runId"`
}

type LaunchRunSuccess struct {
	Run *Run `json:"run"`
}

func (*LaunchRunSuccess) Typename() string { return LaunchRunSuccessType }
func (*LaunchRunSuccess) isLaunchRunResult() {}

type ValidationError struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type RunConfigValidationInvalid struct {
	Errors []ValidationError `json:"errors"`
}

func (*RunConfigValidationInvalid) Typename() string { return RunConfigValidationInvalidType }
func (*RunConfigValidationInvalid) isLaunchRunResult() {}

type PythonError struct {
	Message string `json:"message"`
}

func (*PythonError) Typename() string { return PythonErrorType }
func (*PythonError) isLaunchRunResult() {}

// UnsupportedResult covers the union members the mutation only asks
// __typename for, e.g. JobNotFoundError or InvalidSubsetError.
type UnsupportedResult struct {
	Name string
}

func (u *UnsupportedResult) Typename() string { return u.Name }
func (*UnsupportedResult) isLaunchRunResult() {}

type launchRunData struct {
	LaunchRun LaunchRunResult
}

func (d *launchRunData) UnmarshalJSON(data []byte) error {
	raw := new(struct {
		LaunchRun json.RawMessage `json:"launchRun"`
	})

	if err := json.Unmarshal(data, raw); err != nil {
		return err
	}

	res, err := decodeLaunchRun(raw.LaunchRun)
	if err != nil {
		return err
	}

	d.LaunchRun = res
	return nil
}

func decodeLaunchRun(data json.RawMessage) (LaunchRunResult, error) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	tag := new(struct {
		Typename string `json:"__typename"`
	})

	if err := json.Unmarshal(data, tag); err != nil {
		return nil, err
	}

	var res LaunchRunResult
	switch tag.Typename {
	case LaunchRunSuccessType:
		res = new(LaunchRunSuccess)
	case RunConfigValidationInvalidType:
		res = new(RunConfigValidationInvalid)
	case PythonErrorType:
		res = new(PythonError)
	default:
		return &UnsupportedResult{Name: tag.Typename}, nil
	}

	if err := json.Unmarshal(data, res); err != nil {
		return nil, err
	}

	return res, nil
}
