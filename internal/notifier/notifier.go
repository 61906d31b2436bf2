package notifier

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const (
	messageSource    = "DagsterProxy"
	jobNameAttribute = "JobName"
)

type LaunchedEvent struct {
	RunID                  string
	JobName                string
	RepositoryName         string
	RepositoryLocationName string
}

type Notifier interface {
	NotifyLaunched(ctx context.Context, e *LaunchedEvent) error
}

type PublishAPIClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type notifier struct {
	client PublishAPIClient
	topic  string
}

// NotifyLaunched is a no-op when no topic is configured.
func (n *notifier) NotifyLaunched(ctx context.Context, e *LaunchedEvent) error {
	if n.topic == "" {
		return nil
	}

	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topic),
		Message:  aws.String(getMessage(messageSource, e)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			jobNameAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(e.JobName),
			},
		},
	})

	return err
}

func getMessage(source string, e *LaunchedEvent) string {
	b, _ := json.Marshal(struct {
		Source string
		*LaunchedEvent
	}{
		Source:        source,
		LaunchedEvent: e,
	})

	return string(b)
}

func New(client PublishAPIClient, topic string) Notifier {
	return &notifier{client: client, topic: topic}
}
