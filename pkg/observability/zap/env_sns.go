package zap

import (
	"context"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Environment variables consulted by DefaultEnvironmentErrorNotifications, in order.
const (
	EnvErrorTopicARN = "ZONETHEORY_ERROR_NOTIFICATIONS_TOPIC_ARN"
	EnvErrorSubject  = "ZONETHEORY_ERROR_NOTIFICATIONS_SUBJECT"
)

type EnvironmentErrorNotificationsOptions struct {
	TopicARNEnvVars []string
	SubjectEnvVars  []string
}

// WithEnvironmentErrorNotifications installs an SNS notifier when one of the
// topic variables is set. It is a no-op otherwise.
func WithEnvironmentErrorNotifications(ctx context.Context, config EnvironmentErrorNotificationsOptions) Option {
	return withEnvironmentErrorNotifications(ctx, config, func(ctx context.Context) (snsAPI, error) {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return sns.NewFromConfig(awsCfg), nil
	})
}

func withEnvironmentErrorNotifications(
	ctx context.Context,
	config EnvironmentErrorNotificationsOptions,
	newClient func(context.Context) (snsAPI, error),
) Option {
	return func(opts *loggerOptions) {
		topicARN := firstEnvValue(config.TopicARNEnvVars...)
		if topicARN == "" {
			return
		}
		if ctx == nil {
			ctx = context.Background()
		}

		client, err := newClient(ctx)
		if err != nil {
			opts.initErr = err
			return
		}
		opts.notifier = NewSNSNotifier(client, topicARN, SNSNotifierOptions{
			Subject: firstEnvValue(config.SubjectEnvVars...),
		})
	}
}

func DefaultEnvironmentErrorNotifications() EnvironmentErrorNotificationsOptions {
	return EnvironmentErrorNotificationsOptions{
		TopicARNEnvVars: []string{EnvErrorTopicARN, "ERROR_NOTIFICATIONS_TOPIC_ARN"},
		SubjectEnvVars:  []string{EnvErrorSubject},
	}
}

func firstEnvValue(keys ...string) string {
	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}
