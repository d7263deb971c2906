package sms

import (
	"context"

	"github.com/ezabolo/SMS-reminder-app/internal/core/domain/sms"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SNSSender delivers text messages through AWS SNS. Messages are
// published as Transactional so carriers prioritize delivery.
type SNSSender struct {
	client *sns.Client
}

func NewSNSSender(awsConfig aws.Config) *SNSSender {
	return &SNSSender{client: sns.NewFromConfig(awsConfig)}
}

func (s *SNSSender) Send(ctx context.Context, to sms.PhoneNumber, text string) (sms.MessageID, error) {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(string(to)),
		Message:     aws.String(text),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		return "", err
	}
	return sms.MessageID(aws.ToString(out.MessageId)), nil
}
