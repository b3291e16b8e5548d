package aws

import (
	"context"
	"encoding/json"
	"time"

	"logistics-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PromoEventPublisher publishes promotion redemption events to SQS so
// downstream consumers (analytics, marketing) can react to promo usage.
type PromoEventPublisher struct {
	client   *sqs.Client
	queueURL string
}

// PromoRedeemedEvent is the message body for a single redemption.
type PromoRedeemedEvent struct {
	Code       string    `json:"code"`
	CustomerID string    `json:"customer_id,omitempty"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// NewPromoEventPublisher creates a publisher for the given queue URL using
// the default AWS credential chain.
func NewPromoEventPublisher(ctx context.Context, queueURL string) (*PromoEventPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}
	return &PromoEventPublisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// PublishPromoRedeemed sends a redemption event. Callers treat this as
// best-effort; a failure is logged and must not block order placement.
func (p *PromoEventPublisher) PublishPromoRedeemed(ctx context.Context, event PromoRedeemedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal promo event")
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String("promo.redeemed"),
			},
		},
	})
	if err != nil {
		logger.Error("failed to publish promo event",
			zap.String("code", event.Code),
			zap.Error(err))
		return errors.Wrap(err, "failed to send SQS message")
	}
	return nil
}
