package repository

import (
	"context"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type usageItem struct {
	ID        string `dynamodbav:"id"`
	UserPhone string `dynamodbav:"user_phone"`
	Type      string `dynamodbav:"type"`
	ReceiptID string `dynamodbav:"receipt_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// UsageDynamoRepository persists UsageEvent records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_phone-index: PK user_phone, SK created_at
//
// Quota reads count events in the current calendar month via the GSI, so the
// check reflects committed generations rather than a cached counter.

type UsageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUsageRepository = (*UsageDynamoRepository)(nil)

func NewUsageDynamoRepository(ddb *dynamodb.Client, tableName string) *UsageDynamoRepository {
	return &UsageDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UsageDynamoRepository) Record(ctx context.Context, e entities.UsageEvent) error {
	av, err := attributevalue.MarshalMap(usageItem{
		ID:        e.ID,
		UserPhone: e.UserPhone,
		Type:      e.Type,
		ReceiptID: e.ReceiptID,
		CreatedAt: formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// CountByUserSince counts events of one type with created_at >= since,
// paginating the GSI with a COUNT projection.
func (r *UsageDynamoRepository) CountByUserSince(ctx context.Context, phone, eventType string, since time.Time) (int, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userPhoneIndex),
		KeyConditionExpression: aws.String("#user_phone = :user_phone AND #created_at >= :since"),
		FilterExpression:       aws.String("#type = :type"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_phone": &types.AttributeValueMemberS{Value: phone},
			":since":      &types.AttributeValueMemberS{Value: formatTime(since)},
			":type":       &types.AttributeValueMemberS{Value: eventType},
		},
		ExpressionAttributeNames: map[string]string{
			"#user_phone": "user_phone",
			"#created_at": "created_at",
			"#type":       "type",
		},
		Select: types.SelectCount,
	}

	total := 0
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)

		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
