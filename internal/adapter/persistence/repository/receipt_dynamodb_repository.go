package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const userPhoneIndex = "user_phone-index"

type receiptItem struct {
	ID                 string `dynamodbav:"id"`
	UserPhone          string `dynamodbav:"user_phone"`
	Number             string `dynamodbav:"receipt_number"`
	ClientName         string `dynamodbav:"client_name"`
	ClientDocument     string `dynamodbav:"client_document"`
	ServiceName        string `dynamodbav:"service_name"`
	ServiceDescription string `dynamodbav:"service_description,omitempty"`
	Amount             string `dynamodbav:"amount"`
	Currency           string `dynamodbav:"currency"`
	ServiceDate        string `dynamodbav:"service_date"`
	Category           string `dynamodbav:"service_category"`
	Status             string `dynamodbav:"status"`
	GeneratedVia       string `dynamodbav:"generated_via"`
	DocumentHash       string `dynamodbav:"document_hash"`
	Filename           string `dynamodbav:"filename"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// ReceiptDynamoRepository persists Receipt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_phone-index: PK user_phone, SK created_at
//
// Listings query the GSI newest-first; dashboards and the bot history both
// ride on that ordering.

type ReceiptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client, tableName string) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ReceiptDynamoRepository) Create(ctx context.Context, rec entities.Receipt) (entities.Receipt, error) {
	av, err := attributevalue.MarshalMap(toReceiptItem(rec))
	if err != nil {
		return entities.Receipt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Receipt{}, err
	}
	return rec, nil
}

func (r *ReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.Receipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receipt{}, err
	}
	return fromReceiptItem(it), nil
}

// ListByUserPhone returns the user's receipts newest-first, up to limit
// (limit <= 0 means no cap).
func (r *ReceiptDynamoRepository) ListByUserPhone(ctx context.Context, phone string, limit int) ([]entities.Receipt, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userPhoneIndex),
		KeyConditionExpression: aws.String("#user_phone = :user_phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_phone": &types.AttributeValueMemberS{Value: phone},
		},
		ExpressionAttributeNames: map[string]string{
			"#user_phone": "user_phone",
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	var receipts []entities.Receipt
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		var items []receiptItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			receipts = append(receipts, fromReceiptItem(it))
			if limit > 0 && len(receipts) == limit {
				return receipts, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return receipts, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func (r *ReceiptDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Receipt{}, nil
		}
		return entities.Receipt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Receipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Receipt{}, err
	}
	return fromReceiptItem(it), nil
}

func toReceiptItem(rec entities.Receipt) receiptItem {
	return receiptItem{
		ID:                 rec.ID,
		UserPhone:          rec.UserPhone,
		Number:             rec.Number,
		ClientName:         rec.ClientName,
		ClientDocument:     rec.ClientDocument,
		ServiceName:        rec.ServiceName,
		ServiceDescription: rec.ServiceDescription,
		Amount:             floatToString(rec.Amount),
		Currency:           rec.Currency,
		ServiceDate:        rec.ServiceDate,
		Category:           rec.Category,
		Status:             string(rec.Status),
		GeneratedVia:       rec.GeneratedVia,
		DocumentHash:       rec.DocumentHash,
		Filename:           rec.Filename,
		CreatedAt:          formatTime(rec.CreatedAt),
		UpdatedAt:          formatTime(rec.UpdatedAt),
	}
}

func fromReceiptItem(it receiptItem) entities.Receipt {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Receipt{
		ID:                 it.ID,
		UserPhone:          it.UserPhone,
		Number:             it.Number,
		ClientName:         it.ClientName,
		ClientDocument:     it.ClientDocument,
		ServiceName:        it.ServiceName,
		ServiceDescription: it.ServiceDescription,
		Amount:             amount,
		Currency:           it.Currency,
		ServiceDate:        it.ServiceDate,
		Category:           it.Category,
		Status:             entities.ReceiptStatus(it.Status),
		GeneratedVia:       it.GeneratedVia,
		DocumentHash:       it.DocumentHash,
		Filename:           it.Filename,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
