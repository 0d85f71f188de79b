package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recibozap/internal/domain/entities"
	"recibozap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const yearCounterPrefix = "receipts_count_"

type userItem struct {
	Phone              string `dynamodbav:"phone"`
	Name               string `dynamodbav:"name"`
	Email              string `dynamodbav:"email"`
	FullName           string `dynamodbav:"full_name,omitempty"`
	CpfCnpj            string `dynamodbav:"cpf_cnpj,omitempty"`
	ProfileComplete    bool   `dynamodbav:"profile_complete"`
	Plan               string `dynamodbav:"plan"`
	SubscriptionStatus string `dynamodbav:"subscription_status"`
	StripeCustomerID   string `dynamodbav:"stripe_customer_id,omitempty"`
	StripeSubID        string `dynamodbav:"stripe_subscription_id,omitempty"`
	ReceiptsUsed       int    `dynamodbav:"receipts_used"`
	LastReceiptAt      string `dynamodbav:"last_receipt_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: phone (string, normalized E.164)
//
// The per-year numbering counters live on the same item as dynamic
// receipts_count_<year> number attributes; they are incremented with an
// atomic ADD so concurrent generations never hand out the same sequence.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

// Create inserts the user if the phone is unseen; on a concurrent insert the
// existing record wins and is returned.
func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#phone)"),
		ExpressionAttributeNames: map[string]string{
			"#phone": "phone",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByPhone(ctx, u.Phone)
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByPhone(ctx context.Context, phone string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Item)
}

func (r *UserDynamoRepository) UpdateProfile(ctx context.Context, phone, fullName, cpfCnpj string) (entities.User, error) {
	complete := fullName != "" && cpfCnpj != ""
	return r.update(ctx, phone, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #full_name = :full_name, #cpf_cnpj = :cpf_cnpj, #profile_complete = :profile_complete, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":full_name":        &types.AttributeValueMemberS{Value: fullName},
			":cpf_cnpj":         &types.AttributeValueMemberS{Value: cpfCnpj},
			":profile_complete": &types.AttributeValueMemberBOOL{Value: complete},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#full_name":        "full_name",
			"#cpf_cnpj":         "cpf_cnpj",
			"#profile_complete": "profile_complete",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) UpdateSubscription(ctx context.Context, phone string, plan entities.PlanID, status entities.SubscriptionStatus) (entities.User, error) {
	return r.update(ctx, phone, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #plan = :plan, #subscription_status = :subscription_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":plan":                &types.AttributeValueMemberS{Value: string(plan)},
			":subscription_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":          &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#plan":                "plan",
			"#subscription_status": "subscription_status",
			"#updated_at":          "updated_at",
		}
		return expr, vals, names
	})
}

func (r *UserDynamoRepository) IncrementUsage(ctx context.Context, phone string) error {
	now := formatTime(time.Now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConditionExpression: aws.String("attribute_exists(#phone)"),
		UpdateExpression:    aws.String("ADD #receipts_used :one SET #last_receipt_at = :now, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#phone":           "phone",
			"#receipts_used":   "receipts_used",
			"#last_receipt_at": "last_receipt_at",
			"#updated_at":      "updated_at",
		},
	})
	return err
}

// IncrementYearCounter atomically bumps receipts_count_<year> and returns the
// new value, which is the receipt's sequence number for that year.
func (r *UserDynamoRepository) IncrementYearCounter(ctx context.Context, phone string, year int) (int, error) {
	counter := fmt.Sprintf("%s%d", yearCounterPrefix, year)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConditionExpression: aws.String("attribute_exists(#phone)"),
		UpdateExpression:    aws.String("ADD #counter :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ExpressionAttributeNames: map[string]string{
			"#phone":   "phone",
			"#counter": counter,
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes[counter].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("unexpected counter attribute type for %s", counter)
	}
	return strconv.Atoi(n.Value)
}

func (r *UserDynamoRepository) update(
	ctx context.Context,
	phone string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.User, error) {
	now := formatTime(time.Now())
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: phone},
		},
		ConditionExpression:       aws.String("attribute_exists(#phone)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#phone": "phone"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.User{}, nil
	}
	return unmarshalUser(out.Attributes)
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		Phone:              u.Phone,
		Name:               u.Name,
		Email:              u.Email,
		FullName:           u.FullName,
		CpfCnpj:            u.CpfCnpj,
		ProfileComplete:    u.ProfileComplete,
		Plan:               string(u.Plan),
		SubscriptionStatus: string(u.SubscriptionStatus),
		StripeCustomerID:   u.StripeCustomerID,
		StripeSubID:        u.StripeSubID,
		ReceiptsUsed:       u.ReceiptsUsed,
		CreatedAt:          formatTime(u.CreatedAt),
		UpdatedAt:          formatTime(u.UpdatedAt),
	}
	if !u.LastReceiptAt.IsZero() {
		it.LastReceiptAt = formatTime(u.LastReceiptAt)
	}
	return it
}

// unmarshalUser decodes the static fields via attributevalue and then picks the
// dynamic receipts_count_<year> attributes off the raw item.
func unmarshalUser(item map[string]types.AttributeValue) (entities.User, error) {
	var it userItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.User{}, err
	}

	u := entities.User{
		Phone:              it.Phone,
		Name:               it.Name,
		Email:              it.Email,
		FullName:           it.FullName,
		CpfCnpj:            it.CpfCnpj,
		ProfileComplete:    it.ProfileComplete,
		Plan:               entities.PlanID(it.Plan),
		SubscriptionStatus: entities.SubscriptionStatus(it.SubscriptionStatus),
		StripeCustomerID:   it.StripeCustomerID,
		StripeSubID:        it.StripeSubID,
		ReceiptsUsed:       it.ReceiptsUsed,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.LastReceiptAt != "" {
		u.LastReceiptAt = parseTime(it.LastReceiptAt)
	}

	for name, av := range item {
		if !strings.HasPrefix(name, yearCounterPrefix) {
			continue
		}
		year, err := strconv.Atoi(strings.TrimPrefix(name, yearCounterPrefix))
		if err != nil {
			continue
		}
		n, ok := av.(*types.AttributeValueMemberN)
		if !ok {
			continue
		}
		count, err := strconv.Atoi(n.Value)
		if err != nil {
			continue
		}
		if u.YearCounters == nil {
			u.YearCounters = make(map[int]int)
		}
		u.YearCounters[year] = count
	}

	return u, nil
}
