package repository

import (
	"context"
	"errors"
	"time"

	"pintura_pro/internal/domain/entities"
	"pintura_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExpensesTableName = "despesas"
	expensesServiceIDIndex   = "servico_id-index"

	// DynamoDB caps BatchWriteItem at 25 requests.
	batchWriteLimit = 25
)

type expenseItem struct {
	ID            string  `dynamodbav:"id"`
	ExpenseDate   string  `dynamodbav:"data_despesa"`
	Type          string  `dynamodbav:"tipo_despesa"`
	Description   string  `dynamodbav:"descricao"`
	Amount        float64 `dynamodbav:"valor"`
	Origin        string  `dynamodbav:"origem"`
	ServiceID     string  `dynamodbav:"servico_id,omitempty"`
	PaymentMethod string  `dynamodbav:"forma_pagamento,omitempty"`
	PaymentStatus string  `dynamodbav:"status_pagamento,omitempty"`
	Notes         string  `dynamodbav:"observacoes"`
	CreatedAt     string  `dynamodbav:"created_at,omitempty"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: servico_id-index (PK: servico_id)
//
// The GSI serves the synchronization engine: everything derived from one
// service is addressable as a unit.

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
	}

	// Derived ids are deterministic and may legitimately be rewritten by a
	// re-sync, so no attribute_not_exists guard here.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it)
}

func (r *ExpenseDynamoRepository) List(ctx context.Context) ([]entities.Expense, error) {
	expenses := make([]entities.Expense, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it expenseItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			e, err := fromExpenseItem(it)
			if err != nil {
				return nil, err
			}
			expenses = append(expenses, e)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return expenses, nil
}

func (r *ExpenseDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Expense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(expensesServiceIDIndex),
		KeyConditionExpression: aws.String("servico_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Expense, 0, len(out.Items))
	for _, raw := range out.Items {
		var it expenseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		e, err := fromExpenseItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Expense{}, nil
		}
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// DeleteByServiceID removes every expense linked to the service, in batches.
func (r *ExpenseDynamoRepository) DeleteByServiceID(ctx context.Context, serviceID string) error {
	linked, err := r.ListByServiceID(ctx, serviceID)
	if err != nil {
		return err
	}
	if len(linked) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(linked))
	for _, e := range linked {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: e.ID},
				},
			},
		})
	}

	for start := 0; start < len(requests); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(requests))
		batch := requests[start:end]
		for len(batch) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					r.tableName: batch,
				},
			})
			if err != nil {
				return err
			}
			batch = out.UnprocessedItems[r.tableName]
		}
	}
	return nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	it := expenseItem{
		ID:            e.ID,
		ExpenseDate:   e.ExpenseDate.UTC().Format(time.RFC3339Nano),
		Type:          string(e.Type),
		Description:   e.Description,
		Amount:        e.Amount,
		Origin:        string(e.Origin),
		ServiceID:     e.ServiceID,
		PaymentMethod: string(e.PaymentMethod),
		PaymentStatus: string(e.PaymentStatus),
		Notes:         e.Notes,
	}
	if !e.CreatedAt.IsZero() {
		it.CreatedAt = e.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromExpenseItem(it expenseItem) (entities.Expense, error) {
	expenseDate, err := time.Parse(time.RFC3339Nano, it.ExpenseDate)
	if err != nil {
		return entities.Expense{}, err
	}
	var createdAt time.Time
	if it.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, it.CreatedAt)
		if err != nil {
			return entities.Expense{}, err
		}
	}
	return entities.Expense{
		ID:            it.ID,
		ExpenseDate:   expenseDate,
		Type:          entities.ExpenseType(it.Type),
		Description:   it.Description,
		Amount:        it.Amount,
		Origin:        entities.ExpenseOrigin(it.Origin),
		ServiceID:     it.ServiceID,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus: entities.ExpensePaymentStatus(it.PaymentStatus),
		Notes:         it.Notes,
		CreatedAt:     createdAt,
	}, nil
}
