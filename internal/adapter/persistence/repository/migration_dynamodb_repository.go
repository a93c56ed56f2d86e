package repository

import (
	"context"
	"time"

	"pintura_pro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMigrationsTableName = "migracoes"

type migrationItem struct {
	Name   string `dynamodbav:"name"`
	Done   bool   `dynamodbav:"done"`
	DoneAt string `dynamodbav:"done_at,omitempty"`
}

// MigrationDynamoRepository persists one-shot migration flags in DynamoDB.
//
// Table requirements:
//   - PK: name (string)

type MigrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMigrationRepository = (*MigrationDynamoRepository)(nil)

func NewMigrationDynamoRepository(ddb *dynamodb.Client) *MigrationDynamoRepository {
	return &MigrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MIGRATIONS_TABLE", defaultMigrationsTableName),
	}
}

func (r *MigrationDynamoRepository) IsDone(ctx context.Context, name string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it migrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	return it.Done, nil
}

func (r *MigrationDynamoRepository) MarkDone(ctx context.Context, name string) error {
	av, err := attributevalue.MarshalMap(migrationItem{
		Name:   name,
		Done:   true,
		DoneAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
