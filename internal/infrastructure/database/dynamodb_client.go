package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// tableSpec describes one of the ledger's tables; GSIName is empty for
// tables queried by primary key only.
type tableSpec struct {
	EnvVar      string
	DefaultName string
	PK          string
	GSIName     string
	GSIKey      string
}

var ledgerTables = []tableSpec{
	{EnvVar: "SERVICES_TABLE", DefaultName: "servicos", PK: "id"},
	{EnvVar: "EXPENSES_TABLE", DefaultName: "despesas", PK: "id", GSIName: "servico_id-index", GSIKey: "servico_id"},
	{EnvVar: "CATEGORIES_TABLE", DefaultName: "categorias", PK: "id"},
	{EnvVar: "PAYMENTS_TABLE", DefaultName: "pagamentos", PK: "id", GSIName: "servico_id-index", GSIKey: "servico_id"},
	{EnvVar: "MIGRATIONS_TABLE", DefaultName: "migracoes", PK: "name"},
}

// EnsureTables creates the ledger tables when they don't exist yet. Intended
// for local DynamoDB; in AWS the tables come from infrastructure as code.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client) error {
	for _, spec := range ledgerTables {
		name := getenvDefault(spec.EnvVar, spec.DefaultName)
		if err := ensureTable(ctx, ddb, name, spec); err != nil {
			return err
		}
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, name string, spec tableSpec) error {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String(spec.PK), AttributeType: types.ScalarAttributeTypeS},
	}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.PK), KeyType: types.KeyTypeHash},
		},
	}
	if spec.GSIName != "" {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(spec.GSIKey), AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String(spec.GSIName),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.GSIKey), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}
	in.AttributeDefinitions = attrs

	log.Printf("[database] creating table %s", name)
	_, err = ddb.CreateTable(ctx, in)
	return err
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
