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

const defaultServicesTableName = "servicos"

type serviceItem struct {
	ID            string `dynamodbav:"id"`
	ServiceDate   string `dynamodbav:"data_servico"`
	Status        string `dynamodbav:"status"`
	PaymentStatus string `dynamodbav:"status_pagamento,omitempty"`
	EntryType     string `dynamodbav:"tipo_lancamento,omitempty"`

	VehicleName   string `dynamodbav:"nome_veiculo"`
	ClientName    string `dynamodbav:"cliente_nome"`
	ClientPhone   string `dynamodbav:"telefone_cliente"`
	CarMake       string `dynamodbav:"carro_marca"`
	CarModel      string `dynamodbav:"carro_modelo"`
	CarYear       int    `dynamodbav:"carro_ano"`
	CarPlate      string `dynamodbav:"carro_placa"`
	OriginalColor string `dynamodbav:"cor_original"`
	Description   string `dynamodbav:"servico_descricao"`
	CategoryID    string `dynamodbav:"categoria_id,omitempty"`

	AmountCharged    float64 `dynamodbav:"valor_cobrado"`
	MaterialsCost    float64 `dynamodbav:"custo_materiais"`
	ThirdPartyCost   float64 `dynamodbav:"custo_terceiros"`
	OtherLinkedCosts float64 `dynamodbav:"outras_despesas_vinculadas"`
	NetProfit        float64 `dynamodbav:"lucro_liquido"`

	PaymentMethod   string   `dynamodbav:"forma_pagamento"`
	Notes           string   `dynamodbav:"observacoes"`
	RecurringClient bool     `dynamodbav:"cliente_recorrente,omitempty"`
	Photos          []string `dynamodbav:"fotos,omitempty"`
	ProfilePhotoURL string   `dynamodbav:"foto_perfil_url,omitempty"`

	CreatedAt string `dynamodbav:"created_at,omitempty"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	services := make([]entities.Service, 0)

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
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			s, err := fromServiceItem(it)
			if err != nil {
				return nil, err
			}
			services = append(services, s)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return services, nil
}

// Update replaces the whole record; the usecase always sends the full
// patched entity.
func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toServiceItem(s entities.Service) serviceItem {
	it := serviceItem{
		ID:               s.ID,
		ServiceDate:      s.ServiceDate.UTC().Format(time.RFC3339Nano),
		Status:           string(s.Status),
		PaymentStatus:    string(s.PaymentStatus),
		EntryType:        string(s.EntryType),
		VehicleName:      s.VehicleName,
		ClientName:       s.ClientName,
		ClientPhone:      s.ClientPhone,
		CarMake:          s.CarMake,
		CarModel:         s.CarModel,
		CarYear:          s.CarYear,
		CarPlate:         s.CarPlate,
		OriginalColor:    s.OriginalColor,
		Description:      s.Description,
		CategoryID:       s.CategoryID,
		AmountCharged:    s.AmountCharged,
		MaterialsCost:    s.MaterialsCost,
		ThirdPartyCost:   s.ThirdPartyCost,
		OtherLinkedCosts: s.OtherLinkedCosts,
		NetProfit:        s.NetProfit,
		PaymentMethod:    string(s.PaymentMethod),
		Notes:            s.Notes,
		RecurringClient:  s.RecurringClient,
		Photos:           s.Photos,
		ProfilePhotoURL:  s.ProfilePhotoURL,
	}
	if !s.CreatedAt.IsZero() {
		it.CreatedAt = s.CreatedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	serviceDate, err := time.Parse(time.RFC3339Nano, it.ServiceDate)
	if err != nil {
		return entities.Service{}, err
	}
	var createdAt time.Time
	if it.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, it.CreatedAt)
		if err != nil {
			return entities.Service{}, err
		}
	}
	return entities.Service{
		ID:               it.ID,
		ServiceDate:      serviceDate,
		Status:           entities.ServiceStatus(it.Status),
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		EntryType:        entities.EntryType(it.EntryType),
		VehicleName:      it.VehicleName,
		ClientName:       it.ClientName,
		ClientPhone:      it.ClientPhone,
		CarMake:          it.CarMake,
		CarModel:         it.CarModel,
		CarYear:          it.CarYear,
		CarPlate:         it.CarPlate,
		OriginalColor:    it.OriginalColor,
		Description:      it.Description,
		CategoryID:       it.CategoryID,
		AmountCharged:    it.AmountCharged,
		MaterialsCost:    it.MaterialsCost,
		ThirdPartyCost:   it.ThirdPartyCost,
		OtherLinkedCosts: it.OtherLinkedCosts,
		NetProfit:        it.NetProfit,
		PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
		Notes:            it.Notes,
		RecurringClient:  it.RecurringClient,
		Photos:           it.Photos,
		ProfilePhotoURL:  it.ProfilePhotoURL,
		CreatedAt:        createdAt,
	}, nil
}
