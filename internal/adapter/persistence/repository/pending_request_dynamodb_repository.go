package repository

import (
	"context"
	"strings"

	"cotacao_service/internal/domain/entities"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPendingRequestsTableName = "pending_requests"

type pendingRequestItem struct {
	ID              string          `dynamodbav:"id"`
	Number          int64           `dynamodbav:"number,omitempty"`
	PartCode        string          `dynamodbav:"part_code"`
	Description     string          `dynamodbav:"description"`
	Brand           string          `dynamodbav:"brand,omitempty"`
	Notes           string          `dynamodbav:"notes,omitempty"`
	RequesterID     string          `dynamodbav:"requester_id"`
	Status          string          `dynamodbav:"status"`
	Document        *documentRecord `dynamodbav:"document,omitempty"`
	HandlerID       string          `dynamodbav:"handler_id,omitempty"`
	RejectionReason string          `dynamodbav:"rejection_reason,omitempty"`
	CatalogPartRef  string          `dynamodbav:"catalog_part_ref,omitempty"`
	CatalogCode     string          `dynamodbav:"catalog_code,omitempty"`

	// Cancellation overlay: both attributes live next to status on purpose,
	// the underlying status is kept as audit information.
	Cancelled          bool   `dynamodbav:"cancelled"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`

	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
	AssignedAt  string `dynamodbav:"assigned_at,omitempty"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
	ConcludedAt string `dynamodbav:"concluded_at,omitempty"`
}

// PendingRequestDynamoRepository persists catalog pending-registration
// requests in DynamoDB.
//
// Table requirements:
//   - pending_requests: PK id (string)

type PendingRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingRequestRepository = (*PendingRequestDynamoRepository)(nil)

func NewPendingRequestDynamoRepository(ddb *dynamodb.Client) *PendingRequestDynamoRepository {
	return &PendingRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PENDING_REQUESTS_TABLE", defaultPendingRequestsTableName),
	}
}

func (r *PendingRequestDynamoRepository) Create(ctx context.Context, p entities.PendingRequest) (entities.PendingRequest, error) {
	av, err := attributevalue.MarshalMap(toPendingRequestItem(p))
	if err != nil {
		return entities.PendingRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.PendingRequest{}, err
	}
	return p, nil
}

func (r *PendingRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.PendingRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingRequest{}, nil
	}

	var it pendingRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingRequest{}, err
	}
	return fromPendingRequestItem(it), nil
}

func (r *PendingRequestDynamoRepository) Update(ctx context.Context, p entities.PendingRequest) (entities.PendingRequest, error) {
	av, err := attributevalue.MarshalMap(toPendingRequestItem(p))
	if err != nil {
		return entities.PendingRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.PendingRequest{}, err
	}
	return p, nil
}

func (r *PendingRequestDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PendingRequestDynamoRepository) List(ctx context.Context, filter interfaces.PendingRequestFilter) ([]entities.PendingRequest, error) {
	exprParts := []string{}
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if filter.Status != "" {
		exprParts = append(exprParts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.RequesterID != "" {
		exprParts = append(exprParts, "#requester_id = :requester_id")
		names["#requester_id"] = "requester_id"
		values[":requester_id"] = &types.AttributeValueMemberS{Value: filter.RequesterID}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var result []entities.PendingRequest
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pendingRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromPendingRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *PendingRequestDynamoRepository) CountByStatus(ctx context.Context, requesterID string) (map[entities.PendingStatus]int, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
	}
	if requesterID != "" {
		input.FilterExpression = aws.String("#requester_id = :requester_id")
		input.ExpressionAttributeNames["#requester_id"] = "requester_id"
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":requester_id": &types.AttributeValueMemberS{Value: requesterID},
		}
	}

	counts := map[entities.PendingStatus]int{}
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it struct {
				Status string `dynamodbav:"status"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			counts[entities.PendingStatus(it.Status)]++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return counts, nil
}

func (r *PendingRequestDynamoRepository) ListWithoutNumber(ctx context.Context) ([]entities.PendingRequest, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_not_exists(#number)"),
		ExpressionAttributeNames: map[string]string{"#number": "number"},
	}

	var result []entities.PendingRequest
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it pendingRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromPendingRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *PendingRequestDynamoRepository) SetNumberIfAbsent(ctx context.Context, id string, number int64) (bool, error) {
	return setNumberIfAbsent(ctx, r.ddb, r.tableName, id, number)
}

func toPendingRequestItem(p entities.PendingRequest) pendingRequestItem {
	return pendingRequestItem{
		ID:                 p.ID,
		Number:             p.Number,
		PartCode:           p.PartCode,
		Description:        p.Description,
		Brand:              p.Brand,
		Notes:              p.Notes,
		RequesterID:        p.RequesterID,
		Status:             string(p.Status),
		Document:           toDocumentRecord(p.Document),
		HandlerID:          p.HandlerID,
		RejectionReason:    p.RejectionReason,
		CatalogPartRef:     p.CatalogPartRef,
		CatalogCode:        p.CatalogCode,
		Cancelled:          p.Cancelled,
		CancellationReason: p.CancellationReason,
		CreatedAt:          timeToString(p.CreatedAt),
		UpdatedAt:          timeToString(p.UpdatedAt),
		AssignedAt:         timePtrToString(p.AssignedAt),
		RespondedAt:        timePtrToString(p.RespondedAt),
		ConcludedAt:        timePtrToString(p.ConcludedAt),
	}
}

func fromPendingRequestItem(it pendingRequestItem) entities.PendingRequest {
	return entities.PendingRequest{
		ID:                 it.ID,
		Number:             it.Number,
		PartCode:           it.PartCode,
		Description:        it.Description,
		Brand:              it.Brand,
		Notes:              it.Notes,
		RequesterID:        it.RequesterID,
		Status:             entities.PendingStatus(it.Status),
		Document:           fromDocumentRecord(it.Document),
		HandlerID:          it.HandlerID,
		RejectionReason:    it.RejectionReason,
		CatalogPartRef:     it.CatalogPartRef,
		CatalogCode:        it.CatalogCode,
		Cancelled:          it.Cancelled,
		CancellationReason: it.CancellationReason,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		AssignedAt:         parseTimePtr(it.AssignedAt),
		RespondedAt:        parseTimePtr(it.RespondedAt),
		ConcludedAt:        parseTimePtr(it.ConcludedAt),
	}
}
