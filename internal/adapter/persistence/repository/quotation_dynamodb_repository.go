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

const (
	defaultQuotationsTableName = "quotations"
	defaultHistoryTableName    = "quotation_history"
	historyQuotationIDIndex    = "quotation_id-index"
)

type lineItemRecord struct {
	ID                string   `dynamodbav:"id"`
	PartCode          string   `dynamodbav:"part_code,omitempty"`
	Description       string   `dynamodbav:"description"`
	Quantity          int      `dynamodbav:"quantity"`
	UnitPrice         *float64 `dynamodbav:"unit_price,omitempty"`
	TotalPrice        *float64 `dynamodbav:"total_price,omitempty"`
	LeadTime          string   `dynamodbav:"lead_time,omitempty"`
	Supplier          string   `dynamodbav:"supplier,omitempty"`
	Notes             string   `dynamodbav:"notes,omitempty"`
	NeedsRegistration bool     `dynamodbav:"needs_registration"`
	CatalogCode       string   `dynamodbav:"catalog_code,omitempty"`
}

type documentRecord struct {
	StorageRef string `dynamodbav:"storage_ref"`
	FileName   string `dynamodbav:"file_name,omitempty"`
}

type quotationItem struct {
	ID                 string           `dynamodbav:"id"`
	Number             int64            `dynamodbav:"number,omitempty"`
	OrderNumber        string           `dynamodbav:"order_number,omitempty"`
	BudgetNumber       string           `dynamodbav:"budget_number,omitempty"`
	Client             string           `dynamodbav:"client"`
	RequesterID        string           `dynamodbav:"requester_id"`
	BuyerID            string           `dynamodbav:"buyer_id,omitempty"`
	SupplierRef        string           `dynamodbav:"supplier_ref,omitempty"`
	RequestType        string           `dynamodbav:"request_type"`
	Status             string           `dynamodbav:"status"`
	CancellationReason string           `dynamodbav:"cancellation_reason,omitempty"`
	Notes              string           `dynamodbav:"notes,omitempty"`
	QuoteDocument      *documentRecord  `dynamodbav:"quote_document,omitempty"`
	ProposalDocument   *documentRecord  `dynamodbav:"proposal_document,omitempty"`
	Items              []lineItemRecord `dynamodbav:"items"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
	RespondedAt        string           `dynamodbav:"responded_at,omitempty"`
	ApprovedAt         string           `dynamodbav:"approved_at,omitempty"`
	PurchasedAt        string           `dynamodbav:"purchased_at,omitempty"`
	CancelledAt        string           `dynamodbav:"cancelled_at,omitempty"`
}

type historyItem struct {
	ID             string `dynamodbav:"id"`
	QuotationID    string `dynamodbav:"quotation_id"`
	ActorID        string `dynamodbav:"actor_id"`
	Action         string `dynamodbav:"action"`
	PreviousStatus string `dynamodbav:"previous_status,omitempty"`
	NewStatus      string `dynamodbav:"new_status"`
	Notes          string `dynamodbav:"notes,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuotationDynamoRepository persists the Quotation aggregate in DynamoDB.
//
// Table requirements:
//   - quotations: PK id (string); line items embedded in the row.
//   - quotation_history: PK id (string), GSI quotation_id-index (PK: quotation_id).
//
// Every state change is committed with TransactWriteItems pairing the
// aggregate write with the history put, so no status flip is ever visible
// without its audit entry. The history table has no update path at all.

type QuotationDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		historyTable: getenvDefault("QUOTATION_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation, h entities.HistoryEntry) (entities.Quotation, error) {
	qav, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}
	hav, err := attributevalue.MarshalMap(toHistoryItem(h))
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     qav,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.historyTable),
					Item:                     hav,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation, h *entities.HistoryEntry) (entities.Quotation, error) {
	qav, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     qav,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	if h != nil {
		hav, err := attributevalue.MarshalMap(toHistoryItem(*h))
		if err != nil {
			return entities.Quotation{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.historyTable),
				Item:                     hav,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	history, err := r.ListHistory(ctx, id)
	if err != nil {
		return err
	}

	// History rows go first, in batches; the aggregate row goes last so a
	// partial failure leaves it discoverable for a retry.
	for start := 0; start < len(history); start += 25 {
		end := start + 25
		if end > len(history) {
			end = len(history)
		}
		writes := make([]types.WriteRequest, 0, end-start)
		for _, h := range history[start:end] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: h.ID},
					},
				},
			})
		}
		_, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				r.historyTable: writes,
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuotationDynamoRepository) List(ctx context.Context, filter interfaces.QuotationFilter) ([]entities.Quotation, error) {
	exprParts := []string{}
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	if filter.Status != "" {
		exprParts = append(exprParts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	} else if !filter.IncludeFinalized {
		exprParts = append(exprParts, "NOT #status IN (:comprada, :cancelada)")
		names["#status"] = "status"
		values[":comprada"] = &types.AttributeValueMemberS{Value: string(entities.QuotationStatusComprada)}
		values[":cancelada"] = &types.AttributeValueMemberS{Value: string(entities.QuotationStatusCancelada)}
	}
	if filter.RequesterID != "" {
		exprParts = append(exprParts, "#requester_id = :requester_id")
		names["#requester_id"] = "requester_id"
		values[":requester_id"] = &types.AttributeValueMemberS{Value: filter.RequesterID}
	}
	if filter.BuyerID != "" {
		exprParts = append(exprParts, "#buyer_id = :buyer_id")
		names["#buyer_id"] = "buyer_id"
		values[":buyer_id"] = &types.AttributeValueMemberS{Value: filter.BuyerID}
	}
	// RFC3339 strings compare lexicographically in timestamp order.
	if !filter.CreatedFrom.IsZero() {
		exprParts = append(exprParts, "#created_at >= :created_from")
		names["#created_at"] = "created_at"
		values[":created_from"] = &types.AttributeValueMemberS{Value: timeToString(filter.CreatedFrom)}
	}
	if !filter.CreatedTo.IsZero() {
		exprParts = append(exprParts, "#created_at <= :created_to")
		names["#created_at"] = "created_at"
		values[":created_to"] = &types.AttributeValueMemberS{Value: timeToString(filter.CreatedTo)}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var result []entities.Quotation
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			q := fromQuotationItem(it)
			if filter.Search != "" && !matchesSearch(q, filter.Search) {
				continue
			}
			result = append(result, q)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *QuotationDynamoRepository) CountByStatus(ctx context.Context, requesterID string) (map[entities.QuotationStatus]int, error) {
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

	counts := map[entities.QuotationStatus]int{}
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
			counts[entities.QuotationStatus(it.Status)]++
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return counts, nil
}

func (r *QuotationDynamoRepository) ListHistory(ctx context.Context, quotationID string) ([]entities.HistoryEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.historyTable),
		IndexName:              aws.String(historyQuotationIDIndex),
		KeyConditionExpression: aws.String("quotation_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quotationID},
		},
	}

	var entries []entities.HistoryEntry
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it historyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromHistoryItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return entries, nil
}

func (r *QuotationDynamoRepository) ListWithoutNumber(ctx context.Context) ([]entities.Quotation, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_not_exists(#number)"),
		ExpressionAttributeNames: map[string]string{"#number": "number"},
	}

	var result []entities.Quotation
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quotationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			result = append(result, fromQuotationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *QuotationDynamoRepository) SetNumberIfAbsent(ctx context.Context, id string, number int64) (bool, error) {
	return setNumberIfAbsent(ctx, r.ddb, r.tableName, id, number)
}

func matchesSearch(q entities.Quotation, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(q.Client), search) ||
		strings.Contains(strings.ToLower(q.OrderNumber), search) ||
		strings.Contains(strings.ToLower(q.BudgetNumber), search) {
		return true
	}
	for _, li := range q.Items {
		if strings.Contains(strings.ToLower(li.PartCode), search) ||
			strings.Contains(strings.ToLower(li.Description), search) {
			return true
		}
	}
	return false
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]lineItemRecord, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, lineItemRecord{
			ID:                li.ID,
			PartCode:          li.PartCode,
			Description:       li.Description,
			Quantity:          li.Quantity,
			UnitPrice:         li.UnitPrice,
			TotalPrice:        li.TotalPrice,
			LeadTime:          li.LeadTime,
			Supplier:          li.Supplier,
			Notes:             li.Notes,
			NeedsRegistration: li.NeedsRegistration,
			CatalogCode:       li.CatalogCode,
		})
	}
	return quotationItem{
		ID:                 q.ID,
		Number:             q.Number,
		OrderNumber:        q.OrderNumber,
		BudgetNumber:       q.BudgetNumber,
		Client:             q.Client,
		RequesterID:        q.RequesterID,
		BuyerID:            q.BuyerID,
		SupplierRef:        q.SupplierRef,
		RequestType:        string(q.RequestType),
		Status:             string(q.Status),
		CancellationReason: q.CancellationReason,
		Notes:              q.Notes,
		QuoteDocument:      toDocumentRecord(q.QuoteDocument),
		ProposalDocument:   toDocumentRecord(q.ProposalDocument),
		Items:              items,
		CreatedAt:          timeToString(q.CreatedAt),
		UpdatedAt:          timeToString(q.UpdatedAt),
		RespondedAt:        timePtrToString(q.RespondedAt),
		ApprovedAt:         timePtrToString(q.ApprovedAt),
		PurchasedAt:        timePtrToString(q.PurchasedAt),
		CancelledAt:        timePtrToString(q.CancelledAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, rec := range it.Items {
		items = append(items, entities.LineItem{
			ID:                rec.ID,
			PartCode:          rec.PartCode,
			Description:       rec.Description,
			Quantity:          rec.Quantity,
			UnitPrice:         rec.UnitPrice,
			TotalPrice:        rec.TotalPrice,
			LeadTime:          rec.LeadTime,
			Supplier:          rec.Supplier,
			Notes:             rec.Notes,
			NeedsRegistration: rec.NeedsRegistration,
			CatalogCode:       rec.CatalogCode,
		})
	}
	return entities.Quotation{
		ID:                 it.ID,
		Number:             it.Number,
		OrderNumber:        it.OrderNumber,
		BudgetNumber:       it.BudgetNumber,
		Client:             it.Client,
		RequesterID:        it.RequesterID,
		BuyerID:            it.BuyerID,
		SupplierRef:        it.SupplierRef,
		RequestType:        entities.RequestType(it.RequestType),
		Status:             entities.QuotationStatus(it.Status),
		CancellationReason: it.CancellationReason,
		Notes:              it.Notes,
		QuoteDocument:      fromDocumentRecord(it.QuoteDocument),
		ProposalDocument:   fromDocumentRecord(it.ProposalDocument),
		Items:              items,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
		RespondedAt:        parseTimePtr(it.RespondedAt),
		ApprovedAt:         parseTimePtr(it.ApprovedAt),
		PurchasedAt:        parseTimePtr(it.PurchasedAt),
		CancelledAt:        parseTimePtr(it.CancelledAt),
	}
}

func toDocumentRecord(d *entities.DocumentRef) *documentRecord {
	if d == nil {
		return nil
	}
	return &documentRecord{StorageRef: d.StorageRef, FileName: d.FileName}
}

func fromDocumentRecord(d *documentRecord) *entities.DocumentRef {
	if d == nil {
		return nil
	}
	return &entities.DocumentRef{StorageRef: d.StorageRef, FileName: d.FileName}
}

func toHistoryItem(h entities.HistoryEntry) historyItem {
	return historyItem{
		ID:             h.ID,
		QuotationID:    h.QuotationID,
		ActorID:        h.ActorID,
		Action:         string(h.Action),
		PreviousStatus: string(h.PreviousStatus),
		NewStatus:      string(h.NewStatus),
		Notes:          h.Notes,
		CreatedAt:      timeToString(h.CreatedAt),
	}
}

func fromHistoryItem(it historyItem) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:             it.ID,
		QuotationID:    it.QuotationID,
		ActorID:        it.ActorID,
		Action:         entities.HistoryAction(it.Action),
		PreviousStatus: entities.QuotationStatus(it.PreviousStatus),
		NewStatus:      entities.QuotationStatus(it.NewStatus),
		Notes:          it.Notes,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
