package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	customerIndexName      = "customer_id-index"
)

type lineItemRecord struct {
	ID            string  `dynamodbav:"id"`
	ProductID     string  `dynamodbav:"product_id"`
	Description   string  `dynamodbav:"description,omitempty"`
	Quantity      int     `dynamodbav:"quantity"`
	VendorCost    *string `dynamodbav:"vendor_cost,omitempty"`
	CustomerPrice *string `dynamodbav:"customer_price,omitempty"`
}

type noteRecord struct {
	ID        string `dynamodbav:"id"`
	AuthorID  string `dynamodbav:"author_id"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quoteItem struct {
	ID                string           `dynamodbav:"id"`
	Status            string           `dynamodbav:"status"`
	Priority          string           `dynamodbav:"priority"`
	CustomerID        string           `dynamodbav:"customer_id,omitempty"`
	AssignedHandlerID string           `dynamodbav:"assigned_handler_id,omitempty"`
	AssignedAt        *string          `dynamodbav:"assigned_at,omitempty"`
	ContactName       string           `dynamodbav:"contact_name,omitempty"`
	ContactEmail      string           `dynamodbav:"contact_email,omitempty"`
	ContactCompany    string           `dynamodbav:"contact_company,omitempty"`
	Description       string           `dynamodbav:"description,omitempty"`
	LineItems         []lineItemRecord `dynamodbav:"line_items"`
	Notes             []noteRecord     `dynamodbav:"notes,omitempty"`
	ValidUntil        *string          `dynamodbav:"valid_until,omitempty"`
	CreatedAt         string           `dynamodbav:"created_at"`
	UpdatedAt         string           `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index: customer_id (string)
//
// Update is a full-record PutItem guarded by attribute_exists: the workflow
// layer always writes a complete record, so a conditional put keeps the
// replace semantics honest without update-expression plumbing.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customerIndexName),
		KeyConditionExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, item := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                q.ID,
		Status:            string(q.Status),
		Priority:          string(q.Priority),
		CustomerID:        q.CustomerID,
		AssignedHandlerID: q.AssignedHandlerID,
		AssignedAt:        timeToString(q.AssignedAt),
		ContactName:       q.ContactName,
		ContactEmail:      q.ContactEmail,
		ContactCompany:    q.ContactCompany,
		Description:       q.Description,
		ValidUntil:        timeToString(q.ValidUntil),
		CreatedAt:         q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, line := range q.LineItems {
		it.LineItems = append(it.LineItems, lineItemRecord{
			ID:            line.ID,
			ProductID:     line.ProductID,
			Description:   line.Description,
			Quantity:      line.Quantity,
			VendorCost:    floatToStringPtr(line.VendorCost),
			CustomerPrice: floatToStringPtr(line.CustomerPrice),
		})
	}
	for _, note := range q.Notes {
		it.Notes = append(it.Notes, noteRecord{
			ID:        note.ID,
			AuthorID:  note.AuthorID,
			Body:      note.Body,
			CreatedAt: note.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quote{
		ID:                it.ID,
		Status:            entities.QuoteStatus(it.Status),
		Priority:          entities.QuotePriority(it.Priority),
		CustomerID:        it.CustomerID,
		AssignedHandlerID: it.AssignedHandlerID,
		AssignedAt:        stringToTime(it.AssignedAt),
		ContactName:       it.ContactName,
		ContactEmail:      it.ContactEmail,
		ContactCompany:    it.ContactCompany,
		Description:       it.Description,
		ValidUntil:        stringToTime(it.ValidUntil),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
	for _, line := range it.LineItems {
		q.LineItems = append(q.LineItems, entities.LineItem{
			ID:            line.ID,
			ProductID:     line.ProductID,
			Description:   line.Description,
			Quantity:      line.Quantity,
			VendorCost:    stringToFloatPtr(line.VendorCost),
			CustomerPrice: stringToFloatPtr(line.CustomerPrice),
		})
	}
	for _, note := range it.Notes {
		createdAt, _ := time.Parse(time.RFC3339Nano, note.CreatedAt)
		q.Notes = append(q.Notes, entities.Note{
			ID:        note.ID,
			AuthorID:  note.AuthorID,
			Body:      note.Body,
			CreatedAt: createdAt,
		})
	}
	return q
}

func floatToStringPtr(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	return &s
}

func stringToFloatPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func timeToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func stringToTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}
