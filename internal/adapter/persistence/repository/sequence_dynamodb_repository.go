package repository

import (
	"context"
	"errors"
	"strconv"

	"cotacao_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "sequences"

// SequenceDynamoRepository issues sequential numbers from a DynamoDB counter
// table (PK: name, attribute: current).
//
// AllocateNumber is an atomic ADD, so two concurrent creations can never see
// the same number. PeekNextNumber only reads; a peeked number is a display
// hint and must never be persisted as an assigned number.

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) AllocateNumber(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:         aws.String("ADD #current :one"),
		ExpressionAttributeNames: map[string]string{"#current": "current"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["current"]
	if !ok {
		return 0, errors.New("sequence counter missing after allocation")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("sequence counter has unexpected type")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *SequenceDynamoRepository) PeekNextNumber(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 1, nil
	}

	attr, ok := out.Item["current"]
	if !ok {
		return 1, nil
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("sequence counter has unexpected type")
	}
	current, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// setNumberIfAbsent writes a backfilled number only when the row still lacks
// one. A lost condition means another migration run got there first; that is
// a skip, not an error.
func setNumberIfAbsent(ctx context.Context, ddb *dynamodb.Client, tableName, id string, number int64) (bool, error) {
	_, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id) AND attribute_not_exists(#number)"),
		UpdateExpression:         aws.String("SET #number = :number"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#number": "number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberN{Value: strconv.FormatInt(number, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
