package dynamo

import (
	"context"
	"fmt"

	"github.com/aromance-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TransactionRepo provides typed DynamoDB operations for the transactions table.
type TransactionRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewTransactionRepo(client *dynamodb.Client, tableName string) *TransactionRepo {
	return &TransactionRepo{client: client, tableName: tableName}
}

func (r *TransactionRepo) Put(ctx context.Context, tx *domain.Transaction) error {
	item, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return fmt.Errorf("marshal transaction: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// QueryByBuyer returns transactions where the user is the buyer (buyer_id GSI).
func (r *TransactionRepo) QueryByBuyer(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.queryGSI(ctx, "buyer_id-index", "buyer_id", userID)
}

// QueryBySeller returns transactions where the user is the seller (seller_id GSI).
func (r *TransactionRepo) QueryBySeller(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return r.queryGSI(ctx, "seller_id-index", "seller_id", userID)
}

// ScanAll returns every transaction, for platform statistics.
func (r *TransactionRepo) ScanAll(ctx context.Context) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Transaction
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		txs = append(txs, page...)
	}
	return txs, nil
}

func (r *TransactionRepo) queryGSI(ctx context.Context, index, attr, value string) ([]domain.Transaction, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#a = :v"),
		ExpressionAttributeNames: map[string]string{"#a": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	var txs []domain.Transaction
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
