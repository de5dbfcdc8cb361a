package dynamo

import (
	"context"
	"fmt"

	"github.com/aromance-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// InvestmentRepo provides typed DynamoDB operations for treasury investments.
// Investments are write-once; there is no update path.
type InvestmentRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewInvestmentRepo(client *dynamodb.Client, tableName string) *InvestmentRepo {
	return &InvestmentRepo{client: client, tableName: tableName}
}

func (r *InvestmentRepo) Put(ctx context.Context, inv *domain.TreasuryInvestment) error {
	item, err := attributevalue.MarshalMap(inv)
	if err != nil {
		return fmt.Errorf("marshal investment: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *InvestmentRepo) ScanAll(ctx context.Context) ([]domain.TreasuryInvestment, error) {
	var investments []domain.TreasuryInvestment
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.TreasuryInvestment
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		investments = append(investments, page...)
	}
	return investments, nil
}
