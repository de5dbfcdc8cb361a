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

// ReportRepo provides typed DynamoDB operations for generated analytics reports.
type ReportRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewReportRepo(client *dynamodb.Client, tableName string) *ReportRepo {
	return &ReportRepo{client: client, tableName: tableName}
}

func (r *ReportRepo) Put(ctx context.Context, report *domain.AnalyticsReport) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// QueryBySeller returns a seller's reports via the seller_id GSI.
func (r *ReportRepo) QueryBySeller(ctx context.Context, sellerID string) ([]domain.AnalyticsReport, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("seller_id-index"),
		KeyConditionExpression: aws.String("seller_id = :s"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return nil, err
	}
	var reports []domain.AnalyticsReport
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
