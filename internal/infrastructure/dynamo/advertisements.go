package dynamo

import (
	"context"
	"fmt"

	"github.com/aromance-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AdvertisementRepo provides typed DynamoDB operations for the ads table.
type AdvertisementRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewAdvertisementRepo(client *dynamodb.Client, tableName string) *AdvertisementRepo {
	return &AdvertisementRepo{client: client, tableName: tableName}
}

func (r *AdvertisementRepo) Put(ctx context.Context, ad *domain.Advertisement) error {
	item, err := attributevalue.MarshalMap(ad)
	if err != nil {
		return fmt.Errorf("marshal advertisement: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ScanAll returns every advertisement; the service filters by placement,
// active flag and expiry.
func (r *AdvertisementRepo) ScanAll(ctx context.Context) ([]domain.Advertisement, error) {
	var ads []domain.Advertisement
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Advertisement
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		ads = append(ads, page...)
	}
	return ads, nil
}
