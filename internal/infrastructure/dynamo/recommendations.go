package dynamo

import (
	"context"
	"fmt"

	"github.com/aromance-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// RecommendationRepo stores each user's recommendation list as a single item
// keyed by user_id. PutList therefore replaces the previous list atomically,
// which is exactly the wholesale-replacement semantics the matching engine
// needs.
type RecommendationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRecommendationRepo(client *dynamodb.Client, tableName string) *RecommendationRepo {
	return &RecommendationRepo{client: client, tableName: tableName}
}

type recommendationItem struct {
	UserID          string                    `dynamodbav:"user_id"`
	Recommendations []domain.AIRecommendation `dynamodbav:"recommendations"`
}

func (r *RecommendationRepo) PutList(ctx context.Context, userID string, recs []domain.AIRecommendation) error {
	item, err := attributevalue.MarshalMap(recommendationItem{UserID: userID, Recommendations: recs})
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// GetList returns the stored list for a user, or an empty slice when the user
// has no recommendations yet.
func (r *RecommendationRepo) GetList(ctx context.Context, userID string) ([]domain.AIRecommendation, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return []domain.AIRecommendation{}, nil
	}
	var item recommendationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}
	return item.Recommendations, nil
}
