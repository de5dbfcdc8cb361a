package dynamo

import (
	"context"
	"fmt"

	"github.com/aromance-api/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// IdentityRepo provides typed DynamoDB operations for the identities table.
// Items are keyed by DID.
type IdentityRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewIdentityRepo(client *dynamodb.Client, tableName string) *IdentityRepo {
	return &IdentityRepo{client: client, tableName: tableName}
}

func (r *IdentityRepo) Put(ctx context.Context, identity *domain.DecentralizedIdentity) error {
	item, err := attributevalue.MarshalMap(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *IdentityRepo) Get(ctx context.Context, did string) (*domain.DecentralizedIdentity, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("did", did),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("identity %s: %w", did, domain.ErrIdentityNotFound)
	}
	var identity domain.DecentralizedIdentity
	if err := attributevalue.UnmarshalMap(out.Item, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *IdentityRepo) Update(ctx context.Context, did string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("did", did),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}
