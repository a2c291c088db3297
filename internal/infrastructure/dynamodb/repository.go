package dynamodb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsv2dynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsv2types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	awsv2xray "github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"github.com/aws/aws-xray-sdk-go/xray"

	"casting-agency/internal/domain"
)

type Client struct {
	db        *awsv2dynamodb.Client
	tableName string
}

func NewClient(ctx context.Context, region, tableName string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	awsv2xray.AWSV2Instrumentor(&cfg.APIOptions)
	client := awsv2dynamodb.NewFromConfig(cfg)
	return &Client{db: client, tableName: tableName}, nil
}

// Movies and actors each live in one entity partition so a single Query
// lists a whole resource type.
const (
	moviePK = "MOVIE"
	actorPK = "ACTOR"
)

func isConditionalCheckFailure(err error) bool {
	var condErr *awsv2types.ConditionalCheckFailedException
	return errors.As(err, &condErr)
}

type MovieRepository struct{ client *Client }

type ActorRepository struct{ client *Client }

func NewMovieRepository(client *Client) *MovieRepository {
	return &MovieRepository{client: client}
}

func NewActorRepository(client *Client) *ActorRepository {
	return &ActorRepository{client: client}
}

func (r *MovieRepository) Create(ctx context.Context, movie domain.Movie) error {
	item := map[string]any{
		"PK":          moviePK,
		"SK":          movie.ID,
		"EntityType":  "MOVIE",
		"ID":          movie.ID,
		"Title":       movie.Title,
		"ReleaseDate": movie.ReleaseDate.Format(time.RFC3339),
		"CreatedAt":   movie.CreatedAt.Format(time.RFC3339),
		"UpdatedAt":   movie.UpdatedAt.Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, "DynamoDB.PutMovie", func(ctx context.Context) error {
		_, err = r.client.db.PutItem(ctx, &awsv2dynamodb.PutItemInput{
			TableName:           aws.String(r.client.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
		})
		return err
	})
}

func (r *MovieRepository) Update(ctx context.Context, movie domain.Movie) error {
	return xray.Capture(ctx, "DynamoDB.UpdateMovie", func(ctx context.Context) error {
		_, err := r.client.db.UpdateItem(ctx, &awsv2dynamodb.UpdateItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: moviePK},
				"SK": &awsv2types.AttributeValueMemberS{Value: movie.ID},
			},
			UpdateExpression: aws.String("SET Title = :t, ReleaseDate = :r, UpdatedAt = :u"),
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":t": &awsv2types.AttributeValueMemberS{Value: movie.Title},
				":r": &awsv2types.AttributeValueMemberS{Value: movie.ReleaseDate.Format(time.RFC3339)},
				":u": &awsv2types.AttributeValueMemberS{Value: movie.UpdatedAt.Format(time.RFC3339)},
			},
			ConditionExpression: aws.String("attribute_exists(PK) AND attribute_exists(SK)"),
		})
		if isConditionalCheckFailure(err) {
			return domain.ErrNotFound
		}
		return err
	})
}

func (r *MovieRepository) GetByID(ctx context.Context, movieID string) (domain.Movie, error) {
	var out *awsv2dynamodb.GetItemOutput
	err := xray.Capture(ctx, "DynamoDB.GetMovie", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.GetItem(ctx, &awsv2dynamodb.GetItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: moviePK},
				"SK": &awsv2types.AttributeValueMemberS{Value: movieID},
			},
		})
		return e
	})
	if err != nil {
		return domain.Movie{}, err
	}
	if out.Item == nil {
		return domain.Movie{}, domain.ErrNotFound
	}
	return unmarshalMovie(out.Item)
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	var out *awsv2dynamodb.QueryOutput
	err := xray.Capture(ctx, "DynamoDB.QueryMovies", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.Query(ctx, &awsv2dynamodb.QueryInput{
			TableName:              aws.String(r.client.tableName),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":pk": &awsv2types.AttributeValueMemberS{Value: moviePK},
			},
		})
		return e
	})
	if err != nil {
		return nil, err
	}
	movies := make([]domain.Movie, 0, len(out.Items))
	for _, item := range out.Items {
		movie, err := unmarshalMovie(item)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

func (r *MovieRepository) Delete(ctx context.Context, movieID string) error {
	return xray.Capture(ctx, "DynamoDB.DeleteMovie", func(ctx context.Context) error {
		_, err := r.client.db.DeleteItem(ctx, &awsv2dynamodb.DeleteItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: moviePK},
				"SK": &awsv2types.AttributeValueMemberS{Value: movieID},
			},
			ConditionExpression: aws.String("attribute_exists(PK) AND attribute_exists(SK)"),
		})
		if isConditionalCheckFailure(err) {
			return domain.ErrNotFound
		}
		return err
	})
}

func unmarshalMovie(item map[string]awsv2types.AttributeValue) (domain.Movie, error) {
	raw := struct {
		ID          string `dynamodbav:"ID"`
		Title       string `dynamodbav:"Title"`
		ReleaseDate string `dynamodbav:"ReleaseDate"`
		CreatedAt   string `dynamodbav:"CreatedAt"`
		UpdatedAt   string `dynamodbav:"UpdatedAt"`
	}{}
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return domain.Movie{}, err
	}
	releaseDate, _ := time.Parse(time.RFC3339, raw.ReleaseDate)
	createdAt, _ := time.Parse(time.RFC3339, raw.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, raw.UpdatedAt)
	return domain.Movie{ID: raw.ID, Title: raw.Title, ReleaseDate: releaseDate, CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}

func (r *ActorRepository) Create(ctx context.Context, actor domain.Actor) error {
	item := map[string]any{
		"PK":         actorPK,
		"SK":         actor.ID,
		"EntityType": "ACTOR",
		"ID":         actor.ID,
		"Name":       actor.Name,
		"Age":        actor.Age,
		"Gender":     actor.Gender,
		"CreatedAt":  actor.CreatedAt.Format(time.RFC3339),
		"UpdatedAt":  actor.UpdatedAt.Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, "DynamoDB.PutActor", func(ctx context.Context) error {
		_, err = r.client.db.PutItem(ctx, &awsv2dynamodb.PutItemInput{
			TableName:           aws.String(r.client.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
		})
		return err
	})
}

func (r *ActorRepository) Update(ctx context.Context, actor domain.Actor) error {
	ageAV, err := attributevalue.Marshal(actor.Age)
	if err != nil {
		return err
	}
	return xray.Capture(ctx, "DynamoDB.UpdateActor", func(ctx context.Context) error {
		_, err := r.client.db.UpdateItem(ctx, &awsv2dynamodb.UpdateItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: actorPK},
				"SK": &awsv2types.AttributeValueMemberS{Value: actor.ID},
			},
			UpdateExpression: aws.String("SET #n = :n, Age = :a, Gender = :g, UpdatedAt = :u"),
			ExpressionAttributeNames: map[string]string{
				"#n": "Name",
			},
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":n": &awsv2types.AttributeValueMemberS{Value: actor.Name},
				":a": ageAV,
				":g": &awsv2types.AttributeValueMemberS{Value: actor.Gender},
				":u": &awsv2types.AttributeValueMemberS{Value: actor.UpdatedAt.Format(time.RFC3339)},
			},
			ConditionExpression: aws.String("attribute_exists(PK) AND attribute_exists(SK)"),
		})
		if isConditionalCheckFailure(err) {
			return domain.ErrNotFound
		}
		return err
	})
}

func (r *ActorRepository) GetByID(ctx context.Context, actorID string) (domain.Actor, error) {
	var out *awsv2dynamodb.GetItemOutput
	err := xray.Capture(ctx, "DynamoDB.GetActor", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.GetItem(ctx, &awsv2dynamodb.GetItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: actorPK},
				"SK": &awsv2types.AttributeValueMemberS{Value: actorID},
			},
		})
		return e
	})
	if err != nil {
		return domain.Actor{}, err
	}
	if out.Item == nil {
		return domain.Actor{}, domain.ErrNotFound
	}
	return unmarshalActor(out.Item)
}

func (r *ActorRepository) List(ctx context.Context) ([]domain.Actor, error) {
	var out *awsv2dynamodb.QueryOutput
	err := xray.Capture(ctx, "DynamoDB.QueryActors", func(ctx context.Context) error {
		var e error
		out, e = r.client.db.Query(ctx, &awsv2dynamodb.QueryInput{
			TableName:              aws.String(r.client.tableName),
			KeyConditionExpression: aws.String("PK = :pk"),
			ExpressionAttributeValues: map[string]awsv2types.AttributeValue{
				":pk": &awsv2types.AttributeValueMemberS{Value: actorPK},
			},
		})
		return e
	})
	if err != nil {
		return nil, err
	}
	actors := make([]domain.Actor, 0, len(out.Items))
	for _, item := range out.Items {
		actor, err := unmarshalActor(item)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
	}
	return actors, nil
}

func (r *ActorRepository) Delete(ctx context.Context, actorID string) error {
	return xray.Capture(ctx, "DynamoDB.DeleteActor", func(ctx context.Context) error {
		_, err := r.client.db.DeleteItem(ctx, &awsv2dynamodb.DeleteItemInput{
			TableName: aws.String(r.client.tableName),
			Key: map[string]awsv2types.AttributeValue{
				"PK": &awsv2types.AttributeValueMemberS{Value: actorPK},
				"SK": &awsv2types.AttributeValueMemberS{Value: actorID},
			},
			ConditionExpression: aws.String("attribute_exists(PK) AND attribute_exists(SK)"),
		})
		if isConditionalCheckFailure(err) {
			return domain.ErrNotFound
		}
		return err
	})
}

func unmarshalActor(item map[string]awsv2types.AttributeValue) (domain.Actor, error) {
	raw := struct {
		ID        string `dynamodbav:"ID"`
		Name      string `dynamodbav:"Name"`
		Age       int    `dynamodbav:"Age"`
		Gender    string `dynamodbav:"Gender"`
		CreatedAt string `dynamodbav:"CreatedAt"`
		UpdatedAt string `dynamodbav:"UpdatedAt"`
	}{}
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return domain.Actor{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339, raw.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, raw.UpdatedAt)
	return domain.Actor{ID: raw.ID, Name: raw.Name, Age: raw.Age, Gender: raw.Gender, CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}
