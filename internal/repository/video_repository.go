package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laibam4/reelico/internal/models"
)

// VideoFilter narrows a catalog query. Search is a case-insensitive
// substring matched against title, genre and publisher; CreatorID is an
// exact match on the uploader.
type VideoFilter struct {
	Search    string
	CreatorID primitive.ObjectID
}

type VideoRepository interface {
	Insert(ctx context.Context, v *models.Video) error
	Find(ctx context.Context, f VideoFilter) ([]models.VideoWithCreator, error)
}

type MongoVideoRepo struct {
	col *mongo.Collection
}

func NewMongoVideoRepo(db *mongo.Database, collection string) *MongoVideoRepo {
	return &MongoVideoRepo{col: db.Collection(collection)}
}

func (r *MongoVideoRepo) Insert(ctx context.Context, v *models.Video) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		v.ID = id
	}
	return nil
}

// Find returns matching videos sorted newest first, each with the creator
// resolved to a username/email projection from the users collection.
func (r *MongoVideoRepo) Find(ctx context.Context, f VideoFilter) ([]models.VideoWithCreator, error) {
	match := bson.M{}
	if !f.CreatorID.IsZero() {
		match["creator"] = f.CreatorID
	}
	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		match["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"genre": re},
			bson.M{"publisher": re},
		}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "creator"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "creator_doc"},
			{Key: "pipeline", Value: mongo.Pipeline{
				bson.D{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "email", Value: 1},
				}}},
			}},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$creator_doc"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	videos := make([]models.VideoWithCreator, 0)
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
