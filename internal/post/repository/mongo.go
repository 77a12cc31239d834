package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogforge/blog-service/internal/post"
)

// MongoRepo stores posts in a single flat collection keyed by ObjectID.
// No secondary indexes: the native _id index covers every lookup we do.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, p *post.BlogPost) (string, error) {
	p.ID = primitive.NewObjectID()
	if p.Created.IsZero() {
		p.Created = time.Now().UTC()
	}
	if _, err := m.col.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID.Hex(), nil
}

func (m *MongoRepo) InsertMany(ctx context.Context, posts []*post.BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(posts))
	for _, p := range posts {
		p.ID = primitive.NewObjectID()
		if p.Created.IsZero() {
			p.Created = now
		}
		docs = append(docs, p)
	}
	_, err := m.col.InsertMany(ctx, docs)
	return err
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*post.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var p post.BlogPost
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post ordered by creation time so the listing is
// stable across calls (Mongo natural order is not guaranteed).
func (m *MongoRepo) FindAll(ctx context.Context) ([]*post.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created", Value: 1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*post.BlogPost{}
	for cur.Next(ctx) {
		var p post.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

// UpdateFields changes title and/or content; a nil field is left as stored.
// Author and created are never touched even when a caller sends them.
func (m *MongoRepo) UpdateFields(ctx context.Context, id string, title, content *string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	set := bson.M{}
	if title != nil {
		set["title"] = *title
	}
	if content != nil {
		set["content"] = *content
	}
	if len(set) == 0 {
		// nothing to change; still report whether the post exists
		err := m.col.FindOne(ctx, bson.M{"_id": oid}).Err()
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return err
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed id can't match any stored post; treat like a miss
		return nil
	}
	_, err = m.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (m *MongoRepo) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return err
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}
