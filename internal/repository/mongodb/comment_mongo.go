package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commentapi/internal/model"
	"commentapi/internal/repository"
)

// CollectionName is the MongoDB collection backing the comment resource.
const CollectionName = "comments"

// CommentMongo is a MongoDB implementation of repository.CommentRepository.
// Absent documents surface as mongo.ErrNoDocuments from the driver; the
// service layer translates them to its own not-found error.
type CommentMongo struct {
	coll *mongo.Collection
}

// NewCommentMongo creates a new CommentMongo repository on the given database.
func NewCommentMongo(db *mongo.Database) *CommentMongo {
	return &CommentMongo{coll: db.Collection(CollectionName)}
}

var _ repository.CommentRepository = (*CommentMongo)(nil)

// FindAll returns every comment in the collection.
func (r *CommentMongo) FindAll(ctx context.Context) ([]model.Comment, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []model.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Create inserts the fields as a new document. The store assigns the
// identifier, so any caller-supplied "_id" is dropped first.
func (r *CommentMongo) Create(ctx context.Context, fields model.Comment) (model.Comment, error) {
	doc := fields.Clone()
	delete(doc, "_id")

	res, err := r.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return nil, err
	}

	doc["_id"] = res.InsertedID
	return doc, nil
}

// FindByID fetches a single comment by its identifier.
func (r *CommentMongo) FindByID(ctx context.Context, id string) (model.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var out model.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateByID applies the fields with $set and returns the post-update
// document. An empty field mapping degrades to a plain read so the store
// never sees an empty $set.
func (r *CommentMongo) UpdateByID(ctx context.Context, id string, fields model.Comment) (model.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := fields.Clone()
	delete(set, "_id") // immutable in MongoDB
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out model.Comment
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)}, opts).Decode(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes a comment and returns the deleted document.
func (r *CommentMongo) DeleteByID(ctx context.Context, id string) (model.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var out model.Comment
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// IsValidID reports whether id is a 24-hex-character ObjectID. Pure format
// check, no store round-trip.
func (r *CommentMongo) IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
