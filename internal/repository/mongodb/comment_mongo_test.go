package mongodb

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"

	"commentapi/internal/model"
)

// mongo.Connect does not dial, so a repository can be built without a server
// for tests that never perform an operation.
func newTestRepo(t *testing.T) *CommentMongo {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return NewCommentMongo(client.Database("comments_test"))
}

func TestIsValidID(t *testing.T) {
	repo := newTestRepo(t)

	t.Run("accepts 24 hex characters", func(t *testing.T) {
		assert.True(t, repo.IsValidID(primitive.NewObjectID().Hex()))
		assert.True(t, repo.IsValidID("68b0f2a1c9e77d0012345678"))
		assert.True(t, repo.IsValidID(strings.ToUpper("68b0f2a1c9e77d0012345678")))
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, id := range []string{
			"",
			"not-an-id",
			"12345",
			"68b0f2a1c9e77d00123456",     // 22 chars
			"68b0f2a1c9e77d001234567890", // 26 chars
			"68b0f2a1c9e77d001234567g",   // non-hex char
		} {
			assert.False(t, repo.IsValidID(id), "id %q should be invalid", id)
		}
	})
}

func TestMalformedID(t *testing.T) {
	repo := newTestRepo(t)

	// Malformed ids fail before any store round-trip
	_, err := repo.FindByID(context.Background(), "not-an-id")
	assert.Error(t, err)

	_, err = repo.UpdateByID(context.Background(), "not-an-id", nil)
	assert.Error(t, err)

	_, err = repo.DeleteByID(context.Background(), "not-an-id")
	assert.Error(t, err)
}

// Command-level tests run against the driver's mocked deployment, so the
// exact wire behavior (replies, issued commands) is controlled per test.

func commentsNS(mt *mtest.T) string {
	return mt.DB.Name() + "." + CollectionName
}

func TestCommentMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("store assigns the identifier", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		fields := model.Comment{"_id": "caller-chosen", "text": "hi", "author": "a"}
		got, err := repo.Create(context.Background(), fields)
		assert.NoError(mt, err)

		// Caller-supplied _id is dropped; the driver generated an ObjectID
		oid, ok := got["_id"].(primitive.ObjectID)
		assert.True(mt, ok, "_id should be a store-assigned ObjectID, got %T", got["_id"])
		assert.False(mt, oid.IsZero())
		assert.Equal(mt, "hi", got["text"])
		assert.Equal(mt, "a", got["author"])

		// The caller's map is left untouched
		assert.Equal(mt, "caller-chosen", fields["_id"])
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key",
		}))

		got, err := repo.Create(context.Background(), model.Comment{"text": "hi"})
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestCommentMongo_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, commentsNS(mt), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: first}, {Key: "text", Value: "first"}}),
			mtest.CreateCursorResponse(0, commentsNS(mt), mtest.NextBatch,
				bson.D{{Key: "_id", Value: second}, {Key: "text", Value: "second"}}),
		)

		got, err := repo.FindAll(context.Background())
		assert.NoError(mt, err)
		assert.Len(mt, got, 2)
		assert.Equal(mt, "first", got[0]["text"])
		assert.Equal(mt, "second", got[1]["text"])
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, commentsNS(mt), mtest.FirstBatch))

		got, err := repo.FindAll(context.Background())
		assert.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Len(mt, got, 0)
	})

	mt.Run("store error", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		got, err := repo.FindAll(context.Background())
		assert.Error(mt, err)
		assert.Nil(mt, got)
	})
}

func TestCommentMongo_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, commentsNS(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "text", Value: "hi"}}))

		got, err := repo.FindByID(context.Background(), oid.Hex())
		assert.NoError(mt, err)
		assert.Equal(mt, oid, got["_id"])
		assert.Equal(mt, "hi", got["text"])
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, commentsNS(mt), mtest.FirstBatch))

		got, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}

func TestCommentMongo_UpdateByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns post-update document", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "text", Value: "bye"},
				{Key: "author", Value: "a"},
			}},
		})

		got, err := repo.UpdateByID(context.Background(), oid.Hex(), model.Comment{"text": "bye", "_id": "tamper"})
		assert.NoError(mt, err)
		assert.Equal(mt, "bye", got["text"])
		assert.Equal(mt, "a", got["author"])

		// The issued command must be a findAndModify whose $set excludes _id
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		setVal, lookupErr := evt.Command.LookupErr("update", "$set", "text")
		assert.NoError(mt, lookupErr)
		assert.Equal(mt, "bye", setVal.StringValue())
		_, lookupErr = evt.Command.LookupErr("update", "$set", "_id")
		assert.Error(mt, lookupErr, "$set must not carry the immutable _id")
	})

	mt.Run("empty field mapping degrades to a read", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, commentsNS(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: oid}, {Key: "text", Value: "unchanged"}}))

		got, err := repo.UpdateByID(context.Background(), oid.Hex(), model.Comment{})
		assert.NoError(mt, err)
		assert.Equal(mt, "unchanged", got["text"])

		// No empty $set ever reaches the store: the command was a plain find
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		got, err := repo.UpdateByID(context.Background(), primitive.NewObjectID().Hex(), model.Comment{"text": "x"})
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}

func TestCommentMongo_DeleteByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns deleted document", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "text", Value: "hi"},
			}},
		})

		got, err := repo.DeleteByID(context.Background(), oid.Hex())
		assert.NoError(mt, err)
		assert.Equal(mt, oid, got["_id"])
		assert.Equal(mt, "hi", got["text"])

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
	})

	mt.Run("absent", func(mt *mtest.T) {
		repo := NewCommentMongo(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		got, err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, mongo.ErrNoDocuments)
		assert.Nil(mt, got)
	})
}
