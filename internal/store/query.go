package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type queryStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewQueryStore(client *firestore.Client) *queryStore {
	return &queryStore{
		Client:     client,
		Collection: client.Collection("queries"),
	}
}

func (s *queryStore) CreateQuery(ctx context.Context, query *models.UserQuery) error {
	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now()
	}

	_, err := s.Collection.Doc(query.ID).Create(ctx, query)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create query", err)
	}
	return nil
}

func (s *queryStore) GetQuery(ctx context.Context, id string) (*models.UserQuery, error) {
	doc, err := s.Collection.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("query not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get query", err)
	}

	var query models.UserQuery
	if err := doc.DataTo(&query); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse query data", err)
	}
	return &query, nil
}

func (s *queryStore) UpdateQuery(ctx context.Context, query *models.UserQuery) error {
	_, err := s.Collection.Doc(query.ID).Set(ctx, query, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update query", err)
	}
	return nil
}

// ListConversation returns all queries sharing a conversation id, oldest
// first, excluding the query identified by excludeID.
func (s *queryStore) ListConversation(ctx context.Context, conversationID, excludeID string) ([]models.UserQuery, error) {
	iter := s.Collection.Query.
		Where("conversationId", "==", conversationID).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []models.UserQuery
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list conversation", err)
		}
		var query models.UserQuery
		if err := doc.DataTo(&query); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse query data", err)
		}
		if query.ID == excludeID {
			continue
		}
		out = append(out, query)
	}
	return out, nil
}
