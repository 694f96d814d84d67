// Package services contains the database gateway between the HTTP
// controllers and Firestore. Collection prefixing and timestamp stamping
// for every mutation happen here and nowhere else.
package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Database is the set of document operations the controllers depend on.
type Database interface {
	// CreateDocument writes data under docID, or under a fresh id when
	// docID is empty, and returns the id. created_at and updated_at are
	// stamped before the write.
	CreateDocument(ctx context.Context, collection string, data map[string]interface{}, docID string) (string, error)
	// GetDocument returns the stored fields merged with {"id": docID},
	// or ErrNotFound.
	GetDocument(ctx context.Context, collection, docID string) (map[string]interface{}, error)
	// ListDocuments returns up to limit documents in unspecified order.
	// A non-positive limit yields an empty result.
	ListDocuments(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error)
	// UpdateDocument merges patch into the document and stamps
	// updated_at. Existence is not checked.
	UpdateDocument(ctx context.Context, collection, docID string, patch map[string]interface{}) error
	// DeleteDocument removes the document. Deleting an absent id is not
	// an error.
	DeleteDocument(ctx context.Context, collection, docID string) error
}

// ClientProvider hands out the shared Firestore client, initializing it on
// first use.
type ClientProvider interface {
	Client(ctx context.Context) (*firestore.Client, error)
}

// DatabaseService implements Database on Firestore with environment-scoped
// collection names.
type DatabaseService struct {
	provider ClientProvider
	env      string
	logger   *zap.Logger
	now      func() time.Time
}

var _ Database = (*DatabaseService)(nil)

func NewDatabaseService(provider ClientProvider, environment string, logger *zap.Logger) *DatabaseService {
	return &DatabaseService{
		provider: provider,
		env:      environment,
		logger:   logger,
		now:      time.Now,
	}
}

// CollectionName prepends the environment prefix so that staging and
// development data never mix. Production uses the bare name.
func CollectionName(environment, base string) string {
	if environment == "production" {
		return base
	}
	return environment + "_" + base
}

func (s *DatabaseService) collection(ctx context.Context, base string) (*firestore.CollectionRef, error) {
	client, err := s.provider.Client(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return client.Collection(CollectionName(s.env, base)), nil
}

// timestamp renders the current wall clock as an ISO-8601 UTC string, the
// format stored on every document.
func (s *DatabaseService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func (s *DatabaseService) CreateDocument(ctx context.Context, collection string, data map[string]interface{}, docID string) (string, error) {
	col, err := s.collection(ctx, collection)
	if err != nil {
		return "", err
	}

	now := s.timestamp()
	data["created_at"] = now
	data["updated_at"] = now

	if docID == "" {
		docID = uuid.New().String()
	}
	if _, err := col.Doc(docID).Set(ctx, data); err != nil {
		s.logger.Error("failed to create document",
			zap.String("collection", col.ID), zap.Error(err))
		return "", fmt.Errorf("create document: %w", err)
	}
	return docID, nil
}

func (s *DatabaseService) GetDocument(ctx context.Context, collection, docID string) (map[string]interface{}, error) {
	col, err := s.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	snap, err := col.Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, docID)
		}
		s.logger.Error("failed to get document",
			zap.String("collection", col.ID), zap.String("id", docID), zap.Error(err))
		return nil, fmt.Errorf("get document: %w", err)
	}

	doc := snap.Data()
	doc["id"] = snap.Ref.ID
	return doc, nil
}

func (s *DatabaseService) ListDocuments(ctx context.Context, collection string, limit int) ([]map[string]interface{}, error) {
	if limit <= 0 {
		return []map[string]interface{}{}, nil
	}

	col, err := s.collection(ctx, collection)
	if err != nil {
		return nil, err
	}

	docs := []map[string]interface{}{}
	iter := col.Limit(limit).Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			s.logger.Error("failed to list documents",
				zap.String("collection", col.ID), zap.Error(err))
			return nil, fmt.Errorf("list documents: %w", err)
		}
		doc := snap.Data()
		doc["id"] = snap.Ref.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *DatabaseService) UpdateDocument(ctx context.Context, collection, docID string, patch map[string]interface{}) error {
	col, err := s.collection(ctx, collection)
	if err != nil {
		return err
	}

	patch["updated_at"] = s.timestamp()
	// MergeAll leaves fields outside the patch untouched; created_at is
	// never part of a patch so it survives every update.
	if _, err := col.Doc(docID).Set(ctx, patch, firestore.MergeAll); err != nil {
		s.logger.Error("failed to update document",
			zap.String("collection", col.ID), zap.String("id", docID), zap.Error(err))
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (s *DatabaseService) DeleteDocument(ctx context.Context, collection, docID string) error {
	col, err := s.collection(ctx, collection)
	if err != nil {
		return err
	}

	if _, err := col.Doc(docID).Delete(ctx); err != nil {
		s.logger.Error("failed to delete document",
			zap.String("collection", col.ID), zap.String("id", docID), zap.Error(err))
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
