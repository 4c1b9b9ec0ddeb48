// Package archive persists run history and generated articles to MongoDB.
package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"newsrunner/internal/config"
	"newsrunner/internal/logger"
	"newsrunner/internal/models"
)

// ErrMissingURI is returned when archiving is enabled without a connection string.
var ErrMissingURI = errors.New("archive is enabled but no MongoDB URI is set")

// articleDoc is the archived form of one article with its run context.
type articleDoc struct {
	RunID      string         `bson:"runId"`
	Region     string         `bson:"region"`
	Category   string         `bson:"category"`
	Article    models.Article `bson:"article"`
	ArchivedAt time.Time      `bson:"archivedAt"`
}

// Store archives runs and their articles.
type Store struct {
	client   *mongo.Client
	runs     *mongo.Collection
	articles *mongo.Collection
	logger   *logger.Logger
}

// NewStore connects to MongoDB and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg config.ArchiveConfig, log *logger.Logger) (*Store, error) {
	uri := cfg.ResolveURI()
	if uri == "" {
		return nil, ErrMissingURI
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)

	return &Store{
		client:   client,
		runs:     db.Collection(cfg.Collection),
		articles: db.Collection(cfg.Collection + "_articles"),
		logger:   log,
	}, nil
}

// SaveRun stores the run record and all generated articles. Article inserts
// are unordered so one bad document does not sink the rest.
func (s *Store) SaveRun(ctx context.Context, run *models.RunRecord, edition models.Edition) error {
	if _, err := s.runs.InsertOne(ctx, run); err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}

	docs := make([]interface{}, 0, edition.Total())
	archivedAt := time.Now().UTC()

	for _, region := range edition.Regions() {
		for _, category := range edition.Categories(region) {
			for _, article := range edition[region][category] {
				docs = append(docs, articleDoc{
					RunID:      run.ID,
					Region:     region,
					Category:   category,
					Article:    article,
					ArchivedAt: archivedAt,
				})
			}
		}
	}

	if len(docs) == 0 {
		return nil
	}

	opts := options.InsertMany().SetOrdered(false)
	if _, err := s.articles.InsertMany(ctx, docs, opts); err != nil {
		return fmt.Errorf("failed to insert articles: %w", err)
	}

	s.logger.Info("run archived", "run", run.ID, "articles", len(docs))

	return nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
