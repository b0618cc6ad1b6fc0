// Package legacy reads the pre-migration document world: one
// denormalized JSON blob per store plus the user directory, kept in
// MongoDB. The package is read-only; nothing ever writes back.
package legacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storeadmin/backend/internal/application/storedata"
	"github.com/storeadmin/backend/internal/domain/shared"
	"github.com/storeadmin/backend/internal/domain/store"
	"github.com/storeadmin/backend/internal/infrastructure/config"
)

// MongoStore implements the reconciler's LegacyStore port.
type MongoStore struct {
	client *mongo.Client
	stores *mongo.Collection
	users  *mongo.Collection
}

// storeDocument is the legacy per-store record: the whole settings
// aggregate serialized as one JSON string in the data field.
type storeDocument struct {
	ID   string `bson:"_id"`
	Data string `bson:"data"`
}

type userDocument struct {
	ID       string   `bson:"_id"`
	Email    string   `bson:"email"`
	StoreIDs []string `bson:"store_ids"`
}

// NewMongoStore connects to the legacy database.
func NewMongoStore(ctx context.Context, cfg *config.MongoConfig) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	return &MongoStore{
		client: client,
		stores: db.Collection("stores"),
		users:  db.Collection("users"),
	}, nil
}

// Close disconnects the client.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// FetchStoreDocument loads and decodes a store's legacy document,
// returning shared.ErrNotFound when the store never existed in the
// document world.
func (m *MongoStore) FetchStoreDocument(ctx context.Context, storeID uuid.UUID) (*store.StoreSettings, error) {
	var doc storeDocument
	err := m.stores.FindOne(ctx, bson.M{"_id": storeID.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("fetching legacy document: %w", err)
	}

	var settings store.StoreSettings
	if err := json.Unmarshal([]byte(doc.Data), &settings); err != nil {
		return nil, fmt.Errorf("decoding legacy document for store %s: %w", storeID, err)
	}
	settings.StoreID = storeID
	return &settings, nil
}

// ListUsers returns every legacy account with its owned stores. Store
// ids that do not parse as UUIDs are dropped rather than failing the
// whole listing.
func (m *MongoStore) ListUsers(ctx context.Context) ([]storedata.LegacyUser, error) {
	cursor, err := m.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing legacy users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []storedata.LegacyUser
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding legacy user: %w", err)
		}
		user := storedata.LegacyUser{ID: doc.ID, Email: doc.Email}
		for _, raw := range doc.StoreIDs {
			if id, perr := uuid.Parse(raw); perr == nil {
				user.StoreIDs = append(user.StoreIDs, id)
			}
		}
		users = append(users, user)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating legacy users: %w", err)
	}
	return users, nil
}
