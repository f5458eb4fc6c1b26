package leadRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"albarkah/database"
	"albarkah/models"
)

// leadSchemaVersion is bumped whenever the persisted lead shape changes in a
// way that cannot be read back. A mismatch drops the collection and reseeds.
const leadSchemaVersion = 2

// MongoLeadRepo implements LeadRepository using MongoDB.
type MongoLeadRepo struct {
	coll *mongo.Collection
	meta *mongo.Collection
}

// NewMongoLeadRepo creates a new instance of LeadRepository using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("albarkah")
	repo := &MongoLeadRepo{
		coll: db.Collection("leads"),
		meta: db.Collection("meta"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique index on checkoutCode is the store-side defence against duplicate
// booking codes.
func (r *MongoLeadRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "checkoutCode", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new lead document.
func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lead.CheckoutCode = NormalizeCode(lead.CheckoutCode)
	now := time.Now()
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateCode
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// GetByID retrieves a lead by its unique ID.
func (r *MongoLeadRepo) GetByID(id string) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead with id %s: %w", id, err)
	}
	return &lead, nil
}

// GetByCode retrieves a lead by checkout code. Codes are stored normalized,
// so uppercasing the query makes the lookup case-insensitive.
func (r *MongoLeadRepo) GetByCode(code string) (*models.Lead, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var lead models.Lead
	filter := bson.M{"checkoutCode": NormalizeCode(code)}
	if err := r.coll.FindOne(ctx, filter).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lead with code %s: %w", code, err)
	}
	return &lead, nil
}

// GetAll retrieves all leads, newest first.
func (r *MongoLeadRepo) GetAll() ([]models.Lead, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	for cursor.Next(ctx) {
		var l models.Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, nil
}

// Update replaces an existing lead document by its ID.
func (r *MongoLeadRepo) Update(lead *models.Lead) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	lead.CheckoutCode = NormalizeCode(lead.CheckoutCode)
	lead.UpdatedAt = time.Now()

	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": lead.ID}, lead)
	if err != nil {
		return fmt.Errorf("failed to update lead %s: %w", lead.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a lead document by its ID. Hard delete, no tombstone.
func (r *MongoLeadRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the whole collection for the given leads.
func (r *MongoLeadRepo) ReplaceAll(leads []models.Lead) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	if err := r.coll.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop leads collection: %w", err)
	}
	if err := r.ensureIndexes(); err != nil {
		return err
	}
	if len(leads) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(leads))
	for i := range leads {
		leads[i].CheckoutCode = NormalizeCode(leads[i].CheckoutCode)
		docs = append(docs, leads[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert leads: %w", err)
	}
	return nil
}

// LoadOrSeed installs the seed dataset when the collection is empty, or drops
// and reseeds it when the recorded schema version does not match the current
// one. There is no field-by-field migration.
func (r *MongoLeadRepo) LoadOrSeed() error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	var meta struct {
		SchemaVersion int `bson:"schemaVersion"`
	}
	err := r.meta.FindOne(ctx, bson.M{"_id": "leads"}).Decode(&meta)
	schemaKnown := err == nil
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count leads: %w", err)
	}

	if count > 0 && schemaKnown && meta.SchemaVersion == leadSchemaVersion {
		return nil
	}

	if err := r.ReplaceAll(SeedLeads()); err != nil {
		return fmt.Errorf("failed to seed leads: %w", err)
	}

	opts := options.Update().SetUpsert(true)
	update := bson.M{"$set": bson.M{"schemaVersion": leadSchemaVersion}}
	if _, err := r.meta.UpdateOne(ctx, bson.M{"_id": "leads"}, update, opts); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}
