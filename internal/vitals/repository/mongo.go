package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalwatch/backend/internal/vitals"
	"github.com/vitalwatch/backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Store over a MongoDB "vitals" collection for
// deployments that keep readings outside the Realtime Database. ObjectIDs
// are creation-ordered, which stands in for the RTDB's insertion order.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// index on userId for the per-user query path; without it the query
	// still works, so a failure is logged rather than fatal
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}
	if _, err := col.Indexes().CreateOne(ctx, idxModel); err != nil {
		logger.Warnf("failed to create userId index on vitals: %v", err)
	}
	return &MongoRepo{col: col}
}

// mongoReading is the persisted shape; timestamp is stored as epoch millis.
type mongoReading struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId"`
	HeartRate     float64            `bson:"heartRate"`
	SpO2          float64            `bson:"spo2"`
	BloodPressure string             `bson:"bloodPressure"`
	Temperature   float64            `bson:"temperature"`
	Timestamp     int64              `bson:"timestamp"`
}

func (d mongoReading) toReading() vitals.VitalReading {
	rec := vitals.VitalReading{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		HeartRate:     d.HeartRate,
		SpO2:          d.SpO2,
		BloodPressure: d.BloodPressure,
		Temperature:   d.Temperature,
	}
	if d.Timestamp != 0 {
		rec.Timestamp = vitals.Timestamp{Time: time.UnixMilli(d.Timestamp).UTC()}
	}
	return rec
}

func (m *MongoRepo) FetchRecent(ctx context.Context, limit int) ([]vitals.VitalReading, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(int64(limit))
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch recent vitals: %w", err)
	}
	docs, err := drain(ctx, cur)
	if err != nil {
		return nil, err
	}
	// newest-first from the sort; flip to oldest-of-window-first
	out := make([]vitals.VitalReading, len(docs))
	for i, d := range docs {
		out[len(docs)-1-i] = d.toReading()
	}
	return out, nil
}

func (m *MongoRepo) FetchByUser(ctx context.Context, uid string) ([]vitals.VitalReading, error) {
	cur, err := m.col.Find(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, fmt.Errorf("fetch vitals for user %s: %w", uid, err)
	}
	docs, err := drain(ctx, cur)
	if err != nil {
		return nil, err
	}
	out := make([]vitals.VitalReading, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toReading())
	}
	return out, nil
}

func drain(ctx context.Context, cur *mongo.Cursor) ([]mongoReading, error) {
	defer cur.Close(ctx)
	out := []mongoReading{}
	for cur.Next(ctx) {
		var d mongoReading
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode reading: %w", err)
		}
		out = append(out, d)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
