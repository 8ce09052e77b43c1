package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/db"
	"github.com/vitalwatch/backend/internal/vitals"
)

// FirebaseRepo reads from the "vitals" node of a Firebase Realtime Database.
// Query order mirrors the store's native ordering: limitToLast for the recent
// window, orderByChild("userId") for per-user reads.
type FirebaseRepo struct {
	ref *db.Ref
}

func NewFirebaseRepo(client *db.Client) *FirebaseRepo {
	return &FirebaseRepo{ref: client.NewRef("vitals")}
}

func (r *FirebaseRepo) FetchRecent(ctx context.Context, limit int) ([]vitals.VitalReading, error) {
	nodes, err := r.ref.OrderByKey().LimitToLast(limit).GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch recent vitals: %w", err)
	}
	return decodeNodes(nodes)
}

func (r *FirebaseRepo) FetchByUser(ctx context.Context, uid string) ([]vitals.VitalReading, error) {
	nodes, err := r.ref.OrderByChild("userId").EqualTo(uid).GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch vitals for user %s: %w", uid, err)
	}
	return decodeNodes(nodes)
}

func decodeNodes(nodes []db.QueryNode) ([]vitals.VitalReading, error) {
	out := make([]vitals.VitalReading, 0, len(nodes))
	for _, n := range nodes {
		var raw json.RawMessage
		if err := n.Unmarshal(&raw); err != nil {
			return nil, fmt.Errorf("read node %s: %w", n.Key(), err)
		}
		rec, err := vitals.DecodeReading(n.Key(), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
