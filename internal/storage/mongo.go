package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yourname/focustimer/internal"
)

type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database
	logger internal.Logger
}

func NewMongoStorage(uri, dbName string, logger internal.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongodb: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("mongodb is not reachable: %v", err)
		return nil, err
	}
	return &MongoStorage{client: client, db: client.Database(dbName), logger: logger}, nil
}

func (m *MongoStorage) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *MongoStorage) sessions() *mongo.Collection  { return m.db.Collection("focus_sessions") }
func (m *MongoStorage) stats() *mongo.Collection     { return m.db.Collection("user_stats") }
func (m *MongoStorage) schedules() *mongo.Collection { return m.db.Collection("schedules") }

// --- SessionRepository ---

func (m *MongoStorage) SaveSession(ctx context.Context, session *internal.FocusSession) error {
	_, err := m.sessions().InsertOne(ctx, session)
	if err != nil {
		m.logger.Errorf("failed to insert session: %v", err)
	}
	return err
}

func (m *MongoStorage) GetSession(ctx context.Context, id string) (*internal.FocusSession, error) {
	var session internal.FocusSession
	err := m.sessions().FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		m.logger.Errorf("failed to find session: %v", err)
		return nil, err
	}
	return &session, nil
}

func (m *MongoStorage) UpdateSession(ctx context.Context, session *internal.FocusSession) error {
	res, err := m.sessions().UpdateOne(ctx, bson.M{"_id": session.ID},
		bson.M{"$set": bson.M{"end_time": session.EndTime, "completed": session.Completed}})
	if err != nil {
		m.logger.Errorf("failed to update session: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) ListSessions(ctx context.Context, userID string, limit int) ([]internal.FocusSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := m.sessions().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		m.logger.Errorf("failed to query sessions: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	sessions := []internal.FocusSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		m.logger.Errorf("failed to decode sessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

// --- StatsRepository ---

func (m *MongoStorage) GetStats(ctx context.Context, userID string) (*internal.UserStats, error) {
	var st internal.UserStats
	err := m.stats().FindOne(ctx, bson.M{"user_id": userID}).Decode(&st)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		m.logger.Errorf("failed to find stats: %v", err)
		return nil, err
	}
	return &st, nil
}

func (m *MongoStorage) UpsertStats(ctx context.Context, stats *internal.UserStats) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.stats().ReplaceOne(ctx, bson.M{"user_id": stats.UserID}, stats, opts)
	if err != nil {
		m.logger.Errorf("failed to upsert stats: %v", err)
	}
	return err
}

// --- ScheduleRepository ---

func (m *MongoStorage) SaveSchedule(ctx context.Context, schedule *internal.Schedule) error {
	_, err := m.schedules().InsertOne(ctx, schedule)
	if err != nil {
		m.logger.Errorf("failed to insert schedule: %v", err)
	}
	return err
}

func (m *MongoStorage) GetSchedule(ctx context.Context, id string) (*internal.Schedule, error) {
	var sched internal.Schedule
	err := m.schedules().FindOne(ctx, bson.M{"_id": id}).Decode(&sched)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		m.logger.Errorf("failed to find schedule: %v", err)
		return nil, err
	}
	return &sched, nil
}

func (m *MongoStorage) UpdateSchedule(ctx context.Context, schedule *internal.Schedule) error {
	res, err := m.schedules().UpdateOne(ctx, bson.M{"_id": schedule.ID},
		bson.M{"$set": bson.M{"time": schedule.Time, "days": schedule.Days, "enabled": schedule.Enabled, "name": schedule.Name}})
	if err != nil {
		m.logger.Errorf("failed to update schedule: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) DeleteSchedule(ctx context.Context, id string) error {
	res, err := m.schedules().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		m.logger.Errorf("failed to delete schedule: %v", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStorage) ListSchedules(ctx context.Context, userID string) ([]internal.Schedule, error) {
	cursor, err := m.schedules().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		m.logger.Errorf("failed to query schedules: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	schedules := []internal.Schedule{}
	if err := cursor.All(ctx, &schedules); err != nil {
		m.logger.Errorf("failed to decode schedules: %v", err)
		return nil, err
	}
	return schedules, nil
}

// --- Compile-time assertions ---
var _ Backend = (*MongoStorage)(nil)
