package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stream names for published reports
const (
	LeagueReportStream = "stattracker.reports.league"
	SeasonReportStream = "stattracker.reports.season"
)

// RedisPublisher publishes computed reports to Redis streams
type RedisPublisher struct {
	client *redis.Client
	maxLen int64
}

// NewRedisPublisher creates a new Redis stream publisher
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewRedisPublisherFromClient(client), nil
}

// NewRedisPublisherFromClient creates a publisher sharing an existing client
func NewRedisPublisherFromClient(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, maxLen: 1000}
}

// Close closes the Redis connection
func (rp *RedisPublisher) Close() error {
	return rp.client.Close()
}

// PublishLeagueReport appends a league report to the league stream
func (rp *RedisPublisher) PublishLeagueReport(ctx context.Context, report interface{}) error {
	return rp.publish(ctx, LeagueReportStream, "", report)
}

// PublishSeasonReport appends a season report to the season stream
func (rp *RedisPublisher) PublishSeasonReport(ctx context.Context, season string, report interface{}) error {
	return rp.publish(ctx, SeasonReportStream, season, report)
}

func (rp *RedisPublisher) publish(ctx context.Context, stream, season string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	values := map[string]interface{}{
		"data":      string(data),
		"timestamp": time.Now().Unix(),
	}
	if season != "" {
		values["season"] = season
	}

	return rp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: rp.maxLen,
		Approx: true,
		Values: values,
	}).Err()
}
