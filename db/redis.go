package db

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const (
	ReportQueueKey = "noticeboard:queue:reports"
	DeadLetterKey  = "noticeboard:queue:failed"
)

func ConnectRedis(ctx context.Context, redisURL string) error {
	if redisURL == "" {
		return errors.New("REDIS_URL is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	return Redis.Ping(ctx).Err()
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(ctx context.Context, queueKey string, data string) error {
	return Redis.LPush(ctx, queueKey, data).Err()
}

// PopFromQueue blocks for up to timeout. It returns redis.Nil when the
// queue stayed empty.
func PopFromQueue(ctx context.Context, queueKey string, timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(ctx, timeout, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func GetQueueLength(ctx context.Context, queueKey string) (int64, error) {
	return Redis.LLen(ctx, queueKey).Result()
}
