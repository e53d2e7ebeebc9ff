package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	Ping(ctx context.Context) error
	GetReply(ctx context.Context, key string) (string, error)
	SetReply(ctx context.Context, key string, reply string, expiration time.Duration) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisClient) GetReply(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", err
	} else if err != nil {
		logrus.Debug(fmt.Sprintf("Error getting cached reply for key %s: %v", key, err))
		return "", err
	}
	return val, nil
}

func (r *redisClient) SetReply(ctx context.Context, key string, reply string, expiration time.Duration) error {
	err := r.client.Set(ctx, key, reply, expiration).Err()
	if err != nil {
		logrus.Debug(fmt.Sprintf("Error caching reply for key %s: %v", key, err))
		return err
	}
	return nil
}
