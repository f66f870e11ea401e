package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// TTL curto como rede de segurança; a invalidação explícita após o
// commit é o mecanismo principal.
const availabilityTTL = 5 * time.Minute

type RedisAvailability struct {
	client *redis.Client
}

func NewRedisAvailability(redisURL string) (*RedisAvailability, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisAvailability{client: redis.NewClient(opts)}, nil
}

func slotsKey(providerID uint, day, serviceType string) string {
	return fmt.Sprintf("availability:%d:%s:%s", providerID, day, serviceType)
}

func dayPattern(providerID uint, day string) string {
	return fmt.Sprintf("availability:%d:%s:*", providerID, day)
}

func (r *RedisAvailability) GetSlots(
	ctx context.Context,
	providerID uint,
	day string,
	serviceType string,
) ([]domain.TimeSlot, bool) {

	raw, err := r.client.Get(ctx, slotsKey(providerID, day, serviceType)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (r *RedisAvailability) SetSlots(
	ctx context.Context,
	providerID uint,
	day string,
	serviceType string,
	slots []domain.TimeSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := r.client.Set(
		ctx,
		slotsKey(providerID, day, serviceType),
		raw,
		availabilityTTL,
	).Err(); err != nil {
		log.Println("availability cache set error:", err)
	}
}

func (r *RedisAvailability) InvalidateDay(
	ctx context.Context,
	providerID uint,
	day string,
) {
	keys, err := r.client.Keys(ctx, dayPattern(providerID, day)).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		log.Println("availability cache invalidate error:", err)
	}
}

var _ AvailabilityCache = (*RedisAvailability)(nil)
