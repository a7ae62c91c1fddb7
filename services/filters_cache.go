package services

import (
	"context"
	"time"

	"guesthub/dto"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Guests refine menu searches incrementally, so the last filter set is kept
// per session and merged with each new request.

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.MenuSearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.MenuSearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.MenuSearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters overlays a new request on the remembered one; empty fields
// keep their previous values.
func MergeFilters(old *dto.MenuSearchFilters, next *dto.MenuSearchFilters) *dto.MenuSearchFilters {
	next.Query = orString(next.Query, old.Query)
	next.ServiceType = orString(next.ServiceType, old.ServiceType)
	next.ServiceID = orUintPointer(next.ServiceID, old.ServiceID)

	// Re-entered price bounds win over a now-contradictory old bound
	if next.PriceMin != nil && old.PriceMax != nil && *next.PriceMin > *old.PriceMax {
		next.PriceMax = nil
	} else {
		next.PriceMax = orFloatPointer(next.PriceMax, old.PriceMax)
	}

	if next.PriceMax != nil && old.PriceMin != nil && *next.PriceMax < *old.PriceMin {
		next.PriceMin = nil
	} else {
		next.PriceMin = orFloatPointer(next.PriceMin, old.PriceMin)
	}
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orUintPointer(newVal, oldVal *uint) *uint {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
