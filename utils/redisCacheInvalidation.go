package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// GenerateQueryHash builds a stable cache key for a report query from its
// parameters. Parameter order must not change the key, so keys are sorted.
func GenerateQueryHash(resource string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
		sb.WriteString(";")
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return fmt.Sprintf("%s:%s", resource, hex.EncodeToString(sum[:8]))
}

// ReportCacheResource prefixes every cached report response.
const ReportCacheResource = "reports"

// InvalidateReportCache drops all cached reports. Called after any mutation
// that feeds a report. A nil client is a no-op so handlers work without Redis.
func InvalidateReportCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = InvalidateCache(ctx, rdb, ReportCacheResource)
}

// InvalidateCache deletes all cached keys for the given resource type.
// Uses SCAN instead of KEYS so a large keyspace does not block Redis.
func InvalidateCache(ctx context.Context, rdb *redis.Client, resourceType string) error {
	pattern := fmt.Sprintf("%s:*", resourceType)
	iter := rdb.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %v", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %v", err)
	}

	return nil
}
