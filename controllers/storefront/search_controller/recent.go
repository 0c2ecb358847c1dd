package search_controller

import (
	"context"
	"strings"

	"github.com/Sadhana-Cart/sadhana-storefront-backend/config"
)

// maxRecentSearches caps the per-visitor recency list.
const maxRecentSearches = 5

func recentKey(owner string) string { return "recent:" + owner }

// ─────────────────────────────────────────────────────────────
// Pure list operations (the persistence below just mirrors these)
// ─────────────────────────────────────────────────────────────

// pushRecent prepends a query, removing any case-insensitive duplicate and
// capping the list. Returns the list unchanged for blank input.
func pushRecent(list []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}

	out := make([]string, 0, maxRecentSearches)
	out = append(out, query)
	for _, q := range list {
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
		if len(out) == maxRecentSearches {
			break
		}
	}
	return out
}

// removeRecent drops one entry by case-insensitive match.
func removeRecent(list []string, query string) []string {
	out := make([]string, 0, len(list))
	for _, q := range list {
		if strings.EqualFold(q, strings.TrimSpace(query)) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Redis persistence
// ─────────────────────────────────────────────────────────────

func loadRecent(ctx context.Context, owner string) ([]string, error) {
	list, err := config.RedisClient.LRange(ctx, recentKey(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return list, nil
}

// storeRecent replaces the stored list atomically (newest first).
func storeRecent(ctx context.Context, owner string, list []string) error {
	pipe := config.RedisClient.TxPipeline()
	pipe.Del(ctx, recentKey(owner))
	if len(list) > 0 {
		args := make([]interface{}, len(list))
		for i, q := range list {
			args[i] = q
		}
		pipe.RPush(ctx, recentKey(owner), args...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func clearRecent(ctx context.Context, owner string) error {
	return config.RedisClient.Del(ctx, recentKey(owner)).Err()
}
