package repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Runs against a real server when REDIS_TEST_URL is set, e.g.
// REDIS_TEST_URL=redis://localhost:6379/15.
func TestRedisRepository(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_TEST_URL: %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	key := fmt.Sprintf("vibecraft_test_%d", time.Now().UnixNano())
	t.Cleanup(func() { client.Del(ctx, key, key+":docs") })

	exerciseRepository(t, NewBlueprintRedisRepository(client, key))
}

func TestRedisRepositoryKeys(t *testing.T) {
	r := NewBlueprintRedisRepository(nil, "")
	if r.listKey != DefaultRedisLibraryKey || r.docsKey != DefaultRedisLibraryKey+":docs" {
		t.Fatalf("keys = %q, %q", r.listKey, r.docsKey)
	}
}
