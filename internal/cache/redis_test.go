package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestDefaultCacheConfig(t *testing.T) {
	config := DefaultCacheConfig()

	if config.Addr != "localhost:6379" {
		t.Errorf("Expected Addr to be localhost:6379, got %s", config.Addr)
	}

	if config.Password != "" {
		t.Errorf("Expected Password to be empty, got %s", config.Password)
	}

	if config.DB != 0 {
		t.Errorf("Expected DB to be 0, got %d", config.DB)
	}

	if config.PoolSize != 10 {
		t.Errorf("Expected PoolSize to be 10, got %d", config.PoolSize)
	}

	if config.MinIdleConns != 5 {
		t.Errorf("Expected MinIdleConns to be 5, got %d", config.MinIdleConns)
	}

	if config.MaxRetries != 3 {
		t.Errorf("Expected MaxRetries to be 3, got %d", config.MaxRetries)
	}

	if config.DialTimeout != 5*time.Second {
		t.Errorf("Expected DialTimeout to be 5s, got %v", config.DialTimeout)
	}

	if config.ReadTimeout != 3*time.Second {
		t.Errorf("Expected ReadTimeout to be 3s, got %v", config.ReadTimeout)
	}

	if config.WriteTimeout != 3*time.Second {
		t.Errorf("Expected WriteTimeout to be 3s, got %v", config.WriteTimeout)
	}
}

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	config := DefaultCacheConfig()
	config.Addr = mr.Addr()

	cache := NewRedisCache(config)
	return cache, mr
}

func TestNewRedisCache_WithNilConfig(t *testing.T) {
	cache := NewRedisCache(nil)

	if cache == nil {
		t.Fatal("Expected cache to be created with default config")
	}

	if cache.client == nil {
		t.Error("Expected Redis client to be initialized")
	}
}

func TestRedisCache_Client(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	if cache.Client() == nil {
		t.Error("Expected underlying client to be exposed")
	}
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	type testData struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	original := testData{Name: "test", Value: 42}
	key := "test:key"

	err := cache.Set(key, original, time.Minute)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	var retrieved testData
	err = cache.Get(key, &retrieved)
	if err != nil {
		t.Fatalf("Failed to get from cache: %v", err)
	}

	if retrieved.Name != original.Name {
		t.Errorf("Expected Name %s, got %s", original.Name, retrieved.Name)
	}

	if retrieved.Value != original.Value {
		t.Errorf("Expected Value %d, got %d", original.Value, retrieved.Value)
	}
}

func TestRedisCache_Get_CacheMiss(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	var result string
	err := cache.Get("non-existent-key", &result)

	if err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestRedisCache_Set_InvalidData(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	ch := make(chan int)
	err := cache.Set("test:key", ch, time.Minute)

	if err == nil {
		t.Error("Expected error when setting unmarshalable data")
	}
}

func TestRedisCache_Get_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	mr.Set("test:invalid", "invalid-json")

	var result map[string]interface{}
	err := cache.Get("test:invalid", &result)

	if err == nil {
		t.Error("Expected error when getting invalid JSON")
	}
}

func TestRedisCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	key := "test:delete"

	err := cache.Set(key, "test-data", time.Minute)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	err = cache.Delete(key)
	if err != nil {
		t.Fatalf("Failed to delete from cache: %v", err)
	}

	var retrieved string
	err = cache.Get(key, &retrieved)
	if err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestRedisCache_DeletePattern(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	keys := []string{"stats:1", "stats:2", "projects:all"}
	for _, key := range keys {
		err := cache.Set(key, "data", time.Minute)
		if err != nil {
			t.Fatalf("Failed to set cache key %s: %v", key, err)
		}
	}

	err := cache.DeletePattern("stats:*")
	if err != nil {
		t.Fatalf("Failed to delete pattern: %v", err)
	}

	var result string
	for _, key := range []string{"stats:1", "stats:2"} {
		err = cache.Get(key, &result)
		if err != ErrCacheMiss {
			t.Errorf("Expected key %s to be deleted, but got: %v", key, err)
		}
	}

	err = cache.Get("projects:all", &result)
	if err != nil {
		t.Errorf("Expected key projects:all to still exist, got: %v", err)
	}
}

func TestRedisCache_Exists(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	key := "test:exists"

	exists, err := cache.Exists(key)
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if exists {
		t.Error("Expected key to not exist")
	}

	err = cache.Set(key, "data", time.Minute)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	exists, err = cache.Exists(key)
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if !exists {
		t.Error("Expected key to exist")
	}
}

func TestRedisCache_Health(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	err := cache.Health()
	if err != nil {
		t.Errorf("Expected healthy cache, got error: %v", err)
	}

	mr.Close()

	err = cache.Health()
	if err == nil {
		t.Error("Expected unhealthy cache after closing Redis")
	}
}

func TestRedisCache_Stats(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	stats := cache.Stats()

	if stats == nil {
		t.Error("Expected non-nil stats")
	}
}

func TestRedisCache_Close(t *testing.T) {
	cache, mr := setupTestRedis(t)
	defer mr.Close()

	err := cache.Close()
	if err != nil {
		t.Errorf("Failed to close cache: %v", err)
	}

	err = cache.Set("test", "data", time.Minute)
	if err == nil {
		t.Error("Expected error when using cache after close")
	}
}

func TestErrCacheMiss(t *testing.T) {
	if ErrCacheMiss.Error() != "cache miss" {
		t.Errorf("Expected ErrCacheMiss message to be 'cache miss', got '%s'", ErrCacheMiss.Error())
	}
}
