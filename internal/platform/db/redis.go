package db

import "github.com/redis/go-redis/v9"

// ConnectRedis returns a client for the optional route cache, or nil
// when no address is configured. Callers treat a nil client as
// "caching disabled".
func ConnectRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}
