package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// PublishedBlogsKey returns the cache key for the public blog listing
func (r *CacheKeyStruct) PublishedBlogsKey() string {
	return "blog:published"
}

// BlogSlugKey returns the cache key for a single published blog post
func (r *CacheKeyStruct) BlogSlugKey(slug string) string {
	return fmt.Sprintf("blog:slug:%s", slug)
}

// InboxChannel returns the Redis PubSub channel carrying new contact and advice submissions
func (r *CacheKeyStruct) InboxChannel() string {
	return "inbox:events"
}

var CacheKey = NewCacheKeyStruct()
