package config

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// TeacherRosterKey returns the cache key for the flattened teacher roster.
func (r *CacheKeyStruct) TeacherRosterKey() string {
	return "roster:teachers"
}

// StudentRosterKey returns the cache key for the flattened student roster.
func (r *CacheKeyStruct) StudentRosterKey() string {
	return "roster:students"
}

// NoticeListKey returns the cache key for the notice listing.
func (r *CacheKeyStruct) NoticeListKey() string {
	return "notices:all"
}

// NoticeChannel returns the Redis PubSub channel name for the live notice feed.
func (r *CacheKeyStruct) NoticeChannel() string {
	return "notices:stream"
}

var CacheKey = NewCacheKeyStruct()
