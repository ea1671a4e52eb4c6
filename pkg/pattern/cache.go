package pattern

import (
	"regexp"
	"sync"
)

// CacheLimit is the number of compiled expressions kept by the cache. Adding
// an expression to a full cache drops every cached entry first.
const CacheLimit = 256

var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// compileCached returns a cached compiled expression or compiles and caches it.
// Failed compilations are not cached. The cache never holds more than
// CacheLimit entries.
func compileCached(src string) (*regexp.Regexp, error) {
	regexMu.RLock()
	re, ok := regexCache[src]
	regexMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}

	regexMu.Lock()
	if cached, ok := regexCache[src]; ok {
		re = cached
	} else {
		if len(regexCache) >= CacheLimit {
			clear(regexCache)
		}
		regexCache[src] = re
	}
	regexMu.Unlock()

	return re, nil
}

// CacheSize returns the number of compiled expressions held in the cache.
func CacheSize() int {
	regexMu.RLock()
	defer regexMu.RUnlock()
	return len(regexCache)
}
