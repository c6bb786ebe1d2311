// Package cache provides a generic, thread-safe cache with a soft size
// limit, used to memoise pure computations such as segment geometry.
//
//	c := cache.New[key, [][]segdisplay.Point](128)
//	polys := c.GetOrCreate(k, func() [][]segdisplay.Point { return build(k) })
//
// When the number of entries exceeds the soft limit, the least recently
// accessed quarter is evicted. Cache must not be copied after creation.
package cache
