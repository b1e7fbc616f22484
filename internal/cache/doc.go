// Package cache provides a small thread-safe LRU cache.
//
// The preview server keeps decoded photos and parsed project descriptors
// in it so repeated requests for the same room skip disk reads and
// decoding:
//
//	photos := cache.New[cache.FileKey, image.Image](32)
//	key, err := cache.StatKey(path)
//	img, err := photos.GetOrLoad(key, func() (image.Image, error) { ... })
//
// A capacity of 0 disables caching; every lookup then calls the loader.
package cache
