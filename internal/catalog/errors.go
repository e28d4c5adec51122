package catalog

import "errors"

// ErrFormat is returned by Import when the payload's top level is not a
// JSON array. The existing catalog is left untouched.
var ErrFormat = errors.New("catalog: import payload is not a JSON array")

// ErrGalleryFull rejects a record carrying more than domain.GalleryMax
// gallery images, before anything is compressed or written.
var ErrGalleryFull = errors.New("catalog: gallery holds the maximum number of images")
