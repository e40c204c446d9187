package photo

import (
	"net/http"
	"time"

	"hotelbooking/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrRoomNotFound = apperror.New(http.StatusNotFound, "room not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrTooLarge     = apperror.New(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// Photo is an image attached to a room.
type Photo struct {
	ID            string
	RoomID        int64
	Filename      string
	StoragePath   string // internal path
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public URL for a photo by its ID.
func URL(id string) string {
	return "/photos/" + id
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/photos/" + id + "/thumbnail"
}
