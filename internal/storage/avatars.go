package storage

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrFileNotFound = errors.New("file not found")

// AvatarStore keeps profile images in a GridFS bucket. Upload returns a
// retrievable URL path served by the file handler.
type AvatarStore struct {
	bucket *mongo.GridFSBucket
}

func NewAvatarStore(db *mongo.Database) *AvatarStore {
	return &AvatarStore{
		bucket: db.GridFSBucket(options.GridFSBucket().SetName("avatars")),
	}
}

// Upload stores one image and returns its URL path.
func (s *AvatarStore) Upload(ctx context.Context, filename string, src io.Reader) (string, error) {
	id, err := s.bucket.UploadFromStream(ctx, filename, src)
	if err != nil {
		return "", err
	}
	return "/files/" + id.Hex(), nil
}

// Download streams a stored image to dst.
func (s *AvatarStore) Download(ctx context.Context, idHex string, dst io.Writer) error {
	id, err := bson.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrFileNotFound
	}
	if _, err := s.bucket.DownloadToStream(ctx, id, dst); err != nil {
		if errors.Is(err, mongo.ErrFileNotFound) {
			return ErrFileNotFound
		}
		return err
	}
	return nil
}
