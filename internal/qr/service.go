package qr

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/qrdrop/service/internal/storage"
)

// ContentType is the media type of every published artifact.
const ContentType = "image/png"

// ErrEncode is returned when the payload cannot be rendered as a QR symbol.
var ErrEncode = errors.New("encode qr code")

// ErrLocalPersist is returned when the local copy cannot be written or removed.
var ErrLocalPersist = errors.New("local storage")

// ErrRemotePersist is returned when the object store rejects an operation.
var ErrRemotePersist = errors.New("remote storage")

// LocalStore keeps the on-disk copy of each artifact.
type LocalStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	Remove(ctx context.Context, name string) error
}

// Result describes where an artifact was published.
type Result struct {
	Key       string
	LocalPath string
	ObjectKey string
	PublicURL string
}

// Service encodes URLs as QR codes and publishes them to both stores.
type Service struct {
	local        LocalStore
	remote       storage.Storage
	remotePrefix string
}

// NewService creates a new QR Service.
func NewService(local LocalStore, remote storage.Storage, remotePrefix string) *Service {
	return &Service{local: local, remote: remote, remotePrefix: remotePrefix}
}

// Generate renders url, writes the local copy, uploads the remote copy and
// returns the public URL. The two writes are sequential and not atomic: when
// the upload fails the local file stays in place.
func (s *Service) Generate(ctx context.Context, url string) (*Result, error) {
	log.Printf("qr: generating for url=%q", url)

	img, err := Encode(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	key := Key(url)
	name := FileName(key)
	res := &Result{Key: key, ObjectKey: ObjectKey(s.remotePrefix, key)}

	buf, err := EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	res.LocalPath, err = s.local.Save(ctx, name, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalPersist, err)
	}
	log.Printf("qr: saved local copy %s", res.LocalPath)

	log.Printf("qr: uploading key=%s", res.ObjectKey)
	err = s.remote.Upload(ctx, res.ObjectKey, buf, int64(buf.Len()), storage.UploadOptions{
		ContentType: ContentType,
		PublicRead:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemotePersist, err)
	}

	res.PublicURL = s.remote.PublicURL(res.ObjectKey)
	log.Printf("qr: upload successful url=%s", res.PublicURL)
	return res, nil
}

// Purge removes both copies of the artifact derived from url. A missing
// local file is not an error.
func (s *Service) Purge(ctx context.Context, url string) (*Result, error) {
	key := Key(url)
	res := &Result{Key: key, ObjectKey: ObjectKey(s.remotePrefix, key)}

	if err := s.local.Remove(ctx, FileName(key)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLocalPersist, err)
	}
	if err := s.remote.Delete(ctx, res.ObjectKey); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemotePersist, err)
	}

	log.Printf("qr: purged key=%s", key)
	return res, nil
}
