package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// progressReader reports the fraction of total read so far.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report ProgressFunc
}

func newProgressReader(r io.Reader, total int64, report ProgressFunc) io.Reader {
	if report == nil || total <= 0 {
		return r
	}
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		fraction := float64(p.read) / float64(p.total)
		if fraction > 1 {
			fraction = 1
		}
		p.report(fraction)
	}
	return n, err
}

// S3Uploader writes public-read objects with the multipart upload manager.
type S3Uploader struct {
	uploader      *manager.Uploader
	bucket        string
	publicBaseURL string
}

func NewS3Uploader(client *s3.Client, bucket, publicBaseURL string) *S3Uploader {
	return &S3Uploader{
		uploader:      manager.NewUploader(client),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (u *S3Uploader) Upload(ctx context.Context, obj Object, progress ProgressFunc) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(obj.Key),
		Body:        newProgressReader(obj.Body, obj.Size, progress),
		ACL:         "public-read",
		ContentType: aws.String(obj.ContentType),
	}
	if obj.CacheControl != "" {
		input.CacheControl = aws.String(obj.CacheControl)
	}

	result, err := u.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", obj.Key, err)
	}
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + obj.Key, nil
	}
	return result.Location, nil
}

// MemoryUploader keeps uploaded objects in memory and serves them under BaseURL.
type MemoryUploader struct {
	mu      sync.Mutex
	objects map[string]StoredObject

	BaseURL string
	Err     error
}

type StoredObject struct {
	ContentType  string
	CacheControl string
	Data         []byte
}

func NewMemoryUploader(baseURL string) *MemoryUploader {
	return &MemoryUploader{
		objects: make(map[string]StoredObject),
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (u *MemoryUploader) Upload(ctx context.Context, obj Object, progress ProgressFunc) (string, error) {
	if u.Err != nil {
		return "", u.Err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, newProgressReader(obj.Body, obj.Size, progress)); err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[obj.Key] = StoredObject{
		ContentType:  obj.ContentType,
		CacheControl: obj.CacheControl,
		Data:         buf.Bytes(),
	}
	return u.BaseURL + "/" + obj.Key, nil
}

func (u *MemoryUploader) Object(key string) (StoredObject, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	o, ok := u.objects[key]
	return o, ok
}

func (u *MemoryUploader) Keys() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	keys := make([]string, 0, len(u.objects))
	for k := range u.objects {
		keys = append(keys, k)
	}
	return keys
}
