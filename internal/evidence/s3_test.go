package evidence

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"inv-go/internal/inv"
)

// fakeS3 keeps objects in a map. Multipart calls are not expected for the
// small bodies used here.
type fakeS3 struct {
	mu       sync.Mutex
	objects  map[string][]byte
	metadata map[string]map[string]string
	bucket   string
}

func newFakeS3(bucket string) *fakeS3 {
	return &fakeS3{
		objects:  make(map[string][]byte),
		metadata: make(map[string]map[string]string),
		bucket:   bucket,
	}
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = data
	f.metadata[aws.ToString(in.Key)] = in.Metadata
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) HeadBucket(ctx context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if aws.ToString(in.Bucket) != f.bucket {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func (f *fakeS3) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("multipart not supported")
}

func TestS3Store_PutAndGet(t *testing.T) {
	client := newFakeS3("evidence")
	store := NewS3Store(client, "evidence", "site-a")
	ctx := context.Background()

	content := "photo bytes"
	stored, err := store.Put(ctx, "asset-1", inv.EvidencePhoto, "front.jpg", strings.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	key := "site-a/" + stored.Ref
	if string(client.objects[key]) != content {
		t.Errorf("object %q = %q, want %q", key, client.objects[key], content)
	}
	if got := client.metadata[key]["kind"]; got != string(inv.EvidencePhoto) {
		t.Errorf("object kind metadata = %q, want %q", got, inv.EvidencePhoto)
	}

	var buf bytes.Buffer
	if err := store.Get(ctx, stored.Ref, &buf); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if buf.String() != content {
		t.Errorf("Get() = %q, want %q", buf.String(), content)
	}
}

func TestS3Store_GetMissing(t *testing.T) {
	store := NewS3Store(newFakeS3("evidence"), "evidence", "")

	err := store.Get(context.Background(), "asset-1/abc-missing.jpg", &bytes.Buffer{})
	if inv.CodeOf(err) != inv.CodeEvidenceNotFound {
		t.Errorf("Get() code = %q, want %q (err = %v)", inv.CodeOf(err), inv.CodeEvidenceNotFound, err)
	}
}

func TestS3Store_ValidateSetup(t *testing.T) {
	client := newFakeS3("evidence")

	if err := NewS3Store(client, "evidence", "").ValidateSetup(); err != nil {
		t.Errorf("ValidateSetup() error = %v", err)
	}
	if err := NewS3Store(client, "other", "").ValidateSetup(); err == nil {
		t.Error("ValidateSetup() expected error for missing bucket")
	}
}
