package evidence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"inv-go/internal/config"
	"inv-go/internal/inv"
)

// S3Client is the subset of the S3 API the store uses.
type S3Client interface {
	manager.UploadAPIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Store keeps evidence as objects under bucket/prefix/<ref>.
type S3Store struct {
	client   S3Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

func NewS3Store(client S3Client, bucket, prefix string) *S3Store {
	return &S3Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   prefix,
	}
}

// NewS3StoreFromConfig builds the client from the default AWS credential
// chain, overridden by any static keys or endpoint in cfg.
func NewS3StoreFromConfig(ctx context.Context, cfg config.EvidenceConfig) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 evidence store requires s3_bucket")
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.S3Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3Region))
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})
	return NewS3Store(client, cfg.S3Bucket, cfg.S3Prefix), nil
}

// Put buffers the content to learn its checksum, which is part of the key.
func (s *S3Store) Put(ctx context.Context, ownerID string, kind inv.EvidenceKind, name string, r io.Reader, size int64) (inv.StoredFile, error) {
	hr := newHashingReader(r, size)
	data, err := io.ReadAll(hr)
	if err != nil {
		return inv.StoredFile{}, fmt.Errorf("failed to read content: %w", err)
	}
	if err := hr.verify(); err != nil {
		return inv.StoredFile{}, err
	}

	ref := makeRef(ownerID, hr.checksum(), name)
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(ref)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		Metadata: map[string]string{
			"kind":   string(kind),
			"sha256": hr.checksum(),
		},
	})
	if err != nil {
		return inv.StoredFile{}, fmt.Errorf("uploading %s: %w", ref, err)
	}
	return inv.StoredFile{Ref: ref, Size: size, Checksum: hr.checksum()}, nil
}

func (s *S3Store) Get(ctx context.Context, ref string, w io.Writer) error {
	if err := validRef(ref); err != nil {
		return err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return notFound(ref)
		}
		return fmt.Errorf("downloading %s: %w", ref, err)
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}
	return nil
}

// ValidateSetup checks that the bucket exists and is reachable.
func (s *S3Store) ValidateSetup() error {
	_, err := s.client.HeadBucket(context.Background(), &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return fmt.Errorf("evidence bucket %s not accessible: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Store) key(ref string) string {
	if s.prefix == "" {
		return ref
	}
	return path.Join(s.prefix, ref)
}

var _ inv.EvidenceStore = (*S3Store)(nil)
