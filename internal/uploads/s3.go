package uploads

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter is the subset of the S3 client used by the uploader.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadedFile describes a stored object and its public URL.
type UploadedFile struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// S3Uploader stores uploaded files in an S3 bucket under unique keys.
type S3Uploader struct {
	client ObjectPutter
	bucket string
	region string
}

// NewS3Uploader loads the default AWS config and creates an uploader
// for the given bucket.
func NewS3Uploader(ctx context.Context, bucket, region string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("uploads: failed to load AWS config: %w", err)
	}

	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// NewS3UploaderWithClient creates an uploader with an injected client.
func NewS3UploaderWithClient(client ObjectPutter, bucket, region string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, region: region}
}

// Upload stores the file content under uploads/<uuid><ext> and returns
// its key and public URL.
func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (UploadedFile, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return UploadedFile{}, fmt.Errorf("uploads: failed to upload %s: %w", filename, err)
	}

	return UploadedFile{
		Key: key,
		URL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key),
	}, nil
}
