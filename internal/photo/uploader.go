package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Devadharshani13/SmartPlate/internal/config"
)

// MaxPhotoSize bounds a decoded delivery photo.
const MaxPhotoSize = 5 << 20

var (
	ErrEmptyPhoto       = errors.New("photo is empty")
	ErrPhotoTooLarge    = errors.New("photo is too large")
	ErrUnsupportedImage = errors.New("photo is not a jpeg, png or webp image")
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stores delivery proof photos in S3 and returns their public URL, on the
// CloudFront domain when one is configured.
type Uploader struct {
	client           objectPutter
	bucket           string
	region           string
	cloudFrontDomain string
}

func NewUploader(ctx context.Context, cfg config.S3Config) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newUploader(s3.NewFromConfig(sdkConfig), cfg), nil
}

func newUploader(client objectPutter, cfg config.S3Config) *Uploader {
	return &Uploader{
		client:           client,
		bucket:           cfg.Bucket,
		region:           cfg.Region,
		cloudFrontDomain: cfg.CloudFrontDomain,
	}
}

// UploadBase64 decodes a base64 image, optionally wrapped in a data URL, and uploads
// it under the request's prefix.
func (u *Uploader) UploadBase64(ctx context.Context, requestID, encoded string) (string, error) {
	data, err := Decode(encoded)
	if err != nil {
		return "", err
	}
	return u.Upload(ctx, requestID, data)
}

func (u *Uploader) Upload(ctx context.Context, requestID string, data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", ErrUnsupportedImage
	}
	objectKey := fmt.Sprintf("deliveries/%s/%s.%s", requestID, uuid.NewString(), ext)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	if u.cloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cloudFrontDomain, objectKey), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, objectKey), nil
}

func Decode(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if i := strings.Index(encoded, ","); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+1:]
	}
	if encoded == "" {
		return nil, ErrEmptyPhoto
	}
	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxPhotoSize+3 {
		return nil, ErrPhotoTooLarge
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("photo is not valid base64: %w", err)
	}
	if len(data) > MaxPhotoSize {
		return nil, ErrPhotoTooLarge
	}
	return data, nil
}
