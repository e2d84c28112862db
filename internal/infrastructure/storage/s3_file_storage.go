package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"cotacao_service/internal/infrastructure/database"
	"cotacao_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

const (
	defaultDocumentsBucket = "cotacao-documents"
	presignTTL             = 15 * time.Minute
)

// S3FileStorage is the blob storage collaborator backed by S3 (or MinIO via
// S3_ENDPOINT). Clients upload bytes directly against a presigned PUT; the
// storage key doubles as the StorageRef committed on aggregates.

type S3FileStorage struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

// ConnectS3 creates the storage collaborator from env:
//   - DOCUMENTS_BUCKET (default: cotacao-documents)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000)
func ConnectS3() *S3FileStorage {
	cfg, err := database.NewAWSConfigFromEnv(context.Background(), os.Getenv("S3_ENDPOINT"), s3.ServiceID)
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// MinIO needs path-style addressing.
		o.UsePathStyle = os.Getenv("S3_ENDPOINT") != ""
	})

	bucket := os.Getenv("DOCUMENTS_BUCKET")
	if bucket == "" {
		bucket = defaultDocumentsBucket
	}

	return &S3FileStorage{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}
}

func (s *S3FileStorage) GenerateUploadTarget(ctx context.Context, fileName, contentType string, size int64) (interfaces.UploadTarget, error) {
	key := fmt.Sprintf("documents/%s/%s", uuid.NewString(), sanitizeFileName(fileName))

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return interfaces.UploadTarget{}, err
	}

	return interfaces.UploadTarget{UploadURL: req.URL, StorageRef: key}, nil
}

func (s *S3FileStorage) Exists(ctx context.Context, storageRef string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageRef),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3FileStorage) DownloadURL(ctx context.Context, storageRef string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageRef),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		name = "document.pdf"
	}
	return name
}
