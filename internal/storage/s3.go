// Package storage абстрагирует S3-совместимое хранилище ассетов сайта.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"PortfolioDesk/internal/config"
)

// ObjectStore — контракт хранилища: положить объект и получить его
// публичный URL. PublicURL — чистая функция от ключа, без сетевого вызова.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

// RandomKey строит случайный ключ объекта в каталоге dir, сохраняя
// расширение исходного файла.
func RandomKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(dir, uuid.NewString()+ext)
}

// S3Store — реализация поверх aws-sdk-go-v2. Работает и с MinIO:
// endpoint и статические ключи задаются конфигом.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store собирает клиента по настройкам приложения.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"", // session token не нужен
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{client: client, bucket: cfg.S3Bucket, publicURL: publicURL}, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

func (s *S3Store) PublicURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}

var _ ObjectStore = (*S3Store)(nil)
