package service

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/util"
	"github.com/ogooluwanick/pulse-training-platform-sub001/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// LocalFilesRoute 本地存储文件的访问前缀
const LocalFilesRoute = "/api/files"

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, filename string) error
	GetURL(ctx context.Context, filename string) (string, error)
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error {
	dst := filepath.Join(p.Config.LocalPath, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalStorageProvider) Delete(ctx context.Context, filename string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, filepath.FromSlash(filename)))
}

func (p *LocalStorageProvider) GetURL(ctx context.Context, filename string) (string, error) {
	return LocalFilesRoute + "/" + filename, nil
}

// MinioStorageProvider MinIO存储实现，下载链接为预签名地址
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (p *MinioStorageProvider) Delete(ctx context.Context, filename string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, filename, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(ctx context.Context, filename string) (string, error) {
	expiry := time.Duration(p.Config.PresignMinutes) * time.Minute
	if expiry <= 0 {
		expiry = time.Hour
	}

	params := url.Values{}
	params.Set("response-content-disposition", "attachment; filename=\""+filepath.Base(filename)+"\"")

	u, err := p.Client.PresignedGetObject(ctx, p.Config.MinioBucket, filename, expiry, params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// StorageService 存储服务
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	if cfg.Storage.Type == util.StorageMinio {
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("Failed to init minio storage, falling back to local", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider}
}

func (s *StorageService) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error {
	return s.Provider.Upload(ctx, filename, reader, size, contentType)
}

func (s *StorageService) Delete(ctx context.Context, filename string) error {
	return s.Provider.Delete(ctx, filename)
}

func (s *StorageService) GetURL(ctx context.Context, filename string) (string, error) {
	return s.Provider.GetURL(ctx, filename)
}
