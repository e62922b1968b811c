package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"DevHub/config"
	"DevHub/dao"
	"DevHub/models"
	"DevHub/pkg/snowflake"
	"DevHub/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const (
	UploadPurposeAvatar  = "avatar"
	UploadPurposeBanner  = "banner"
	UploadPurposePost    = "post"
	UploadPurposeReceipt = "receipt"
)

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	UploadImage(ctx context.Context, userID int64, purpose string, header *multipart.FileHeader) (*types.UploadImageResp, error)
	SignReceiptURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

type UploadService struct {
	Client    *oss.Client
	OssConfig *config.OssConfig
	ImageRepo *dao.ImageDAO
}

// UploadImage validates the file (size, MIME, decodable image) and puts it
// into the bucket for the given purpose, recording the object in MySQL.
func (s *UploadService) UploadImage(ctx context.Context, userID int64, purpose string, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	const maxSize int64 = 10 << 20

	bucket, err := s.bucketFor(purpose)
	if err != nil {
		return nil, err
	}

	if header == nil {
		return nil, errors.New("missing image")
	}
	if header.Size <= 0 || header.Size > maxSize {
		return nil, errors.New("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, errors.New("uploaded file is not seekable")
	}

	// MIME sniff on the first 512 bytes, then rewind.
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// Dimensions and format without decoding the whole image.
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	_, _ = seeker.Seek(0, io.SeekStart)

	imageID := snowflake.GenID()
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("%s/%s/%d%s", purpose, time.Now().Format("2006/01/02"), imageID, ext)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s.%s/%s", bucket, s.OssConfig.Endpoint, objectKey)

	img := models.Image{
		ID:        imageID,
		UserID:    userID,
		Bucket:    bucket,
		ObjectKey: objectKey,
		URL:       url,
		Size:      header.Size,
		Width:     cfg.Width,
		Height:    cfg.Height,
		CreatedAt: time.Now(),
	}
	if err := s.ImageRepo.Create(ctx, &img); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		ImageID: imageID,
		Url:     url,
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}

// SignReceiptURL issues a short-lived link so admins can view receipts kept
// in the private bucket.
func (s *UploadService) SignReceiptURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.OssConfig.ReceiptBucket),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

func (s *UploadService) bucketFor(purpose string) (string, error) {
	switch purpose {
	case UploadPurposeAvatar:
		return s.OssConfig.AvatarBucket, nil
	case UploadPurposeBanner:
		return s.OssConfig.BannerBucket, nil
	case UploadPurposePost:
		return s.OssConfig.PostBucket, nil
	case UploadPurposeReceipt:
		return s.OssConfig.ReceiptBucket, nil
	default:
		return "", errors.New("unknown upload purpose")
	}
}
