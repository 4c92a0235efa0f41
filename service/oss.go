package service

import (
	"Conbini/config"
	"Conbini/pkg/snowflake"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

type OssService struct {
	Client     *oss.Client
	BucketName string
	CdnBase    string
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadProductImage 上传商品图并返回公开 URL
	UploadProductImage(ctx context.Context, barcode string, header *multipart.FileHeader) (string, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	client := oss.NewClient(ossCfg)

	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		CdnBase:    strings.TrimRight(cfg.CdnBase, "/"),
	}
}

func (s *OssService) UploadProductImage(ctx context.Context, barcode string, header *multipart.FileHeader) (string, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return "", fmt.Errorf("missing image")
	}
	// header.Size 不可信，但可做第一道拦截
	if header.Size <= 0 || header.Size > maxSize {
		return "", fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	// 要能 Seek，否则无法在"读头校验/取尺寸"后再上传同一份流
	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("uploaded file is not seekable")
	}

	// 1) MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowedMime[contentType] {
		return "", fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 2) 读取尺寸 + 格式（不解码全图）
	_, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true}
	if !allowedFmt[format] {
		return "", fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 3) 生成 objectKey：products/<barcode>/<snowflake>.<ext>
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	objectKey := fmt.Sprintf("products/%s/%d%s", barcode, snowflake.GenID(), ext)

	// 4) 上传 OSS（强制限制读取）
	limited := io.LimitReader(seeker, maxSize+1)

	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", err
	}

	return s.CdnBase + "/" + objectKey, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
