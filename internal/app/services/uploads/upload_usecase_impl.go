package uploads

import (
	"context"
	"fmt"
	"sync"

	"auditflow-service/internal/app/config"
	"auditflow-service/internal/app/services/shared/storage"
	"auditflow-service/internal/pkg/constvars"
	"auditflow-service/internal/pkg/dto/requests"
	dtoresponses "auditflow-service/internal/pkg/dto/responses"
	"auditflow-service/internal/pkg/exceptions"
	"auditflow-service/internal/pkg/metrics"
	"auditflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var allowedImageFormats = []string{".jpg", ".jpeg", ".png"}

type uploadUsecase struct {
	Storage        storage.Storage
	Metrics        *metrics.Metrics
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	uploadUsecaseInstance UploadUsecase
	onceUploadUsecase     sync.Once
)

func NewUploadUsecase(
	minioStorage storage.Storage,
	appMetrics *metrics.Metrics,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) UploadUsecase {
	onceUploadUsecase.Do(func() {
		instance := &uploadUsecase{
			Storage:        minioStorage,
			Metrics:        appMetrics,
			InternalConfig: internalConfig,
			Log:            logger,
		}
		uploadUsecaseInstance = instance
	})
	return uploadUsecaseInstance
}

// UploadAttachment stores a data-URI encoded image and returns the object
// URI used as a file-type answer value.
func (uc *uploadUsecase) UploadAttachment(ctx context.Context, request *requests.UploadAttachmentRequest) (*dtoresponses.UploadAttachmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("uploadUsecase.UploadAttachment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	data, extension, err := utils.DecodeBase64Image(request.Image)
	if err != nil {
		uc.Metrics.RecordUpload(err)
		return nil, exceptions.ErrCannotDecodeBase64Image(err)
	}
	if err := utils.ValidateImageFormat(extension, allowedImageFormats); err != nil {
		uc.Metrics.RecordUpload(err)
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, uc.InternalConfig.Minio.AttachmentMaxUploadSizeInMB); err != nil {
		uc.Metrics.RecordUpload(err)
		return nil, exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName("attachment", extension)
	bucketName := uc.InternalConfig.Minio.BucketName
	objectName, err := uc.Storage.UploadBase64Image(ctx, data, bucketName, fileName, extension)
	if err != nil {
		uc.Metrics.RecordUpload(err)
		uc.Log.Error("uploadUsecase.UploadAttachment error storing object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Metrics.RecordUpload(nil)
	uc.Log.Info("uploadUsecase.UploadAttachment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
	)
	return &dtoresponses.UploadAttachmentResponse{
		ObjectName: objectName,
		URI:        fmt.Sprintf("minio://%s/%s", bucketName, objectName),
	}, nil
}
