package storage

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"clinic-booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioDiagnosisArchive struct {
	client objectPutter
	bucket string
	log    *zap.Logger
	now    func() time.Time
}

func NewMinioDiagnosisArchive(client *minio.Client, bucket string, log *zap.Logger) contracts.DiagnosisArchive {
	return &minioDiagnosisArchive{
		client: client,
		bucket: bucket,
		log:    log,
		now:    time.Now,
	}
}

// StoreDiagnosis writes the diagnosis as a text object and returns its
// bucket-qualified reference.
func (m *minioDiagnosisArchive) StoreDiagnosis(ctx context.Context, appointmentID, diagnosis string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)
	objectName := fmt.Sprintf("diagnoses/%s/%d.txt", appointmentID, m.now().UTC().UnixNano())
	m.log.Info("minioDiagnosisArchive.StoreDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, strings.NewReader(diagnosis), int64(len(diagnosis)), minio.PutObjectOptions{
		ContentType: constvars.MIMETextPlain,
		UserMetadata: map[string]string{
			"appointment-id": appointmentID,
		},
	})
	if err != nil {
		m.log.Error("minioDiagnosisArchive.StoreDiagnosis error calling PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.bucket)
	}

	return m.bucket + "/" + objectName, nil
}
