package storage

import (
	"fmt"
	"log"

	"railpay-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinio builds the object-storage client for merchant compliance
// documents. minio.New does not dial, so a bad endpoint surfaces on the
// first upload rather than at startup.
func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize minio client: %s", err.Error())
	}

	log.Printf("Successfully initialized minio client for bucket %q", driverConfig.Minio.BucketName)
	return minioClient
}
