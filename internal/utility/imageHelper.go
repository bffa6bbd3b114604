package utility

import (
	"fmt"
	"mime/multipart"
	"os"

	s3 "elastica/aws"

	"github.com/aws/aws-sdk-go/aws"
	aws_s3 "github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var awsConfig = s3.AWSConfig{
	AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
	Region:          os.Getenv("AWS_REGION"),
	AccessKeySecret: os.Getenv("AWS_SECRET_ACCESS_KEY"),
}

func mediaBucket() string {
	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		bucket = "elastica-media"
	}
	return bucket
}

// SaveImageToFile uploads a product or category image and returns the
// secure URL the storefront and admin forms consume.
func SaveImageToFile(fileHeader *multipart.FileHeader, filename string, id string, directory string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	key := fmt.Sprintf("%s/%s/%s/%s", "assets", directory, id, filename)

	err = s3.UploadObject(mediaBucket(), key, s3.CreateSession(awsConfig), awsConfig, file)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", os.Getenv("MEDIA_BASE_URL"), key), nil
}

// DeleteProductImagesByPID removes every stored image of a deleted
// product. Best effort; the caller logs and moves on.
func DeleteProductImagesByPID(pid string) error {
	svc := s3.CreateS3Session(s3.CreateSession(awsConfig))

	// Trailing slash so "P1" never sweeps up "P10".
	prefix := fmt.Sprintf("assets/products/%s/", pid)

	return deleteObjectsByPrefix(svc, mediaBucket(), prefix)
}

// Uploads land under per-product key prefixes, so deletion has to list
// the actual keys first; deleting the bare prefix matches nothing.
func deleteObjectsByPrefix(svc s3iface.S3API, bucket string, prefix string) error {
	input := &aws_s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		page, err := svc.ListObjectsV2(input)
		if err != nil {
			return err
		}

		if len(page.Contents) > 0 {
			objects := make([]*aws_s3.ObjectIdentifier, 0, len(page.Contents))
			for _, obj := range page.Contents {
				objects = append(objects, &aws_s3.ObjectIdentifier{Key: obj.Key})
			}
			_, err = svc.DeleteObjects(&aws_s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &aws_s3.Delete{Objects: objects},
			})
			if err != nil {
				return err
			}
		}

		if page.NextContinuationToken == nil {
			return nil
		}
		input.ContinuationToken = page.NextContinuationToken
	}
}
