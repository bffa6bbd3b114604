package utility

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SaveImageToCloudFlare uploads to the Cloudflare R2 bucket and returns
// the public URL. R2 speaks the S3 API with region "auto".
func SaveImageToCloudFlare(fileHeader *multipart.FileHeader, filename string, id string, directory string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	bucketName := os.Getenv("BUCKET_NAME")
	region := os.Getenv("REGION")
	r2Endpoint := os.Getenv("R2_ENDPOINT")
	accessKey := os.Getenv("ACCESS_KEY")
	secretKey := os.Getenv("SECRET_KEY_R2")

	imageKey := fmt.Sprintf("%s/%s/%s", directory, id, filename)

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
		config.WithEndpointResolver(aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
			return aws.Endpoint{URL: r2Endpoint, SigningRegion: region}, nil
		})),
		config.WithRegion(region),
	)
	if err != nil {
		return "", err
	}

	client := s3.NewFromConfig(cfg)

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(imageKey),
		Body:   file,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", os.Getenv("R2_PUBLIC_URL"), imageKey), nil
}
