package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"becomebetter/internal/firebase"

	"cloud.google.com/go/storage"
	"github.com/golang/glog"
)

// accessURLWindow is how long a minted read URL stays valid. Every retrieval
// re-derives the signature; previously issued URLs are never cached.
const accessURLWindow = time.Hour

// loadSigner extracts the signing identity from the service account key file.
func loadSigner(path string) (string, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var key struct {
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
	}
	if err := json.Unmarshal(raw, &key); err != nil {
		return "", nil, err
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return "", nil, fmt.Errorf("service account key %v is missing signing fields", path)
	}

	return key.ClientEmail, []byte(key.PrivateKey), nil
}

// SignedReadURL mints a fresh read-only access URL for one blob, valid for
// the fixed access window from now.
func (fr *FirebaseRepository) SignedReadURL(bucketName, objectName string) (string, error) {
	url, err := storage.SignedURL(bucketName, objectName, &storage.SignedURLOptions{
		GoogleAccessID: fr.googleAccessID,
		PrivateKey:     fr.privateKey,
		Method:         "GET",
		Expires:        time.Now().Add(accessURLWindow),
	})
	if err != nil {
		return "", fmt.Errorf("error signing access URL: %v", err)
	}
	return url, nil
}

func (fr *FirebaseRepository) uploadBlob(bucketName, objectName string, data []byte, contentType string) error {
	bucket, err := fr.storageClient.Bucket(bucketName)
	if err != nil {
		return fmt.Errorf("error opening bucket %v: %v", bucketName, err)
	}

	writer := bucket.Object(objectName).NewWriter(firebase.Context)
	writer.ContentType = contentType
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("error writing blob %v: %v", objectName, err)
	}
	return writer.Close()
}

// deleteBlob removes a blob. Best effort: callers that have already deleted
// the companion metadata document only log the failure.
func (fr *FirebaseRepository) deleteBlob(bucketName, objectName string) error {
	bucket, err := fr.storageClient.Bucket(bucketName)
	if err != nil {
		return err
	}

	if err := bucket.Object(objectName).Delete(firebase.Context); err != nil {
		glog.Warningf("error deleting blob %v/%v: %v\n", bucketName, objectName, err)
		return err
	}
	return nil
}
