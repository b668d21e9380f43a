package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the server.
// It is constructed once at process start; handlers never read the environment
// directly.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string
	// FirebaseCredentialsFile is the path to the service account JSON used for
	// Firestore, Cloud Storage, and FCM. The same key signs access URLs.
	FirebaseCredentialsFile string
	// VideosBucket, AnnotationsBucket, and FeedbackBucket name the blob
	// containers for each media type.
	VideosBucket      string
	AnnotationsBucket string
	FeedbackBucket    string
	// SigningSecret is the HMAC secret for the JWT sign-in variant.
	SigningSecret string
	// TokenExpiration is the amount of time a signed-in token is valid.
	TokenExpiration time.Duration
	// Port is the port the server should run on.
	Port int
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins:          []string{"http://localhost:3000"},
		FirebaseCredentialsFile: "firebase-config.json",
		VideosBucket:            "becomebetter-videos",
		AnnotationsBucket:       "becomebetter-annotations",
		FeedbackBucket:          "becomebetter-feedback",
		SigningSecret:           "dev-signing-secret",
		TokenExpiration:         time.Hour * 24 * 7,
		Port:                    8080,
	}
}

func init() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	if credentials := os.Getenv("FIREBASE_CREDENTIALS_FILE"); credentials != "" {
		cfg.FirebaseCredentialsFile = credentials
	}
	if bucket := os.Getenv("VIDEOS_BUCKET"); bucket != "" {
		cfg.VideosBucket = bucket
	}
	if bucket := os.Getenv("ANNOTATIONS_BUCKET"); bucket != "" {
		cfg.AnnotationsBucket = bucket
	}
	if bucket := os.Getenv("FEEDBACK_BUCKET"); bucket != "" {
		cfg.FeedbackBucket = bucket
	}
	if secret := os.Getenv("SIGNING_SECRET"); secret != "" {
		cfg.SigningSecret = secret
	} else {
		log.Println("🙂️ No SIGNING_SECRET provided. Using the default development secret.")
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Panicf("invalid PORT %q: %v\n", port, err)
		}
		cfg.Port = p
	}

	Config = cfg
}
