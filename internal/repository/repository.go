package repository

import (
	"fmt"
	"log"
	"sync"

	"becomebetter/internal/config"
	"becomebetter/internal/firebase"
	"becomebetter/internal/models"

	"cloud.google.com/go/firestore"
	fbStorage "firebase.google.com/go/storage"

	"firebase.google.com/go/messaging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var Repository *FirebaseRepository

func init() {
	var err error
	Repository, err = NewFirebaseRepository()
	if err != nil {
		log.Panicf("Error creating repository: %v\n", err)
	}

	log.Printf("✅ Successfully created Firebase repository client")
}

type FirebaseRepository struct {
	firestoreClient *firestore.Client
	messagingClient *messaging.Client
	storageClient   *fbStorage.Client

	// Signing identity for scoped access URLs, loaded from the service
	// account key.
	googleAccessID string
	privateKey     []byte

	usersLock *sync.RWMutex
	users     map[string]*models.User
}

func NewFirebaseRepository() (*FirebaseRepository, error) {
	fr := &FirebaseRepository{
		usersLock: &sync.RWMutex{},
		users:     make(map[string]*models.User),
	}

	firestoreClient, err := firebase.App.Firestore(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v\n", err)
	}
	fr.firestoreClient = firestoreClient

	messagingClient, err := firebase.App.Messaging(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Messaging client error: %v\n", err)
	}
	fr.messagingClient = messagingClient

	storageClient, err := firebase.App.Storage(firebase.Context)
	if err != nil {
		return nil, fmt.Errorf("Storage client error: %v\n", err)
	}
	fr.storageClient = storageClient

	accessID, key, err := loadSigner(config.Config.FirebaseCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("error loading URL signer: %v\n", err)
	}
	fr.googleAccessID = accessID
	fr.privateKey = key

	// Execute the listeners sequentially, in case later listeners need to utilize data fetched
	// by previous listeners
	initFns := []func(){fr.initializeUsersListener}
	for _, initFn := range initFns {
		initFn()
	}

	return fr, nil
}

// createCollectionInitializer starts a snapshot listener on a collection and
// feeds every document through handleDoc. Signals done after the first full
// snapshot so callers can block until the cache is warm.
func (fr *FirebaseRepository) createCollectionInitializer(collection string, done *chan bool, handleDoc func(doc *firestore.DocumentSnapshot) error) {
	it := fr.firestoreClient.Collection(collection).Snapshots(firebase.Context)
	var doOnce sync.Once

	for {
		snap, err := it.Next()
		// DeadlineExceeded will be returned when ctx is cancelled.
		if status.Code(err) == codes.DeadlineExceeded {
			return
		}
		if err != nil {
			log.Fatalf("%v collection listener error: %v\n", collection, err)
		}
		if snap == nil {
			continue
		}

		for {
			doc, err := snap.Documents.Next()
			if err == iterator.Done {
				doOnce.Do(func() {
					log.Printf("✅ Started %v collection listener.\n", collection)
					*done <- true
				})
				break
			}
			if err != nil {
				log.Fatalf("%v collection listener error: %v\n", collection, err)
			}

			if err := handleDoc(doc); err != nil {
				log.Fatalf("error handling %v document: %v\n", collection, err)
			}
		}
	}
}

// isNotFound reports whether a Firestore error means the document is absent.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
