package firebase

import (
	"context"

	"becomebetter/internal/config"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// App is a global variable to hold the initialized Firebase App object
var App *firebaseSDK.App
var Context context.Context

func initializeApp() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.Config.FirebaseCredentialsFile)
	app, err := firebaseSDK.NewApp(ctx, nil, opt)
	if err != nil {
		panic(err.Error())
	}

	App = app
	Context = ctx
}

func init() {
	initializeApp()
}
