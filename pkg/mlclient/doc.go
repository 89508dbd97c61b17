// Package mlclient provides the main entry point for creating markline API
// clients.
//
// Basic usage:
//
//	client, err := mlclient.New(ctx, &markline.Config{
//		APIEndpoint: "https://api.markline.example",
//	})
//	if err != nil {
//		// handle error
//	}
//
//	auth, err := client.Login(ctx, "me@example.com", "secret")
//
// Every operation fails with a normalized *markline.APIError; see
// markline.Normalize and markline.ErrorMessage for turning failures into
// user-facing text.
package mlclient
