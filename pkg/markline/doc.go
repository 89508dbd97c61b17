// Package markline defines the public contracts of the markline API client:
// entity and envelope types, the normalized APIError every failure is
// converted into, the ContentStore state machine mirroring server content
// state, and the Client interface.
//
// The package separates network effects from state effects. API calls live
// behind the Client interface and always fail with a normalized *APIError;
// the ContentStore performs no I/O and is mutated only through its named
// transitions, each of which is pure with respect to network and time.
//
// Construct clients with github.com/markline-io/markline/pkg/mlclient.
package markline
