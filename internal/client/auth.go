package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/markline-io/markline/internal/constants"
	"github.com/markline-io/markline/pkg/markline"
)

// Login implements markline.AuthClient.Login. On success the returned token
// becomes the client's bearer token; on failure the client's credentials are
// left exactly as they were.
func (c *Client) Login(ctx context.Context, email, password string) (*markline.AuthData, error) {
	request := &markline.LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathLogin, request)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	var envelope markline.Envelope[markline.AuthData]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing login response: %w", markline.NewParseError())
	}

	c.tokenManager.SetToken(envelope.Data.Token)

	return &envelope.Data, nil
}

// Signup implements markline.AuthClient.Signup. uniqueID must be a fresh
// client-generated UUID.
func (c *Client) Signup(ctx context.Context, name, email, password, uniqueID string) (*markline.AuthData, error) {
	if uniqueID == "" {
		return nil, markline.ErrUniqueIDRequired
	}

	request := &markline.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		UniqueID: uniqueID,
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathSignup, request)
	if err != nil {
		return nil, fmt.Errorf("signing up: %w", err)
	}

	var envelope markline.Envelope[markline.AuthData]

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing signup response: %w", markline.NewParseError())
	}

	c.tokenManager.SetToken(envelope.Data.Token)

	return &envelope.Data, nil
}

// Logout drops the client's bearer token. Durable credential storage is the
// caller's concern.
func (c *Client) Logout() {
	c.tokenManager.ClearToken()
}
