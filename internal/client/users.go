package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeapi-io/gh3/internal/constants"
	internalhttp "github.com/forgeapi-io/gh3/internal/http"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// UsersClient implements the github.UsersClient interface.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{httpClient: httpClient}
}

// Get retrieves a user's public profile.
func (c *UsersClient) Get(ctx context.Context, username string) (*github.User, error) {
	resp, err := c.httpClient.Get(ctx, "/users/"+username, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user github.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing user response: %w", err)}
	}

	return &user, nil
}

// AuthenticatedUser retrieves the profile of the authenticated user.
func (c *UsersClient) AuthenticatedUser(ctx context.Context) (*github.User, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathUser, nil)
	if err != nil {
		return nil, fmt.Errorf("getting authenticated user: %w", err)
	}

	var user github.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, &github.DecodeError{Err: fmt.Errorf("parsing user response: %w", err)}
	}

	return &user, nil
}
