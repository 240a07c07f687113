package github

import "context"

// RepositoriesClient provides access to repository resources.
type RepositoriesClient interface {
	Get(ctx context.Context, owner, repo string) (*Repo, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Repo], error)
	ListByOrg(ctx context.Context, org string, opts *ListOptions) (*Page[Repo], error)
	Create(ctx context.Context, request *RepoRequest) (*Repo, error)
	Delete(ctx context.Context, owner, repo string) error
	Iter(ctx context.Context, opts *ListOptions) *PaginationIterator[Repo]
	All(ctx context.Context, opts *ListOptions) ([]Repo, error)
}

// IssuesClient provides access to issue resources of a repository.
type IssuesClient interface {
	Get(ctx context.Context, owner, repo string, number int) (*Issue, error)
	List(ctx context.Context, owner, repo string, opts *ListOptions) (*Page[Issue], error)
	Create(ctx context.Context, owner, repo string, request *IssueRequest) (*Issue, error)
	Update(ctx context.Context, owner, repo string, number int, request *IssueRequest) (*Issue, error)
	Iter(ctx context.Context, owner, repo string, opts *ListOptions) *PaginationIterator[Issue]
	AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]Label, error)
	RemoveLabel(ctx context.Context, owner, repo string, number int, label string) error
}

// PullsClient provides access to pull request resources of a repository.
type PullsClient interface {
	Get(ctx context.Context, owner, repo string, number int) (*Pull, error)
	List(ctx context.Context, owner, repo string, opts *ListOptions) (*Page[Pull], error)
	Create(ctx context.Context, owner, repo string, request *PullRequest) (*Pull, error)
	Update(ctx context.Context, owner, repo string, number int, request *PullUpdateRequest) (*Pull, error)
	Iter(ctx context.Context, owner, repo string, opts *ListOptions) *PaginationIterator[Pull]
	ListFiles(ctx context.Context, owner, repo string, number int) (*Page[FileDiff], error)
	IsMerged(ctx context.Context, owner, repo string, number int) (bool, error)
	// AddLabels attaches labels to a pull request; pull labels ride the
	// issues endpoint of the same number.
	AddLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]Label, error)
	ListLabels(ctx context.Context, owner, repo string, number int) (*Page[Label], error)
}

// LabelsClient provides access to the labels defined on a repository.
type LabelsClient interface {
	Get(ctx context.Context, owner, repo, name string) (*Label, error)
	List(ctx context.Context, owner, repo string, opts *ListOptions) (*Page[Label], error)
	Create(ctx context.Context, owner, repo string, request *LabelRequest) (*Label, error)
	Update(ctx context.Context, owner, repo, name string, request *LabelRequest) (*Label, error)
	Delete(ctx context.Context, owner, repo, name string) error
	Iter(ctx context.Context, owner, repo string) *PaginationIterator[Label]
	All(ctx context.Context, owner, repo string) ([]Label, error)
}

// GistsClient provides access to gist resources.
type GistsClient interface {
	Get(ctx context.Context, id string) (*Gist, error)
	List(ctx context.Context, username string, opts *ListOptions) (*Page[Gist], error)
	Create(ctx context.Context, request *GistRequest) (*Gist, error)
	Delete(ctx context.Context, id string) error
}

// DeploymentsClient provides access to deployment resources of a repository.
type DeploymentsClient interface {
	List(ctx context.Context, owner, repo string, opts *ListOptions) (*Page[Deployment], error)
	Create(ctx context.Context, owner, repo string, request *DeploymentRequest) (*Deployment, error)
	Iter(ctx context.Context, owner, repo string, opts *ListOptions) *PaginationIterator[Deployment]
}

// SearchClient provides access to the search endpoints.
type SearchClient interface {
	Issues(ctx context.Context, query string, opts *ListOptions) (*SearchResult[SearchIssuesItem], error)
}

// UsersClient provides access to user resources.
type UsersClient interface {
	Get(ctx context.Context, username string) (*User, error)
	AuthenticatedUser(ctx context.Context) (*User, error)
}
