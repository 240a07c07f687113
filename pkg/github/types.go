package github

import "encoding/json"

// User represents a GitHub account.
type User struct {
	Login             string `json:"login"               yaml:"login"`
	ID                int64  `json:"id"                  yaml:"id"`
	AvatarURL         string `json:"avatar_url"          yaml:"avatar_url"`
	GravatarID        string `json:"gravatar_id"         yaml:"gravatar_id"`
	URL               string `json:"url"                 yaml:"url"`
	HTMLURL           string `json:"html_url"            yaml:"html_url"`
	FollowersURL      string `json:"followers_url"       yaml:"followers_url"`
	FollowingURL      string `json:"following_url"       yaml:"following_url"`
	GistsURL          string `json:"gists_url"           yaml:"gists_url"`
	StarredURL        string `json:"starred_url"         yaml:"starred_url"`
	SubscriptionsURL  string `json:"subscriptions_url"   yaml:"subscriptions_url"`
	OrganizationsURL  string `json:"organizations_url"   yaml:"organizations_url"`
	ReposURL          string `json:"repos_url"           yaml:"repos_url"`
	EventsURL         string `json:"events_url"          yaml:"events_url"`
	ReceivedEventsURL string `json:"received_events_url" yaml:"received_events_url"`
	Type              string `json:"type"                yaml:"type"`
	SiteAdmin         bool   `json:"site_admin"          yaml:"site_admin"`
}

// Org represents a GitHub organization.
type Org struct {
	Login            string  `json:"login"                 yaml:"login"`
	ID               int64   `json:"id"                    yaml:"id"`
	URL              string  `json:"url"                   yaml:"url"`
	ReposURL         string  `json:"repos_url"             yaml:"repos_url"`
	EventsURL        string  `json:"events_url"            yaml:"events_url"`
	HooksURL         string  `json:"hooks_url"             yaml:"hooks_url"`
	IssuesURL        string  `json:"issues_url"            yaml:"issues_url"`
	MembersURL       string  `json:"members_url"           yaml:"members_url"`
	PublicMembersURL string  `json:"public_members_url"    yaml:"public_members_url"`
	AvatarURL        string  `json:"avatar_url"            yaml:"avatar_url"`
	Description      *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Permissions describes the caller's access to a repository.
type Permissions struct {
	Admin bool `json:"admin" yaml:"admin"`
	Push  bool `json:"push"  yaml:"push"`
	Pull  bool `json:"pull"  yaml:"pull"`
}

// Repo represents a repository.
type Repo struct {
	ID              int64        `json:"id"                    yaml:"id"`
	Owner           User         `json:"owner"                 yaml:"owner"`
	Name            string       `json:"name"                  yaml:"name"`
	FullName        string       `json:"full_name"             yaml:"full_name"`
	Description     *string      `json:"description,omitempty" yaml:"description,omitempty"`
	Private         bool         `json:"private"               yaml:"private"`
	Fork            bool         `json:"fork"                  yaml:"fork"`
	URL             string       `json:"url"                   yaml:"url"`
	HTMLURL         string       `json:"html_url"              yaml:"html_url"`
	CloneURL        string       `json:"clone_url"             yaml:"clone_url"`
	GitURL          string       `json:"git_url"               yaml:"git_url"`
	SSHURL          string       `json:"ssh_url"               yaml:"ssh_url"`
	Homepage        *string      `json:"homepage,omitempty"    yaml:"homepage,omitempty"`
	Language        *string      `json:"language,omitempty"    yaml:"language,omitempty"`
	ForksCount      int          `json:"forks_count"           yaml:"forks_count"`
	StargazersCount int          `json:"stargazers_count"      yaml:"stargazers_count"`
	WatchersCount   int          `json:"watchers_count"        yaml:"watchers_count"`
	Size            int          `json:"size"                  yaml:"size"`
	DefaultBranch   string       `json:"default_branch"        yaml:"default_branch"`
	OpenIssuesCount int          `json:"open_issues_count"     yaml:"open_issues_count"`
	HasIssues       bool         `json:"has_issues"            yaml:"has_issues"`
	HasWiki         bool         `json:"has_wiki"              yaml:"has_wiki"`
	HasDownloads    bool         `json:"has_downloads"         yaml:"has_downloads"`
	HasPages        bool         `json:"has_pages"             yaml:"has_pages"`
	Archived        bool         `json:"archived"              yaml:"archived"`
	PushedAt        *string      `json:"pushed_at,omitempty"   yaml:"pushed_at,omitempty"`
	CreatedAt       string       `json:"created_at"            yaml:"created_at"`
	UpdatedAt       string       `json:"updated_at"            yaml:"updated_at"`
	Permissions     *Permissions `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

// RepoRequest is the payload for creating a repository.
type RepoRequest struct {
	Name              string  `json:"name"                          yaml:"name"`
	Description       *string `json:"description,omitempty"         yaml:"description,omitempty"`
	Homepage          *string `json:"homepage,omitempty"            yaml:"homepage,omitempty"`
	Private           *bool   `json:"private,omitempty"             yaml:"private,omitempty"`
	HasIssues         *bool   `json:"has_issues,omitempty"          yaml:"has_issues,omitempty"`
	HasWiki           *bool   `json:"has_wiki,omitempty"            yaml:"has_wiki,omitempty"`
	HasDownloads      *bool   `json:"has_downloads,omitempty"       yaml:"has_downloads,omitempty"`
	TeamID            *int64  `json:"team_id,omitempty"             yaml:"team_id,omitempty"`
	AutoInit          *bool   `json:"auto_init,omitempty"           yaml:"auto_init,omitempty"`
	GitignoreTemplate *string `json:"gitignore_template,omitempty"  yaml:"gitignore_template,omitempty"`
	LicenseTemplate   *string `json:"license_template,omitempty"    yaml:"license_template,omitempty"`
}

// Commit identifies the head or base of a pull request.
type Commit struct {
	Label string `json:"label" yaml:"label"`
	Ref   string `json:"ref"   yaml:"ref"`
	SHA   string `json:"sha"   yaml:"sha"`
	User  User   `json:"user"  yaml:"user"`
}

// Label represents an issue label.
type Label struct {
	URL   string `json:"url"   yaml:"url"`
	Name  string `json:"name"  yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// LabelRequest is the payload for creating or updating a label.
type LabelRequest struct {
	Name  string `json:"name"  yaml:"name"`
	Color string `json:"color" yaml:"color"`
}

// Issue represents an issue.
type Issue struct {
	ID          int64   `json:"id"                  yaml:"id"`
	URL         string  `json:"url"                 yaml:"url"`
	LabelsURL   string  `json:"labels_url"          yaml:"labels_url"`
	CommentsURL string  `json:"comments_url"        yaml:"comments_url"`
	EventsURL   string  `json:"events_url"          yaml:"events_url"`
	HTMLURL     string  `json:"html_url"            yaml:"html_url"`
	Number      int     `json:"number"              yaml:"number"`
	State       string  `json:"state"               yaml:"state"`
	Title       string  `json:"title"               yaml:"title"`
	Body        string  `json:"body"                yaml:"body"`
	User        User    `json:"user"                yaml:"user"`
	Labels      []Label `json:"labels"              yaml:"labels"`
	Assignee    *User   `json:"assignee,omitempty"  yaml:"assignee,omitempty"`
	Locked      bool    `json:"locked"              yaml:"locked"`
	Comments    int     `json:"comments"            yaml:"comments"`
	ClosedAt    *string `json:"closed_at,omitempty" yaml:"closed_at,omitempty"`
	CreatedAt   string  `json:"created_at"          yaml:"created_at"`
	UpdatedAt   string  `json:"updated_at"          yaml:"updated_at"`
}

// IssueRequest is the payload for creating or updating an issue. Nil fields
// are omitted from the serialized body.
type IssueRequest struct {
	Title     *string   `json:"title,omitempty"     yaml:"title,omitempty"`
	Body      *string   `json:"body,omitempty"      yaml:"body,omitempty"`
	Assignee  *string   `json:"assignee,omitempty"  yaml:"assignee,omitempty"`
	Milestone *int64    `json:"milestone,omitempty" yaml:"milestone,omitempty"`
	Labels    *[]string `json:"labels,omitempty"    yaml:"labels,omitempty"`
	State     *string   `json:"state,omitempty"     yaml:"state,omitempty"`
}

// FileDiff represents a changed file in a pull request.
type FileDiff struct {
	// SHA may be null when only the file mode changed.
	SHA         *string `json:"sha"             yaml:"sha"`
	Filename    string  `json:"filename"        yaml:"filename"`
	Status      string  `json:"status"          yaml:"status"`
	Additions   int     `json:"additions"       yaml:"additions"`
	Deletions   int     `json:"deletions"       yaml:"deletions"`
	Changes     int     `json:"changes"         yaml:"changes"`
	BlobURL     string  `json:"blob_url"        yaml:"blob_url"`
	RawURL      string  `json:"raw_url"         yaml:"raw_url"`
	ContentsURL string  `json:"contents_url"    yaml:"contents_url"`
	// Patch is typically null for binary files.
	Patch *string `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// Pull represents a pull request.
type Pull struct {
	ID                int64   `json:"id"                         yaml:"id"`
	URL               string  `json:"url"                        yaml:"url"`
	HTMLURL           string  `json:"html_url"                   yaml:"html_url"`
	DiffURL           string  `json:"diff_url"                   yaml:"diff_url"`
	PatchURL          string  `json:"patch_url"                  yaml:"patch_url"`
	IssueURL          string  `json:"issue_url"                  yaml:"issue_url"`
	CommitsURL        string  `json:"commits_url"                yaml:"commits_url"`
	ReviewCommentsURL string  `json:"review_comments_url"        yaml:"review_comments_url"`
	CommentsURL       string  `json:"comments_url"               yaml:"comments_url"`
	StatusesURL       string  `json:"statuses_url"               yaml:"statuses_url"`
	Number            int     `json:"number"                     yaml:"number"`
	State             string  `json:"state"                      yaml:"state"`
	Title             string  `json:"title"                      yaml:"title"`
	Body              *string `json:"body,omitempty"             yaml:"body,omitempty"`
	CreatedAt         string  `json:"created_at"                 yaml:"created_at"`
	UpdatedAt         string  `json:"updated_at"                 yaml:"updated_at"`
	ClosedAt          *string `json:"closed_at,omitempty"        yaml:"closed_at,omitempty"`
	MergedAt          *string `json:"merged_at,omitempty"        yaml:"merged_at,omitempty"`
	Head              Commit  `json:"head"                       yaml:"head"`
	Base              Commit  `json:"base"                       yaml:"base"`
	User              User    `json:"user"                       yaml:"user"`
	Assignee          *User   `json:"assignee,omitempty"         yaml:"assignee,omitempty"`
	Assignees         []User  `json:"assignees"                  yaml:"assignees"`
	MergeCommitSHA    *string `json:"merge_commit_sha,omitempty" yaml:"merge_commit_sha,omitempty"`
	Mergeable         *bool   `json:"mergeable,omitempty"        yaml:"mergeable,omitempty"`
	MergedBy          *User   `json:"merged_by,omitempty"        yaml:"merged_by,omitempty"`
	Comments          *int    `json:"comments,omitempty"         yaml:"comments,omitempty"`
	Commits           *int    `json:"commits,omitempty"          yaml:"commits,omitempty"`
	Additions         *int    `json:"additions,omitempty"        yaml:"additions,omitempty"`
	Deletions         *int    `json:"deletions,omitempty"        yaml:"deletions,omitempty"`
	ChangedFiles      *int    `json:"changed_files,omitempty"    yaml:"changed_files,omitempty"`
}

// PullRequest is the payload for opening a pull request.
type PullRequest struct {
	Title string  `json:"title"          yaml:"title"`
	Head  string  `json:"head"           yaml:"head"`
	Base  string  `json:"base"           yaml:"base"`
	Body  *string `json:"body,omitempty" yaml:"body,omitempty"`
}

// PullUpdateRequest is the payload for editing a pull request.
type PullUpdateRequest struct {
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`
	Body  *string `json:"body,omitempty"  yaml:"body,omitempty"`
	State *string `json:"state,omitempty" yaml:"state,omitempty"`
}

// GistFile represents a single file inside a gist.
type GistFile struct {
	Size     int     `json:"size"              yaml:"size"`
	RawURL   string  `json:"raw_url"           yaml:"raw_url"`
	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
	Type     string  `json:"type"              yaml:"type"`
	Language *string `json:"language,omitempty" yaml:"language,omitempty"`
}

// Gist represents a gist.
type Gist struct {
	URL         string              `json:"url"                   yaml:"url"`
	ID          string              `json:"id"                    yaml:"id"`
	Description *string             `json:"description,omitempty" yaml:"description,omitempty"`
	Public      bool                `json:"public"                yaml:"public"`
	Owner       *User               `json:"owner,omitempty"       yaml:"owner,omitempty"`
	Files       map[string]GistFile `json:"files"                 yaml:"files"`
	Comments    int                 `json:"comments"              yaml:"comments"`
	HTMLURL     string              `json:"html_url"              yaml:"html_url"`
	CreatedAt   string              `json:"created_at"            yaml:"created_at"`
	UpdatedAt   string              `json:"updated_at"            yaml:"updated_at"`
}

// GistFileContent carries the content of one file in a gist create request.
type GistFileContent struct {
	Content string `json:"content" yaml:"content"`
}

// GistRequest is the payload for creating a gist.
type GistRequest struct {
	Description *string                    `json:"description,omitempty" yaml:"description,omitempty"`
	Public      *bool                      `json:"public,omitempty"      yaml:"public,omitempty"`
	Files       map[string]GistFileContent `json:"files"                 yaml:"files"`
}

// Deployment represents a deployment of a ref.
type Deployment struct {
	URL           string          `json:"url"                   yaml:"url"`
	ID            int64           `json:"id"                    yaml:"id"`
	SHA           string          `json:"sha"                   yaml:"sha"`
	Ref           string          `json:"ref"                   yaml:"ref"`
	Task          string          `json:"task"                  yaml:"task"`
	Payload       json.RawMessage `json:"payload"               yaml:"payload"`
	Environment   string          `json:"environment"           yaml:"environment"`
	Description   *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Creator       User            `json:"creator"               yaml:"creator"`
	CreatedAt     string          `json:"created_at"            yaml:"created_at"`
	UpdatedAt     string          `json:"updated_at"            yaml:"updated_at"`
	StatusesURL   string          `json:"statuses_url"          yaml:"statuses_url"`
	RepositoryURL string          `json:"repository_url"        yaml:"repository_url"`
}

// DeploymentRequest is the payload for creating a deployment.
type DeploymentRequest struct {
	Ref              string    `json:"ref"                         yaml:"ref"`
	Task             *string   `json:"task,omitempty"              yaml:"task,omitempty"`
	AutoMerge        *bool     `json:"auto_merge,omitempty"        yaml:"auto_merge,omitempty"`
	RequiredContexts *[]string `json:"required_contexts,omitempty" yaml:"required_contexts,omitempty"`
	Payload          *string   `json:"payload,omitempty"           yaml:"payload,omitempty"`
	Environment      *string   `json:"environment,omitempty"       yaml:"environment,omitempty"`
	Description      *string   `json:"description,omitempty"       yaml:"description,omitempty"`
}

// PullRequestInfo links a search result back to its pull request URLs.
type PullRequestInfo struct {
	URL      string `json:"url"       yaml:"url"`
	HTMLURL  string `json:"html_url"  yaml:"html_url"`
	DiffURL  string `json:"diff_url"  yaml:"diff_url"`
	PatchURL string `json:"patch_url" yaml:"patch_url"`
}

// SearchIssuesItem is one hit of an issue search.
type SearchIssuesItem struct {
	URL         string           `json:"url"                    yaml:"url"`
	LabelsURL   string           `json:"labels_url"             yaml:"labels_url"`
	CommentsURL string           `json:"comments_url"           yaml:"comments_url"`
	EventsURL   string           `json:"events_url"             yaml:"events_url"`
	HTMLURL     string           `json:"html_url"               yaml:"html_url"`
	ID          int64            `json:"id"                     yaml:"id"`
	Number      int              `json:"number"                 yaml:"number"`
	Title       string           `json:"title"                  yaml:"title"`
	User        User             `json:"user"                   yaml:"user"`
	Labels      []Label          `json:"labels"                 yaml:"labels"`
	State       string           `json:"state"                  yaml:"state"`
	Locked      bool             `json:"locked"                 yaml:"locked"`
	Assignee    *User            `json:"assignee,omitempty"     yaml:"assignee,omitempty"`
	Comments    int              `json:"comments"               yaml:"comments"`
	CreatedAt   string           `json:"created_at"             yaml:"created_at"`
	UpdatedAt   string           `json:"updated_at"             yaml:"updated_at"`
	ClosedAt    *string          `json:"closed_at,omitempty"    yaml:"closed_at,omitempty"`
	PullRequest *PullRequestInfo `json:"pull_request,omitempty" yaml:"pull_request,omitempty"`
	Body        *string          `json:"body,omitempty"         yaml:"body,omitempty"`
	Score       float64          `json:"score"                  yaml:"score"`
}

// SearchResult is the envelope the search endpoints return.
type SearchResult[T any] struct {
	TotalResults      int  `json:"total_count"        yaml:"total_count"`
	IncompleteResults bool `json:"incomplete_results" yaml:"incomplete_results"`
	Items             []T  `json:"items"              yaml:"items"`
}

// RateLimitStatus is the quota shape reported by GET /rate_limit.
type RateLimitStatus struct {
	Resources RateLimitResources `json:"resources" yaml:"resources"`
	Rate      RateLimitQuota     `json:"rate"      yaml:"rate"`
}

// RateLimitResources breaks the quota down per API family.
type RateLimitResources struct {
	Core   RateLimitQuota `json:"core"   yaml:"core"`
	Search RateLimitQuota `json:"search" yaml:"search"`
}

// RateLimitQuota is a single quota window.
type RateLimitQuota struct {
	Limit     int   `json:"limit"     yaml:"limit"`
	Remaining int   `json:"remaining" yaml:"remaining"`
	Reset     int64 `json:"reset"     yaml:"reset"`
}
