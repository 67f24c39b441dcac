// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/naka-gawa/github-resume/internal/config"
	"github.com/naka-gawa/github-resume/internal/domain"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const perPage = 100

// ErrTokenRequired is returned by calls that GitHub only serves to authenticated clients.
var ErrTokenRequired = errors.New("a GitHub token is required for this request")

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
// Every failure is reported as a *domain.RequestFailure.
type Fetcher interface {
	FetchAccount(ctx context.Context, user string) (*domain.Account, error)
	FetchRepositories(ctx context.Context, user string) ([]*domain.Repository, error)
	CountCommits(ctx context.Context, owner, repo, author string) (int, error)
	FetchCommits(ctx context.Context, owner, repo, author string) ([]domain.Commit, error)
	FetchReleases(ctx context.Context, owner, repo string) ([]domain.Release, error)
	FetchContributions(ctx context.Context, user string) (*domain.Contributions, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	authenticated bool
	logger        logrus.FieldLogger
}

// contributionsQuery fetches the contribution totals shown in the resume header.
type contributionsQuery struct {
	User struct {
		ContributionsCollection struct {
			TotalCommitContributions            int
			TotalPullRequestContributions       int
			TotalIssueContributions             int
			TotalPullRequestReviewContributions int
			RestrictedContributionsCount        int
		}
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token is attached only when the configuration carries one.
func NewGitHubGateway(cfg *config.Config, logger logrus.FieldLogger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(cfg.MaxRateLimitSleep, func(cbContext *github_ratelimit.CallbackContext) {
			entry := logger.WithField("endpoint", callbackEndpoint(cbContext))
			if cfg.MaxRateLimitSleep == 0 {
				entry.Warn("secondary rate limit hit and waiting is disabled, giving up on request")
				return
			}
			entry.WithField("limit", cfg.MaxRateLimitSleep).
				Warn("secondary rate limit wait exceeds the configured limit, giving up on request")
		}),
		github_ratelimit.WithLimitDetectedCallback(func(cbContext *github_ratelimit.CallbackContext) {
			entry := logger.WithField("endpoint", callbackEndpoint(cbContext))
			if cbContext.SleepUntil != nil {
				entry = entry.WithField("until", cbContext.SleepUntil.Format("15:04:05"))
			}
			entry.Warn("secondary rate limit detected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if cfg.Token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}),
		}
	}
	httpClient := &http.Client{Transport: transport}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if cfg.APIBaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.APIBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.APIBaseURL, err)
		}
		restClient.BaseURL = baseURL
		graphqlClient = githubv4.NewEnterpriseClient(baseURL.String()+"graphql", httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		authenticated: cfg.Token != "",
		logger:        logger,
	}, nil
}

func callbackEndpoint(cbContext *github_ratelimit.CallbackContext) string {
	if cbContext == nil || cbContext.Request == nil {
		return ""
	}
	return cbContext.Request.URL.Path
}

// requestFailure wraps a go-github error together with the status code of the response, if any.
func requestFailure(endpoint string, resp *github.Response, err error) error {
	failure := &domain.RequestFailure{Endpoint: endpoint, Err: err}
	if resp != nil && resp.Response != nil {
		failure.StatusCode = resp.StatusCode
	}
	return failure
}

// FetchAccount fetches the user's public profile.
func (g *GitHubGateway) FetchAccount(ctx context.Context, user string) (*domain.Account, error) {
	g.logger.Debugf("Fetching account %s...", user)
	u, resp, err := g.restClient.Users.Get(ctx, user)
	if err != nil {
		return nil, requestFailure("users/"+user, resp, err)
	}
	return &domain.Account{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		CreatedAt: u.GetCreatedAt().Time,
		Followers: u.GetFollowers(),
		HTMLURL:   u.GetHTMLURL(),
	}, nil
}

// FetchRepositories lists every public repository owned by the user, following all pages.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, user string) ([]*domain.Repository, error) {
	g.logger.Debugf("Fetching repositories of %s...", user)
	opts := &github.RepositoryListByUserOptions{ListOptions: github.ListOptions{PerPage: perPage}}
	var repos []*domain.Repository
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, requestFailure("users/"+user+"/repos", resp, err)
		}
		for _, r := range page {
			repos = append(repos, &domain.Repository{
				Name:      r.GetName(),
				Language:  r.GetLanguage(),
				StarCount: r.GetStargazersCount(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Debug("  Fetching next page of repositories...")
	}
	g.logger.Debugf("Found %d repositories.", len(repos))
	return repos, nil
}

// eachCommitPage walks the commits authored by author, 100 per page.
// It stops at the first empty page or when there is no next page.
func (g *GitHubGateway) eachCommitPage(ctx context.Context, owner, repo, author string, fn func([]*github.RepositoryCommit)) error {
	opts := &github.CommitsListOptions{
		Author:      author,
		ListOptions: github.ListOptions{Page: 1, PerPage: perPage},
	}
	for {
		commits, resp, err := g.restClient.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return requestFailure(fmt.Sprintf("repos/%s/%s/commits", owner, repo), resp, err)
		}
		if len(commits) == 0 {
			return nil
		}
		fn(commits)
		if resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

// CountCommits counts the commits authored by author in owner/repo across all pages.
func (g *GitHubGateway) CountCommits(ctx context.Context, owner, repo, author string) (int, error) {
	var count int
	err := g.eachCommitPage(ctx, owner, repo, author, func(page []*github.RepositoryCommit) {
		count += len(page)
	})
	if err != nil {
		return 0, err
	}
	g.logger.Debugf("  %s/%s: %d commits", owner, repo, count)
	return count, nil
}

// FetchCommits returns the commits authored by author in owner/repo across all pages.
// Commits without an author date are skipped.
func (g *GitHubGateway) FetchCommits(ctx context.Context, owner, repo, author string) ([]domain.Commit, error) {
	var commits []domain.Commit
	err := g.eachCommitPage(ctx, owner, repo, author, func(page []*github.RepositoryCommit) {
		for _, c := range page {
			date := c.GetCommit().GetAuthor().GetDate()
			if date.IsZero() {
				continue
			}
			commits = append(commits, domain.Commit{Repository: repo, AuthorDate: date.Time})
		}
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

// FetchReleases lists the releases of owner/repo with their asset download counts.
func (g *GitHubGateway) FetchReleases(ctx context.Context, owner, repo string) ([]domain.Release, error) {
	opts := &github.ListOptions{PerPage: perPage}
	var releases []domain.Release
	for {
		page, resp, err := g.restClient.Repositories.ListReleases(ctx, owner, repo, opts)
		if err != nil {
			return nil, requestFailure(fmt.Sprintf("repos/%s/%s/releases", owner, repo), resp, err)
		}
		for _, r := range page {
			release := domain.Release{Name: r.GetName()}
			for _, a := range r.Assets {
				release.Assets = append(release.Assets, domain.Asset{
					Name:          a.GetName(),
					DownloadCount: a.GetDownloadCount(),
				})
			}
			releases = append(releases, release)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return releases, nil
}

// FetchContributions fetches last year's contribution totals through the GraphQL API,
// which rejects unauthenticated clients.
func (g *GitHubGateway) FetchContributions(ctx context.Context, user string) (*domain.Contributions, error) {
	if !g.authenticated {
		return nil, &domain.RequestFailure{Endpoint: "graphql", Err: ErrTokenRequired}
	}
	g.logger.Debugf("Fetching contribution summary of %s using GraphQL API...", user)
	var q contributionsQuery
	variables := map[string]interface{}{"login": githubv4.String(user)}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, &domain.RequestFailure{Endpoint: "graphql", Err: fmt.Errorf("failed to execute GraphQL query for contributions: %w", err)}
	}
	cc := q.User.ContributionsCollection
	return &domain.Contributions{
		TotalCommits:       cc.TotalCommitContributions,
		TotalPullRequests:  cc.TotalPullRequestContributions,
		TotalIssues:        cc.TotalIssueContributions,
		TotalReviews:       cc.TotalPullRequestReviewContributions,
		RestrictedOrHidden: cc.RestrictedContributionsCount,
	}, nil
}
